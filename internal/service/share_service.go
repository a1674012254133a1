package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fernet/fernet-go"

	"github.com/ndewijer/Rental-Analytics-Backend/internal/apperrors"
	"github.com/ndewijer/Rental-Analytics-Backend/internal/model"
)

// ShareService issues and resolves tokens for read-only report links.
// A token is a fernet-encrypted ReportScope; it carries its own expiry so
// nothing is stored server side.
type ShareService struct {
	keys             []*fernet.Key
	ttl              time.Duration
	analyticsService *AnalyticsService
}

// NewShareService creates a ShareService from a base64 fernet key.
// An empty key disables sharing; Issue and Resolve then return ErrSharingDisabled.
// ttl must be positive when a key is given.
func NewShareService(key string, ttl time.Duration, analyticsService *AnalyticsService) (*ShareService, error) {
	s := &ShareService{ttl: ttl, analyticsService: analyticsService}
	if key == "" {
		return s, nil
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("share token TTL must be positive, got %v", ttl)
	}

	k, err := fernet.DecodeKey(key)
	if err != nil {
		return nil, fmt.Errorf("invalid share token key: %w", err)
	}
	s.keys = []*fernet.Key{k}
	return s, nil
}

// Enabled reports whether a key is configured.
func (s *ShareService) Enabled() bool {
	return len(s.keys) > 0
}

// Issue creates a token for scope after checking the caller owns it.
// fernet timestamps tokens with the wall clock, so the returned expiry is
// computed from time.Now rather than the report clock.
func (s *ShareService) Issue(ctx context.Context, scope model.ReportScope) (string, time.Time, error) {
	if !s.Enabled() {
		return "", time.Time{}, apperrors.ErrSharingDisabled
	}
	if err := s.analyticsService.AuthorizeScope(ctx, scope.UserID, scope.PropertyID); err != nil {
		return "", time.Time{}, err
	}

	payload, err := json.Marshal(scope)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToIssueShareToken, err)
	}

	token, err := fernet.EncryptAndSign(payload, s.keys[0])
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToIssueShareToken, err)
	}

	return string(token), time.Now().Add(s.ttl), nil
}

// Resolve decrypts token and computes the report it points to.
func (s *ShareService) Resolve(ctx context.Context, token string) (model.AnalyticsReport, model.ReportScope, error) {
	if !s.Enabled() {
		return model.AnalyticsReport{}, model.ReportScope{}, apperrors.ErrSharingDisabled
	}

	payload := fernet.VerifyAndDecrypt([]byte(token), s.ttl, s.keys)
	if payload == nil {
		return model.AnalyticsReport{}, model.ReportScope{}, apperrors.ErrShareTokenInvalid
	}

	var scope model.ReportScope
	if err := json.Unmarshal(payload, &scope); err != nil || scope.UserID == "" {
		return model.AnalyticsReport{}, model.ReportScope{}, apperrors.ErrShareTokenInvalid
	}

	// Ownership may have changed since the token was issued.
	if err := s.analyticsService.AuthorizeScope(ctx, scope.UserID, scope.PropertyID); err != nil {
		return model.AnalyticsReport{}, model.ReportScope{}, apperrors.ErrShareTokenInvalid
	}

	report, err := s.analyticsService.computeReport(ctx, scope)
	if err != nil {
		return model.AnalyticsReport{}, model.ReportScope{}, err
	}
	return report, scope, nil
}
