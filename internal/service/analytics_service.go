package service

import (
	"context"
	"errors"
	"time"

	"github.com/ndewijer/Rental-Analytics-Backend/internal/analytics"
	"github.com/ndewijer/Rental-Analytics-Backend/internal/apperrors"
	"github.com/ndewijer/Rental-Analytics-Backend/internal/model"
	"github.com/ndewijer/Rental-Analytics-Backend/internal/repository"
)

// AnalyticsService handles report-related business logic operations.
// It checks that the caller may see the requested scope, loads the raw records
// and hands them to the analytics engine together with the current date.
type AnalyticsService struct {
	propertyRepo *repository.PropertyRepository
	dataLoader   *DataLoaderService
	engine       *analytics.Engine
	clock        func() time.Time
}

// NewAnalyticsService creates a new AnalyticsService.
// clock supplies the current date; pass time.Now in production and a fixed
// function in tests.
func NewAnalyticsService(
	propertyRepo *repository.PropertyRepository,
	dataLoader *DataLoaderService,
	engine *analytics.Engine,
	clock func() time.Time,
) *AnalyticsService {
	if clock == nil {
		clock = time.Now
	}
	return &AnalyticsService{
		propertyRepo: propertyRepo,
		dataLoader:   dataLoader,
		engine:       engine,
		clock:        clock,
	}
}

// Now returns the service's current time.
func (s *AnalyticsService) Now() time.Time {
	return s.clock()
}

// AuthorizeScope checks that userID may read reports for propertyID.
// An empty propertyID (the user's own portfolio) is always allowed.
func (s *AnalyticsService) AuthorizeScope(ctx context.Context, userID, propertyID string) error {
	if userID == "" {
		return apperrors.ErrMissingUser
	}
	if propertyID == "" {
		return nil
	}

	property, err := s.propertyRepo.GetProperty(ctx, propertyID)
	if err != nil {
		return err
	}
	if property.OwnerID != userID {
		return apperrors.ErrPropertyNotOwned
	}
	return nil
}

// GetAnnualReport returns the report for the given scope after checking ownership.
func (s *AnalyticsService) GetAnnualReport(ctx context.Context, scope model.ReportScope) (model.AnalyticsReport, error) {
	if err := s.AuthorizeScope(ctx, scope.UserID, scope.PropertyID); err != nil {
		return model.AnalyticsReport{}, err
	}
	return s.computeReport(ctx, scope)
}

// computeReport loads and computes without an ownership check. Callers must
// have authorized the scope already.
func (s *AnalyticsService) computeReport(ctx context.Context, scope model.ReportScope) (model.AnalyticsReport, error) {
	data, err := s.dataLoader.LoadForScope(ctx, scope.UserID, scope.PropertyID, scope.Year)
	if err != nil {
		return model.AnalyticsReport{}, err
	}

	if err := ctx.Err(); err != nil {
		return model.AnalyticsReport{}, errors.Join(apperrors.ErrFailedToComputeReport, err)
	}

	return s.engine.ComputeAnnualReport(data, scope.Year, s.clock()), nil
}
