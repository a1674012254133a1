package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/ndewijer/Rental-Analytics-Backend/internal/apperrors"
	"github.com/ndewijer/Rental-Analytics-Backend/internal/model"
	"github.com/ndewijer/Rental-Analytics-Backend/internal/repository"
)

// SnapshotService keeps pre-calculated portfolio reports in the report_snapshot table
// and serves them with an on-demand fallback.
type SnapshotService struct {
	snapshotRepo     *repository.SnapshotRepository
	propertyRepo     *repository.PropertyRepository
	analyticsService *AnalyticsService
}

// NewSnapshotService creates a new SnapshotService with the provided dependencies.
func NewSnapshotService(
	snapshotRepo *repository.SnapshotRepository,
	propertyRepo *repository.PropertyRepository,
	analyticsService *AnalyticsService,
) *SnapshotService {
	return &SnapshotService{
		snapshotRepo:     snapshotRepo,
		propertyRepo:     propertyRepo,
		analyticsService: analyticsService,
	}
}

// RefreshAll recalculates the current-year portfolio report of every owner and
// stores it. A failing owner is logged and skipped; the returned error joins
// all failures. Returns the number of snapshots written.
func (s *SnapshotService) RefreshAll(ctx context.Context) (int, error) {
	owners, err := s.propertyRepo.ListOwners(ctx)
	if err != nil {
		return 0, err
	}

	year := s.analyticsService.Now().Year()
	written := 0
	var errs []error

	for _, ownerID := range owners {
		if err := s.RefreshOwner(ctx, ownerID, year); err != nil {
			log.Printf("snapshot refresh for owner %s failed: %v", ownerID, err)
			errs = append(errs, err)
			continue
		}
		written++
	}

	return written, errors.Join(errs...)
}

// RefreshOwner recalculates and stores one owner's portfolio report for year.
func (s *SnapshotService) RefreshOwner(ctx context.Context, ownerID string, year int) error {
	report, err := s.analyticsService.computeReport(ctx, model.ReportScope{UserID: ownerID, Year: year})
	if err != nil {
		return fmt.Errorf("failed to compute report: %w", err)
	}

	return s.snapshotRepo.UpsertSnapshot(ctx, model.ReportSnapshot{
		ID:           uuid.New().String(),
		OwnerID:      ownerID,
		Year:         year,
		Report:       report,
		CalculatedAt: s.analyticsService.Now(),
	})
}

// GetSnapshot returns the stored portfolio report of userID for year.
func (s *SnapshotService) GetSnapshot(ctx context.Context, userID string, year int) (model.ReportSnapshot, error) {
	if userID == "" {
		return model.ReportSnapshot{}, apperrors.ErrMissingUser
	}

	snapshot, err := s.snapshotRepo.GetSnapshot(ctx, userID, year)
	if err != nil && !errors.Is(err, apperrors.ErrSnapshotNotFound) {
		return model.ReportSnapshot{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToRetrieveSnapshot, err)
	}
	return snapshot, err
}

// GetReportWithFallback serves the stored snapshot when there is one and
// computes the report on demand otherwise. The boolean reports whether the
// snapshot was used.
func (s *SnapshotService) GetReportWithFallback(ctx context.Context, userID string, year int) (model.AnalyticsReport, bool, error) {
	snapshot, err := s.GetSnapshot(ctx, userID, year)
	if err == nil {
		return snapshot.Report, true, nil
	}
	if !errors.Is(err, apperrors.ErrSnapshotNotFound) {
		if errors.Is(err, apperrors.ErrMissingUser) {
			return model.AnalyticsReport{}, false, err
		}
		log.Printf("reading snapshot for owner %s failed, computing on demand: %v", userID, err)
	}

	report, err := s.analyticsService.GetAnnualReport(ctx, model.ReportScope{UserID: userID, Year: year})
	if err != nil {
		return model.AnalyticsReport{}, false, err
	}
	return report, false, nil
}
