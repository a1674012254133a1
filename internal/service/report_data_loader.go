package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ndewijer/Rental-Analytics-Backend/internal/analytics"
	"github.com/ndewijer/Rental-Analytics-Backend/internal/apperrors"
	"github.com/ndewijer/Rental-Analytics-Backend/internal/repository"
)

// DataLoaderService centralizes the loading of all data required for report calculations.
// It fetches every raw record a report needs in one pass so that the analytics
// engine, including its prior-year comparison, runs without touching storage.
type DataLoaderService struct {
	propertyRepo *repository.PropertyRepository
	leaseRepo    *repository.LeaseRepository
	expenseRepo  *repository.ExpenseRepository
	listingRepo  *repository.ListingRepository
}

// NewDataLoaderService creates a new DataLoaderService with the provided dependencies.
func NewDataLoaderService(
	propertyRepo *repository.PropertyRepository,
	leaseRepo *repository.LeaseRepository,
	expenseRepo *repository.ExpenseRepository,
	listingRepo *repository.ListingRepository,
) *DataLoaderService {
	return &DataLoaderService{
		propertyRepo: propertyRepo,
		leaseRepo:    leaseRepo,
		expenseRepo:  expenseRepo,
		listingRepo:  listingRepo,
	}
}

// LoadForScope loads the dataset for a report on year.
//
// Data Loading Strategy:
//   - Properties are resolved first: one property when propertyID is set, the
//     whole portfolio of userID otherwise.
//   - Lease periods, expenses and listings are then fetched concurrently.
//   - Expenses cover Jan 1 of year-1 through Dec 31 of year, so the prior-year
//     comparison reuses this dataset instead of querying again.
//
// An empty scope returns an empty dataset, not an error.
func (s *DataLoaderService) LoadForScope(ctx context.Context, userID, propertyID string, year int) (analytics.Dataset, error) {
	properties, err := s.propertyRepo.ResolveProperties(ctx, userID, propertyID)
	if err != nil {
		return analytics.Dataset{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToLoadReportData, err)
	}

	data := analytics.Dataset{Properties: properties}
	if len(properties) == 0 {
		return data, nil
	}

	propertyIDs := make([]string, len(properties))
	for i, p := range properties {
		propertyIDs[i] = p.ID
	}

	from := time.Date(year-1, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		periods, err := s.leaseRepo.FetchSignedLeasePeriods(gctx, propertyIDs)
		if err != nil {
			return fmt.Errorf("failed to load lease periods: %w", err)
		}
		data.LeasePeriods = periods
		return nil
	})

	g.Go(func() error {
		expenses, err := s.expenseRepo.FetchExpenses(gctx, propertyIDs, from, to)
		if err != nil {
			return fmt.Errorf("failed to load expenses: %w", err)
		}
		data.Expenses = expenses
		return nil
	})

	g.Go(func() error {
		listings, err := s.listingRepo.FetchActiveListingsPerUnit(gctx, propertyIDs)
		if err != nil {
			return fmt.Errorf("failed to load listings: %w", err)
		}
		data.Listings = listings
		return nil
	})

	if err := g.Wait(); err != nil {
		return analytics.Dataset{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToLoadReportData, err)
	}

	return data, nil
}
