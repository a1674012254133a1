// Package app wires repositories, services and the analytics engine together
// so the HTTP server and the command line tool share one construction path.
package app

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ndewijer/Rental-Analytics-Backend/internal/analytics"
	"github.com/ndewijer/Rental-Analytics-Backend/internal/config"
	"github.com/ndewijer/Rental-Analytics-Backend/internal/repository"
	"github.com/ndewijer/Rental-Analytics-Backend/internal/service"
)

// Services holds every service the entry points need.
type Services struct {
	System    *service.SystemService
	Analytics *service.AnalyticsService
	Snapshots *service.SnapshotService
	Shares    *service.ShareService
}

// New builds the service graph on db. clock may be nil, in which case time.Now is used.
func New(db *sql.DB, cfg *config.Config, clock func() time.Time) (*Services, error) {
	propertyRepo := repository.NewPropertyRepository(db)
	leaseRepo := repository.NewLeaseRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	listingRepo := repository.NewListingRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)

	engine := analytics.NewEngine(analytics.Config{
		TaxRetention: cfg.Analytics.TaxRetention,
	})

	dataLoader := service.NewDataLoaderService(
		propertyRepo,
		leaseRepo,
		expenseRepo,
		listingRepo,
	)
	analyticsService := service.NewAnalyticsService(
		propertyRepo,
		dataLoader,
		engine,
		clock,
	)
	snapshotService := service.NewSnapshotService(
		snapshotRepo,
		propertyRepo,
		analyticsService,
	)

	shareService, err := service.NewShareService(cfg.Share.Key, cfg.Share.TTL, analyticsService)
	if err != nil {
		return nil, fmt.Errorf("failed to create share service: %w", err)
	}

	systemService := service.NewSystemService(db, map[string]bool{
		"report_snapshots": cfg.Snapshot.Enabled,
		"report_sharing":   shareService.Enabled(),
	})

	return &Services{
		System:    systemService,
		Analytics: analyticsService,
		Snapshots: snapshotService,
		Shares:    shareService,
	}, nil
}
