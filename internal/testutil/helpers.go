package testutil

import (
	"database/sql"
	"math/rand"
	"testing"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/google/uuid"

	"github.com/ndewijer/Rental-Analytics-Backend/internal/analytics"
	"github.com/ndewijer/Rental-Analytics-Backend/internal/repository"
	"github.com/ndewijer/Rental-Analytics-Backend/internal/service"
)

// FixedClock returns a clock that always reports now.
func FixedClock(now time.Time) func() time.Time {
	return func() time.Time { return now }
}

func NewTestDataLoaderService(t *testing.T, db *sql.DB) *service.DataLoaderService {
	t.Helper()

	return service.NewDataLoaderService(
		repository.NewPropertyRepository(db),
		repository.NewLeaseRepository(db),
		repository.NewExpenseRepository(db),
		repository.NewListingRepository(db),
	)
}

// NewTestAnalyticsService builds an AnalyticsService on db that believes the
// current time is now.
func NewTestAnalyticsService(t *testing.T, db *sql.DB, now time.Time) *service.AnalyticsService {
	t.Helper()

	return service.NewAnalyticsService(
		repository.NewPropertyRepository(db),
		NewTestDataLoaderService(t, db),
		analytics.NewEngine(analytics.Config{TaxRetention: analytics.DefaultTaxRetention}),
		FixedClock(now),
	)
}

func NewTestSnapshotService(t *testing.T, db *sql.DB, analyticsService *service.AnalyticsService) *service.SnapshotService {
	t.Helper()

	return service.NewSnapshotService(
		repository.NewSnapshotRepository(db),
		repository.NewPropertyRepository(db),
		analyticsService,
	)
}

// NewTestShareService builds a ShareService with a freshly generated key.
func NewTestShareService(t *testing.T, analyticsService *service.AnalyticsService, ttl time.Duration) *service.ShareService {
	t.Helper()

	svc, err := service.NewShareService(MakeShareKey(t), ttl, analyticsService)
	if err != nil {
		t.Fatalf("Failed to create share service: %v", err)
	}
	return svc
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()
	return service.NewSystemService(db, map[string]bool{"report_snapshots": true})
}

// MakeShareKey generates a base64 fernet key.
func MakeShareKey(t *testing.T) string {
	t.Helper()

	var k fernet.Key
	if err := k.Generate(); err != nil {
		t.Fatalf("Failed to generate fernet key: %v", err)
	}
	return k.Encode()
}

// MakeID generates a new UUID string for testing.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakePropertyName generates a unique property name for testing.
//
// Example usage:
//
//	name := testutil.MakePropertyName("Canal House")
//	// Returns: "Canal House ABC123"
func MakePropertyName(base string) string {
	if base == "" {
		base = "Property"
	}
	return base + " " + randomAlphanumeric(6)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
