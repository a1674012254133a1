package handlers_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/ndewijer/Rental-Analytics-Backend/internal/api/handlers"
	"github.com/ndewijer/Rental-Analytics-Backend/internal/model"
	"github.com/ndewijer/Rental-Analytics-Backend/internal/testutil"
)

var testNow = testutil.Date(2025, time.June, 1)

// newAnalyticsHandler wires an AnalyticsHandler on db with sharing enabled.
func newAnalyticsHandler(t *testing.T, db *sql.DB) *handlers.AnalyticsHandler {
	t.Helper()

	analyticsService := testutil.NewTestAnalyticsService(t, db, testNow)
	return handlers.NewAnalyticsHandler(
		analyticsService,
		testutil.NewTestSnapshotService(t, db, analyticsService),
		testutil.NewTestShareService(t, analyticsService, time.Hour),
	)
}

// seedProperty creates an owner with a property let at 1000.00 a month since 2024.
func seedProperty(t *testing.T, db *sql.DB) (string, model.Property) {
	t.Helper()

	ownerID := testutil.NewUser().Build(t, db)
	property := testutil.NewProperty(ownerID).WithAcquisitionPrice("100000").Build(t, db)
	unit := testutil.CreateLeasedUnit(t, db, property.ID, "1000")
	testutil.NewLeasePeriod(unit.ApplicationID, testutil.Date(2024, time.January, 1)).Build(t, db)
	testutil.NewExpense(property.ID, testutil.Date(2024, time.March, 3)).WithAmount(60000).Build(t, db)

	return ownerID, property
}
