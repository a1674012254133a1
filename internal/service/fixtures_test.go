package service_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/ndewijer/Rental-Analytics-Backend/internal/model"
	"github.com/ndewijer/Rental-Analytics-Backend/internal/testutil"
)

// rentedPortfolio is an owner with one property let since 2023 at 1000.00
// base rent plus 100.00 charges a month and a listing asking 1100.00.
//
// 2023 expenses: 1000.00 property tax.
// 2024 expenses: 1200.00 property tax (deductible), 300.00 maintenance (200.00 recoverable).
type rentedPortfolio struct {
	OwnerID  string
	Property model.Property
	Unit     testutil.LeasedUnit
}

func seedRentedPortfolio(t *testing.T, db *sql.DB) rentedPortfolio {
	t.Helper()

	ownerID := testutil.NewUser().Build(t, db)
	property := testutil.NewProperty(ownerID).WithAcquisitionPrice("200000").Build(t, db)
	unit := testutil.CreateLeasedUnit(t, db, property.ID, "1100")

	testutil.NewLeasePeriod(unit.ApplicationID, testutil.Date(2023, time.January, 1)).
		WithRent(100000, 10000).
		Build(t, db)

	testutil.NewExpense(property.ID, testutil.Date(2023, time.March, 1)).
		WithCategory(model.ExpenseCategoryPropertyTax).
		WithAmount(100000).
		Build(t, db)
	testutil.NewExpense(property.ID, testutil.Date(2024, time.May, 10)).
		WithCategory(model.ExpenseCategoryPropertyTax).
		WithAmount(120000).
		Deductible(120000).
		Build(t, db)
	testutil.NewExpense(property.ID, testutil.Date(2024, time.July, 1)).
		WithCategory(model.ExpenseCategoryMaintenance).
		WithAmount(30000).
		Recoverable(20000).
		Build(t, db)

	return rentedPortfolio{OwnerID: ownerID, Property: property, Unit: unit}
}

// afterYearEnd is a clock date at which 2024 is a past year.
var afterYearEnd = testutil.Date(2025, time.June, 1)
