package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndewijer/Rental-Analytics-Backend/internal/apperrors"
	"github.com/ndewijer/Rental-Analytics-Backend/internal/model"
	"github.com/ndewijer/Rental-Analytics-Backend/internal/testutil"
)

// TestAnalyticsService_GetAnnualReport tests the full load and compute path.
//
// WHY: This is the operation every report endpoint uses. It checks the
// figures end to end on real SQLite rows, including the year-over-year
// comparison that depends on the loader fetching the prior year.
func TestAnalyticsService_GetAnnualReport(t *testing.T) {
	ctx := context.Background()

	t.Run("computes a past year for the whole portfolio", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAnalyticsService(t, db, afterYearEnd)
		fx := seedRentedPortfolio(t, db)

		report, err := svc.GetAnnualReport(ctx, model.ReportScope{UserID: fx.OwnerID, Year: 2024})
		require.NoError(t, err)

		assert.Equal(t, 2024, report.Year)
		assert.InDelta(t, 13200.0, report.TotalIncome, 0.001)
		assert.InDelta(t, 1500.0, report.TotalExpenses, 0.001)
		assert.InDelta(t, 11700.0, report.NetBenefit, 0.001)
		assert.InDelta(t, 200000.0, report.PropertyValue, 0.001)
		assert.InDelta(t, 1200.0, report.TotalDeductible, 0.001)
		assert.InDelta(t, 200.0, report.TotalRecoverable, 0.001)
		assert.InDelta(t, 0.0, report.VacancyLoss, 0.001)

		assert.InDelta(t, 6.0, report.YieldGross, 0.001)
		assert.InDelta(t, 5.85, report.YieldNet, 0.001)
		assert.InDelta(t, 4.1, report.YieldNetNet, 0.001)

		require.Len(t, report.Cashflow, 12)
		assert.Equal(t, 1, report.Cashflow[0].Month)
		assert.InDelta(t, 1100.0, report.Cashflow[0].Income, 0.001)
		assert.InDelta(t, 1200.0, report.Cashflow[4].Expenses, 0.001)
		assert.InDelta(t, 300.0, report.Cashflow[6].Expenses, 0.001)

		require.Len(t, report.ExpenseDistribution, 2)
		assert.Equal(t, model.ExpenseCategoryPropertyTax, report.ExpenseDistribution[0].Category)
		assert.Equal(t, model.ExpenseCategoryMaintenance, report.ExpenseDistribution[1].Category)

		require.NotNil(t, report.TotalExpensesPrev)
		assert.InDelta(t, 1000.0, *report.TotalExpensesPrev, 0.001)
		require.NotNil(t, report.ExpensesEvolution)
		assert.InDelta(t, 50.0, *report.ExpensesEvolution, 0.001)
		require.NotNil(t, report.IncomeEvolution)
		assert.InDelta(t, 0.0, *report.IncomeEvolution, 0.001)
		require.NotNil(t, report.NetBenefitEvolution)
		assert.InDelta(t, -4.1, *report.NetBenefitEvolution, 0.001)
	})

	t.Run("estimates vacancy when the unit was empty", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAnalyticsService(t, db, afterYearEnd)

		ownerID := testutil.NewUser().Build(t, db)
		property := testutil.NewProperty(ownerID).WithAcquisitionPrice("150000").Build(t, db)
		unit := testutil.CreateLeasedUnit(t, db, property.ID, "900")

		// Let from July only
		testutil.NewLeasePeriod(unit.ApplicationID, testutil.Date(2024, time.July, 1)).
			WithRent(90000, 0).
			Build(t, db)

		report, err := svc.GetAnnualReport(ctx, model.ReportScope{UserID: ownerID, PropertyID: property.ID, Year: 2024})
		require.NoError(t, err)

		assert.InDelta(t, 5400.0, report.TotalIncome, 0.001)
		assert.InDelta(t, 5400.0, report.VacancyLoss, 0.001)
		assert.Nil(t, report.IncomeEvolution, "no income in 2023")
	})

	t.Run("rejects a property owned by someone else", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAnalyticsService(t, db, afterYearEnd)
		fx := seedRentedPortfolio(t, db)
		intruder := testutil.NewUser().Build(t, db)

		_, err := svc.GetAnnualReport(ctx, model.ReportScope{UserID: intruder, PropertyID: fx.Property.ID, Year: 2024})
		assert.ErrorIs(t, err, apperrors.ErrPropertyNotOwned)
	})

	t.Run("reports an unknown property", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAnalyticsService(t, db, afterYearEnd)
		ownerID := testutil.NewUser().Build(t, db)

		_, err := svc.GetAnnualReport(ctx, model.ReportScope{UserID: ownerID, PropertyID: testutil.MakeID(), Year: 2024})
		assert.ErrorIs(t, err, apperrors.ErrPropertyNotFound)
	})

	t.Run("requires a user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAnalyticsService(t, db, afterYearEnd)

		_, err := svc.GetAnnualReport(ctx, model.ReportScope{Year: 2024})
		assert.ErrorIs(t, err, apperrors.ErrMissingUser)
	})

	t.Run("returns zeros for an empty portfolio", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAnalyticsService(t, db, afterYearEnd)
		ownerID := testutil.NewUser().Build(t, db)

		report, err := svc.GetAnnualReport(ctx, model.ReportScope{UserID: ownerID, Year: 2024})
		require.NoError(t, err)

		assert.Zero(t, report.TotalIncome)
		assert.Zero(t, report.YieldGross)
		assert.Len(t, report.Cashflow, 12)
		assert.Empty(t, report.ExpenseDistribution)
		assert.Nil(t, report.NetBenefitEvolution)
	})

	t.Run("surfaces load failures", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAnalyticsService(t, db, afterYearEnd)
		fx := seedRentedPortfolio(t, db)
		db.Close()

		_, err := svc.GetAnnualReport(ctx, model.ReportScope{UserID: fx.OwnerID, Year: 2024})
		assert.ErrorIs(t, err, apperrors.ErrFailedToLoadReportData)
	})
}
