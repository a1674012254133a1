package analytics

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndewijer/Rental-Analytics-Backend/internal/model"
)

// TestEngine_ComputeAnnualReport covers the assembled report end to end.
//
// WHY: The report is the only thing callers see; totals, yields and
// evolutions must agree with each other and with the raw records.
func TestEngine_ComputeAnnualReport(t *testing.T) {
	engine := NewEngine(Config{TaxRetention: 0.7})
	now := date(t, "2025-02-01")

	t.Run("single full-year lease", func(t *testing.T) {
		data := Dataset{
			Properties:   []model.PropertyValue{property(200000)},
			LeasePeriods: []model.LeasePeriod{period(t, "2024-01-01", "2024-12-31", 100000, 10000)},
		}

		report := engine.ComputeAnnualReport(data, 2024, now)

		assert.Equal(t, 2024, report.Year)
		assert.Equal(t, 13200.0, report.TotalIncome)
		assert.Equal(t, 0.0, report.TotalExpenses)
		assert.Equal(t, 13200.0, report.NetBenefit)
		assert.Equal(t, 6.0, report.YieldGross)
		assert.Equal(t, 6.6, report.YieldNet)
		assert.Equal(t, 4.62, report.YieldNetNet)
		assert.Equal(t, 200000.0, report.PropertyValue)

		require.Len(t, report.Cashflow, 12)
		for i, month := range report.Cashflow {
			assert.Equal(t, i+1, month.Month)
			assert.Equal(t, 1100.0, month.Income)
		}

		// 2023 had no income or expenses: every baseline is zero.
		assert.Nil(t, report.IncomeEvolution)
		assert.Nil(t, report.ExpensesEvolution)
		assert.Nil(t, report.NetBenefitEvolution)
		assert.Nil(t, report.YieldGrossEvolution)
		require.NotNil(t, report.TotalIncomePrev)
		assert.Equal(t, 0.0, *report.TotalIncomePrev)
	})

	t.Run("base rent without charges gives equal gross and net yields", func(t *testing.T) {
		data := Dataset{
			Properties:   []model.PropertyValue{property(200000)},
			LeasePeriods: []model.LeasePeriod{period(t, "2024-01-01", "2024-12-31", 100000, 0)},
		}

		report := engine.ComputeAnnualReport(data, 2024, now)

		assert.Equal(t, 12000.0, report.TotalIncome)
		assert.Equal(t, 6.0, report.YieldGross)
		assert.Equal(t, 6.0, report.YieldNet)
		assert.Equal(t, 4.2, report.YieldNetNet)
	})

	t.Run("empty portfolio is all zeros", func(t *testing.T) {
		report := engine.ComputeAnnualReport(Dataset{}, 2024, now)

		assert.Equal(t, 0.0, report.TotalIncome)
		assert.Equal(t, 0.0, report.YieldGross)
		assert.Equal(t, 0.0, report.VacancyLoss)
		assert.Empty(t, report.ExpenseDistribution)
		assert.Len(t, report.Cashflow, 12)
		assert.Nil(t, report.YieldNetEvolution)
	})

	t.Run("no leases with an active listing reports vacancy", func(t *testing.T) {
		data := Dataset{
			Properties: []model.PropertyValue{property(150000)},
			Listings:   []model.UnitListing{listing("unit-a", 700)},
		}

		report := engine.ComputeAnnualReport(data, 2024, now)

		assert.Equal(t, 0.0, report.TotalIncome)
		assert.Equal(t, 0.0, report.YieldGross)
		assert.Equal(t, 0.0, report.YieldNet)
		assert.Equal(t, 0.0, report.YieldNetNet)
		assert.Equal(t, 8400.0, report.VacancyLoss)
		assert.Nil(t, report.IncomeEvolution)
	})

	t.Run("records outside the scope are ignored", func(t *testing.T) {
		foreign := period(t, "2024-01-01", "", 999999, 0)
		foreign.PropertyID = "someone-else"
		foreignExpense := expense(t, "2024-05-05", model.ExpenseCategoryOther, 12345)
		foreignExpense.PropertyID = "someone-else"

		data := Dataset{
			Properties:   []model.PropertyValue{property(100000)},
			LeasePeriods: []model.LeasePeriod{foreign},
			Expenses:     []model.Expense{foreignExpense},
		}

		report := engine.ComputeAnnualReport(data, 2024, now)

		assert.Equal(t, 0.0, report.TotalIncome)
		assert.Equal(t, 0.0, report.TotalExpenses)
	})

	t.Run("expense distribution is sorted by amount", func(t *testing.T) {
		data := Dataset{
			Properties: []model.PropertyValue{property(100000)},
			Expenses: []model.Expense{
				expense(t, "2024-02-01", model.ExpenseCategoryInsurance, 30000),
				expense(t, "2024-03-01", model.ExpenseCategoryPropertyTax, 120000),
				expense(t, "2024-04-01", model.ExpenseCategoryInsurance, 5000),
				expense(t, "2024-05-01", model.ExpenseCategoryCondoFees, 35000),
			},
		}

		report := engine.ComputeAnnualReport(data, 2024, now)

		assert.Equal(t, []model.CategoryAmount{
			{Category: model.ExpenseCategoryPropertyTax, Amount: 1200},
			{Category: model.ExpenseCategoryCondoFees, Amount: 350},
			{Category: model.ExpenseCategoryInsurance, Amount: 350},
		}, report.ExpenseDistribution)
		assert.Equal(t, 1900.0, report.TotalExpenses)
		assert.Equal(t, -1900.0, report.NetBenefit)
		assert.Equal(t, -1.9, report.YieldNet)
		assert.Equal(t, -1.9, report.YieldNetNet)
	})

	t.Run("non-recoverable expense keeps its deductible amount", func(t *testing.T) {
		e := expense(t, "2024-03-15", model.ExpenseCategoryMaintenance, 50000)
		e.AmountDeductibleCents = 42000
		e.AmountRecoverableCents = 50000

		data := Dataset{
			Properties: []model.PropertyValue{property(100000)},
			Expenses:   []model.Expense{e},
		}

		report := engine.ComputeAnnualReport(data, 2024, now)

		assert.Equal(t, 0.0, report.TotalRecoverable)
		assert.Equal(t, 420.0, report.TotalDeductible)
		assert.Equal(t, 500.0, report.Cashflow[2].Expenses)
	})
}

// TestEngine_Evolution tests the comparison with the previous year.
//
// WHY: Evolutions are only meaningful when both years are derived identically,
// and a zero baseline must never turn into an infinite percentage.
func TestEngine_Evolution(t *testing.T) {
	engine := NewEngine(Config{})
	now := date(t, "2025-02-01")

	data := Dataset{
		Properties: []model.PropertyValue{property(200000)},
		LeasePeriods: []model.LeasePeriod{
			period(t, "2023-01-01", "2023-12-31", 100000, 0),
			period(t, "2024-01-01", "", 110000, 0),
		},
		Expenses: []model.Expense{
			expense(t, "2023-06-01", model.ExpenseCategoryInsurance, 100000),
			expense(t, "2024-06-01", model.ExpenseCategoryInsurance, 50000),
		},
	}

	report := engine.ComputeAnnualReport(data, 2024, now)

	require.NotNil(t, report.IncomeEvolution)
	assert.Equal(t, 10.0, *report.IncomeEvolution)

	require.NotNil(t, report.ExpensesEvolution)
	assert.Equal(t, -50.0, *report.ExpensesEvolution)

	// Net benefit: 12700 against 11000.
	require.NotNil(t, report.NetBenefitEvolution)
	assert.Equal(t, 15.45, *report.NetBenefitEvolution)

	require.NotNil(t, report.YieldGrossEvolution)
	assert.Equal(t, 10.0, *report.YieldGrossEvolution)
	require.NotNil(t, report.YieldNetEvolution)
	assert.Equal(t, 15.45, *report.YieldNetEvolution)
	require.NotNil(t, report.YieldNetNetEvolution)
	assert.Equal(t, 15.45, *report.YieldNetNetEvolution)

	require.NotNil(t, report.TotalIncomePrev)
	assert.Equal(t, 12000.0, *report.TotalIncomePrev)
	require.NotNil(t, report.TotalExpensesPrev)
	assert.Equal(t, 1000.0, *report.TotalExpensesPrev)
	require.NotNil(t, report.NetBenefitPrev)
	assert.Equal(t, 11000.0, *report.NetBenefitPrev)
}

func TestPercentChange(t *testing.T) {
	t.Run("negative baseline uses its magnitude", func(t *testing.T) {
		got := percentChange(model.Cents(-50).Decimal(), model.Cents(-100).Decimal())

		require.NotNil(t, got)
		assert.Equal(t, "50", got.String())
	})

	t.Run("zero baseline is nil", func(t *testing.T) {
		assert.Nil(t, percentChange(model.Cents(10).Decimal(), model.Cents(0).Decimal()))
		assert.Nil(t, incomeChange(model.Cents(10).Decimal(), model.Cents(0).Decimal()))
	})
}

// TestEngine_PriorYearFailure tests that a failing comparison does not fail the report.
func TestEngine_PriorYearFailure(t *testing.T) {
	engine := NewEngine(Config{})
	engine.priorYear = func(Dataset, Scope, int) yearFigures {
		panic("corrupt prior-year data")
	}

	data := Dataset{
		Properties:   []model.PropertyValue{property(200000)},
		LeasePeriods: []model.LeasePeriod{period(t, "2024-01-01", "", 100000, 0)},
	}

	report := engine.ComputeAnnualReport(data, 2024, date(t, "2025-01-10"))

	assert.Equal(t, 12000.0, report.TotalIncome)
	assert.Equal(t, 6.0, report.YieldGross)
	assert.Nil(t, report.IncomeEvolution)
	assert.Nil(t, report.YieldNetNetEvolution)
	assert.Nil(t, report.TotalIncomePrev)
	assert.Nil(t, report.TotalExpensesPrev)
	assert.Nil(t, report.NetBenefitPrev)
}

// TestEngine_Idempotent tests that identical inputs give identical output.
func TestEngine_Idempotent(t *testing.T) {
	engine := NewEngine(Config{})
	now := date(t, "2024-08-17")

	data := Dataset{
		Properties: []model.PropertyValue{property(321000)},
		LeasePeriods: []model.LeasePeriod{
			period(t, "2023-03-12", "2024-04-30", 87000, 6500),
			period(t, "2024-05-01", "", 91000, 6500),
		},
		Expenses: []model.Expense{
			expense(t, "2024-01-03", model.ExpenseCategoryPropertyTax, 143200),
			expense(t, "2024-07-21", model.ExpenseCategoryMaintenance, 23999),
			expense(t, "2024-07-22", model.ExpenseCategoryUtilities, 23999),
		},
		Listings: []model.UnitListing{listing("unit-a", 990), listing("unit-b", 410)},
	}

	first, err := json.Marshal(engine.ComputeAnnualReport(data, 2024, now))
	require.NoError(t, err)
	second, err := json.Marshal(engine.ComputeAnnualReport(data, 2024, now))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestNewEngine_RetentionFallback(t *testing.T) {
	for _, r := range []float64{0, -1, 1.5} {
		assert.Equal(t, "0.7", NewEngine(Config{TaxRetention: r}).taxRetention.String())
	}
	assert.Equal(t, "0.55", NewEngine(Config{TaxRetention: 0.55}).taxRetention.String())
}
