package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Rental-Analytics-Backend/internal/model"
)

// assemble converts the cent-based figures to the API report. This is the only
// place where amounts leave integer cents and where percentages get rounded.
func assemble(year int, scope Scope, current yearFigures, vacancy model.Cents, evo Evolution) model.AnalyticsReport {
	totalIncome := current.Income.Total()
	totalExpenses := current.Expenses.Total()

	cashflow := make([]model.MonthlyCashflow, 12)
	for m := time.January; m <= time.December; m++ {
		cashflow[m-1] = model.MonthlyCashflow{
			Month:    int(m),
			Income:   current.Income.Monthly[m-1].Float64(),
			Expenses: current.Expenses.Monthly[m-1].Float64(),
		}
	}

	return model.AnalyticsReport{
		Year:                year,
		TotalIncome:         totalIncome.Float64(),
		TotalExpenses:       totalExpenses.Float64(),
		NetBenefit:          current.Yields.NetBenefit.Float64(),
		Cashflow:            cashflow,
		ExpenseDistribution: distribution(current.Expenses.ByCategory),
		YieldGross:          roundPercent(current.Yields.Gross),
		YieldNet:            roundPercent(current.Yields.Net),
		YieldNetNet:         roundPercent(current.Yields.NetNet),
		PropertyValue:       scope.Value.InexactFloat64(),
		TotalDeductible:     current.Expenses.TotalDeductible.Float64(),
		TotalRecoverable:    current.Expenses.TotalRecoverable.Float64(),
		VacancyLoss:         vacancy.Float64(),

		NetBenefitEvolution:  roundPercentPtr(evo.NetBenefit),
		ExpensesEvolution:    roundPercentPtr(evo.Expenses),
		IncomeEvolution:      roundPercentPtr(evo.Income),
		YieldGrossEvolution:  roundPercentPtr(evo.YieldGross),
		YieldNetEvolution:    roundPercentPtr(evo.YieldNet),
		YieldNetNetEvolution: roundPercentPtr(evo.YieldNetNet),

		TotalIncomePrev:   centsPtr(evo.TotalIncomePrev),
		TotalExpensesPrev: centsPtr(evo.TotalExpensesPrev),
		NetBenefitPrev:    centsPtr(evo.NetBenefitPrev),
	}
}

// distribution lists categories by descending amount, ties by name.
func distribution(byCategory map[string]model.Cents) []model.CategoryAmount {
	type entry struct {
		category string
		cents    model.Cents
	}
	entries := make([]entry, 0, len(byCategory))
	for category, cents := range byCategory {
		entries = append(entries, entry{category, cents})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].cents != entries[j].cents {
			return entries[i].cents > entries[j].cents
		}
		return entries[i].category < entries[j].category
	})

	result := make([]model.CategoryAmount, len(entries))
	for i, e := range entries {
		result[i] = model.CategoryAmount{Category: e.category, Amount: e.cents.Float64()}
	}
	return result
}

func roundPercent(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func roundPercentPtr(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	v := roundPercent(*d)
	return &v
}

func centsPtr(c *model.Cents) *float64 {
	if c == nil {
		return nil
	}
	v := c.Float64()
	return &v
}
