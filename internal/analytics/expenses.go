package analytics

import (
	"github.com/ndewijer/Rental-Analytics-Backend/internal/model"
)

// ExpenseSummary is the expense side of one calendar year.
type ExpenseSummary struct {
	Monthly          [12]model.Cents
	ByCategory       map[string]model.Cents
	TotalDeductible  model.Cents
	TotalRecoverable model.Cents
}

// Total returns the sum of the monthly buckets.
func (s ExpenseSummary) Total() model.Cents {
	var total model.Cents
	for _, v := range s.Monthly {
		total += v
	}
	return total
}

// AggregateExpenses sums the expenses dated between Jan 1 and Dec 31 of year,
// both inclusive. Deductible amounts always count; recoverable amounts only
// when the expense is flagged recoverable.
func AggregateExpenses(expenses []model.Expense, year int) ExpenseSummary {
	summary := ExpenseSummary{ByCategory: make(map[string]model.Cents)}

	for _, e := range expenses {
		occurred := civilDate(e.DateOccurred)
		if occurred.Year() != year {
			continue
		}

		summary.Monthly[occurred.Month()-1] += e.AmountTotalCents
		summary.ByCategory[e.Category] += e.AmountTotalCents
		summary.TotalDeductible += e.AmountDeductibleCents
		if e.IsRecoverable {
			summary.TotalRecoverable += e.AmountRecoverableCents
		}
	}

	return summary
}
