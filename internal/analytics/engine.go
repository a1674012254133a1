// Package analytics computes yearly financial reports for rental properties.
//
// The engine is a pure function of a Dataset snapshot, a target year and an
// injected current date. It performs no I/O; callers fetch the raw records once
// (covering the target year and the year before) and pass them in.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Rental-Analytics-Backend/internal/model"
)

// DefaultTaxRetention is the share of a positive net yield kept after tax.
const DefaultTaxRetention = 0.7

// Dataset is the read-only snapshot of raw records a report is computed from.
// Expenses should cover both the target year and the year before so that the
// year-over-year comparison reuses the same records.
type Dataset struct {
	Properties   []model.PropertyValue
	LeasePeriods []model.LeasePeriod
	Expenses     []model.Expense
	Listings     []model.UnitListing
}

// Config holds the policy parameters of the engine.
type Config struct {
	TaxRetention float64 // Factor applied to positive net yields, in (0, 1]
}

// Engine computes annual reports. It holds no state between calls and is safe
// for concurrent use.
type Engine struct {
	taxRetention decimal.Decimal

	// priorYear computes the comparison year's figures.
	priorYear func(data Dataset, scope Scope, year int) yearFigures
}

// NewEngine creates an Engine. A retention factor outside (0, 1] falls back to
// DefaultTaxRetention.
func NewEngine(cfg Config) *Engine {
	retention := cfg.TaxRetention
	if retention <= 0 || retention > 1 {
		retention = DefaultTaxRetention
	}

	e := &Engine{taxRetention: decimal.NewFromFloat(retention)}
	e.priorYear = e.computeYear
	return e
}

// yearFigures are the income, expense and yield figures of one year.
type yearFigures struct {
	Income   IncomeSummary
	Expenses ExpenseSummary
	Yields   Yields
}

func (e *Engine) computeYear(data Dataset, scope Scope, year int) yearFigures {
	income := AggregateIncome(data.LeasePeriods, year)
	expenses := AggregateExpenses(data.Expenses, year)

	return yearFigures{
		Income:   income,
		Expenses: expenses,
		Yields:   CalculateYields(income, expenses, scope.Value, e.taxRetention),
	}
}

// ComputeAnnualReport builds the report for year over the properties in data.
// now decides whether year is past, current or future for the vacancy estimate.
//
// An empty dataset yields a report of zeros with nil evolutions.
func (e *Engine) ComputeAnnualReport(data Dataset, year int, now time.Time) model.AnalyticsReport {
	scope := ResolveScope(data.Properties)
	data = data.restrictTo(scope)

	current := e.computeYear(data, scope, year)
	vacancy := EstimateVacancyLoss(data.Listings, current.Income.Monthly, year, now)
	evolution := e.compareWithPriorYear(data, scope, year, current)

	return assemble(year, scope, current, vacancy, evolution)
}
