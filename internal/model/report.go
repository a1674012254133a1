package model

import "time"

// AnalyticsReport is the yearly financial report for one property or a whole
// portfolio. All money fields are in major currency units and yields are
// percentages rounded to two decimals.
//
// Evolution fields are nil when the prior-year baseline is zero or when the
// prior year could not be computed; the Prev fields are nil only in the latter case.
type AnalyticsReport struct {
	Year                int               `json:"year"`
	TotalIncome         float64           `json:"totalIncome"`
	TotalExpenses       float64           `json:"totalExpenses"`
	NetBenefit          float64           `json:"netBenefit"`
	Cashflow            []MonthlyCashflow `json:"cashflow"`
	ExpenseDistribution []CategoryAmount  `json:"expenseDistribution"`
	YieldGross          float64           `json:"yieldGross"`
	YieldNet            float64           `json:"yieldNet"`
	YieldNetNet         float64           `json:"yieldNetNet"`
	PropertyValue       float64           `json:"propertyValue"`
	TotalDeductible     float64           `json:"totalDeductible"`
	TotalRecoverable    float64           `json:"totalRecoverable"`
	VacancyLoss         float64           `json:"vacancyLoss"`

	NetBenefitEvolution  *float64 `json:"netBenefitEvolution"`
	ExpensesEvolution    *float64 `json:"expensesEvolution"`
	IncomeEvolution      *float64 `json:"incomeEvolution"`
	YieldGrossEvolution  *float64 `json:"yieldGrossEvolution"`
	YieldNetEvolution    *float64 `json:"yieldNetEvolution"`
	YieldNetNetEvolution *float64 `json:"yieldNetNetEvolution"`

	TotalIncomePrev   *float64 `json:"totalIncomePrev"`
	TotalExpensesPrev *float64 `json:"totalExpensesPrev"`
	NetBenefitPrev    *float64 `json:"netBenefitPrev"`
}

// MonthlyCashflow is one month of the cashflow series. Month runs 1-12.
type MonthlyCashflow struct {
	Month    int     `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// CategoryAmount is one slice of the expense distribution.
type CategoryAmount struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// ReportSnapshot is a pre-calculated portfolio report stored in report_snapshot.
type ReportSnapshot struct {
	ID           string
	OwnerID      string
	Year         int
	Report       AnalyticsReport
	CalculatedAt time.Time
}

// ReportScope identifies what a report covers. An empty PropertyID means the
// owner's whole portfolio.
type ReportScope struct {
	UserID     string `json:"userId"`
	PropertyID string `json:"propertyId,omitempty"`
	Year       int    `json:"year"`
}
