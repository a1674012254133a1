package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/ndewijer/Rental-Analytics-Backend/internal/model"
)

var hundred = decimal.NewFromInt(100)

// Yields holds the unrounded yield percentages of one year.
type Yields struct {
	NetBenefit model.Cents
	Gross      decimal.Decimal
	Net        decimal.Decimal
	NetNet     decimal.Decimal
}

// CalculateYields derives the yields from a year's income and expenses against
// the acquisition value. All yields are zero when value is not positive.
//
// NetNet applies the tax retention factor to positive net yields only; a
// negative net yield passes through unchanged.
func CalculateYields(income IncomeSummary, expenses ExpenseSummary, value model.Major, taxRetention decimal.Decimal) Yields {
	y := Yields{NetBenefit: income.Total() - expenses.Total()}

	if !value.IsPositive() {
		return y
	}

	y.Gross = income.AnnualBaseRent.Major().Div(value.Decimal).Mul(hundred)
	y.Net = y.NetBenefit.Major().Div(value.Decimal).Mul(hundred)
	y.NetNet = y.Net
	if y.Net.IsPositive() {
		y.NetNet = y.Net.Mul(taxRetention)
	}

	return y
}
