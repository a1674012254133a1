package analytics

import (
	"log"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Rental-Analytics-Backend/internal/model"
)

// Evolution holds year-over-year percentage changes and the prior-year
// baselines. A nil change means the baseline was zero. All fields are nil when
// the prior year could not be computed.
type Evolution struct {
	NetBenefit  *decimal.Decimal
	Expenses    *decimal.Decimal
	Income      *decimal.Decimal
	YieldGross  *decimal.Decimal
	YieldNet    *decimal.Decimal
	YieldNetNet *decimal.Decimal

	TotalIncomePrev   *model.Cents
	TotalExpensesPrev *model.Cents
	NetBenefitPrev    *model.Cents
}

// compareWithPriorYear recomputes year-1 from the same dataset and compares it
// with current. It never looks further back than one year. A panic in the
// prior-year pass is logged and results in an empty Evolution.
func (e *Engine) compareWithPriorYear(data Dataset, scope Scope, year int, current yearFigures) (evo Evolution) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("analytics: computing %d for comparison failed: %v", year-1, r)
			evo = Evolution{}
		}
	}()

	prev := e.priorYear(data, scope, year-1)
	return compareYears(current, prev)
}

func compareYears(current, prev yearFigures) Evolution {
	curIncome, prevIncome := current.Income.Total(), prev.Income.Total()
	curExpenses, prevExpenses := current.Expenses.Total(), prev.Expenses.Total()
	curNet, prevNet := current.Yields.NetBenefit, prev.Yields.NetBenefit

	return Evolution{
		NetBenefit:  percentChange(curNet.Decimal(), prevNet.Decimal()),
		Expenses:    percentChange(curExpenses.Decimal(), prevExpenses.Decimal()),
		Income:      incomeChange(curIncome.Decimal(), prevIncome.Decimal()),
		YieldGross:  percentChange(current.Yields.Gross, prev.Yields.Gross),
		YieldNet:    percentChange(current.Yields.Net, prev.Yields.Net),
		YieldNetNet: percentChange(current.Yields.NetNet, prev.Yields.NetNet),

		TotalIncomePrev:   &prevIncome,
		TotalExpensesPrev: &prevExpenses,
		NetBenefitPrev:    &prevNet,
	}
}

// percentChange returns (current-prev)/|prev|*100, or nil when prev is zero.
// Dividing by |prev| keeps the sign meaningful when the baseline is negative.
func percentChange(current, prev decimal.Decimal) *decimal.Decimal {
	if prev.IsZero() {
		return nil
	}
	change := current.Sub(prev).Div(prev.Abs()).Mul(hundred)
	return &change
}

// incomeChange is percentChange for income, whose baseline is non-negative.
func incomeChange(current, prev decimal.Decimal) *decimal.Decimal {
	if prev.IsZero() {
		return nil
	}
	change := current.Sub(prev).Div(prev).Mul(hundred)
	return &change
}
