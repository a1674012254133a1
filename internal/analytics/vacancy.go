package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Rental-Analytics-Backend/internal/model"
)

// FractionOfYearElapsed returns how much of year has passed as of now:
// 1 for past years, 0 for future years, and dayOfYear/daysInYear for the
// current year. The current day counts as elapsed.
func FractionOfYearElapsed(year int, now time.Time) decimal.Decimal {
	today := civilDate(now)

	switch {
	case year < today.Year():
		return decimal.NewFromInt(1)
	case year > today.Year():
		return decimal.Zero
	}

	fraction := decimal.NewFromInt(int64(today.YearDay())).
		Div(decimal.NewFromInt(int64(daysInYear(year))))
	return clamp01(fraction)
}

// PotentialAnnualRent sums twelve months of asking price over the listed
// rental units. Only the first listing seen for a unit counts.
func PotentialAnnualRent(listings []model.UnitListing) model.Major {
	seen := make(map[string]struct{}, len(listings))
	var total model.Major

	for _, l := range listings {
		if _, ok := seen[l.RentalUnitID]; ok {
			continue
		}
		seen[l.RentalUnitID] = struct{}{}
		total = total.Plus(model.NewMajor(l.MonthlyPrice.Mul(decimal.NewFromInt(12))))
	}
	return total
}

// realIncomeToDate returns the income earned so far in year, in fractional cents.
// For the current year the running month contributes dayOfMonth/daysInMonth
// of its bucket.
func realIncomeToDate(monthly [12]model.Cents, year int, now time.Time) decimal.Decimal {
	today := civilDate(now)

	switch {
	case year > today.Year():
		return decimal.Zero
	case year < today.Year():
		var total model.Cents
		for _, v := range monthly {
			total += v
		}
		return total.Decimal()
	}

	var elapsed model.Cents
	for m := time.January; m < today.Month(); m++ {
		elapsed += monthly[m-1]
	}

	slice := monthly[today.Month()-1].Decimal().
		Mul(decimal.NewFromInt(int64(today.Day()))).
		Div(decimal.NewFromInt(int64(daysInMonth(year, today.Month()))))

	return elapsed.Decimal().Add(slice)
}

// EstimateVacancyLoss compares the rent the listed units could have earned so
// far in year with the income actually earned. Time that has not elapsed yet is
// never counted, and earning more than the asking prices yields zero, not a
// negative loss.
func EstimateVacancyLoss(listings []model.UnitListing, monthlyIncome [12]model.Cents, year int, now time.Time) model.Cents {
	fraction := FractionOfYearElapsed(year, now)
	if fraction.IsZero() {
		return 0
	}

	potential := PotentialAnnualRent(listings).Shift(2).Mul(fraction)
	earned := realIncomeToDate(monthlyIncome, year, now)

	loss := potential.Sub(earned)
	if !loss.IsPositive() {
		return 0
	}
	return model.Cents(loss.Round(0).IntPart())
}

func clamp01(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	if one := decimal.NewFromInt(1); d.GreaterThan(one) {
		return one
	}
	return d
}
