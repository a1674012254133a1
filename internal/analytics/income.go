package analytics

import (
	"time"

	"github.com/ndewijer/Rental-Analytics-Backend/internal/model"
)

// IncomeSummary is the lease income of one calendar year.
type IncomeSummary struct {
	Monthly        [12]model.Cents // Base rent plus service charges, January first
	AnnualBaseRent model.Cents     // Base rent only; charges are excluded from yields
}

// Total returns the sum of the monthly buckets.
func (s IncomeSummary) Total() model.Cents {
	var total model.Cents
	for _, v := range s.Monthly {
		total += v
	}
	return total
}

// AggregateIncome buckets lease periods into the months of year.
//
// A month counts as covered when its 15th falls inside [StartDate, EndDate]
// (EndDate nil meaning open-ended). A lease starting on the 20th therefore
// earns nothing for that month, and one starting on the 10th earns the full
// month. Periods that end before Jan 1 or start after Dec 31 are skipped.
func AggregateIncome(periods []model.LeasePeriod, year int) IncomeSummary {
	var summary IncomeSummary
	first, last := yearBounds(year)

	for _, p := range periods {
		start := civilDate(p.StartDate)
		if start.After(last) {
			continue
		}

		var end *time.Time
		if p.EndDate != nil {
			e := civilDate(*p.EndDate)
			if e.Before(first) {
				continue
			}
			end = &e
		}

		for m := time.January; m <= time.December; m++ {
			sample := monthSample(year, m)
			if start.After(sample) {
				continue
			}
			if end != nil && end.Before(sample) {
				continue
			}

			summary.Monthly[m-1] += p.BaseRentCents + p.ServiceChargesCents
			summary.AnnualBaseRent += p.BaseRentCents
		}
	}

	return summary
}
