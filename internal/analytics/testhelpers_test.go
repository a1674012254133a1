package analytics

import (
	"testing"
	"time"

	"github.com/ndewijer/Rental-Analytics-Backend/internal/model"
)

const testProperty = "prop-1"

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func datePtr(t *testing.T, s string) *time.Time {
	t.Helper()
	d := date(t, s)
	return &d
}

func period(t *testing.T, start, end string, base, charges model.Cents) model.LeasePeriod {
	t.Helper()
	p := model.LeasePeriod{
		ID:                  start + "/" + end,
		ApplicationID:       "app-1",
		PropertyID:          testProperty,
		StartDate:           date(t, start),
		BaseRentCents:       base,
		ServiceChargesCents: charges,
	}
	if end != "" {
		p.EndDate = datePtr(t, end)
	}
	return p
}

func expense(t *testing.T, day, category string, total model.Cents) model.Expense {
	t.Helper()
	return model.Expense{
		ID:               day + category,
		PropertyID:       testProperty,
		Category:         category,
		AmountTotalCents: total,
		DateOccurred:     date(t, day),
	}
}

func listing(unit string, monthly int64) model.UnitListing {
	return model.UnitListing{
		ListingID:    "listing-" + unit,
		RentalUnitID: unit,
		PropertyID:   testProperty,
		MonthlyPrice: model.MajorFromInt(monthly),
	}
}

func property(value int64) model.PropertyValue {
	v := model.MajorFromInt(value)
	return model.PropertyValue{ID: testProperty, OwnerID: "owner-1", AcquisitionValue: &v}
}

func fullYear(v model.Cents) [12]model.Cents {
	var m [12]model.Cents
	for i := range m {
		m[i] = v
	}
	return m
}
