package model

import (
	"github.com/shopspring/decimal"
)

// Cents is an amount in minor currency units. Lease rents, service charges and
// expenses are stored and aggregated as Cents.
type Cents int64

// Major converts the amount to major currency units.
func (c Cents) Major() Major {
	return Major{decimal.New(int64(c), -2)}
}

// Decimal returns the amount in cents as a decimal, for arithmetic that needs
// fractional cents before the final rounding.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(c))
}

// Float64 converts the amount to major units for API responses.
func (c Cents) Float64() float64 {
	return c.Major().InexactFloat64()
}

// Major is an amount in major currency units (e.g. euros). Acquisition prices
// and listing asking prices are stored in Major units.
type Major struct {
	decimal.Decimal
}

// NewMajor wraps a decimal value as a Major amount.
func NewMajor(d decimal.Decimal) Major {
	return Major{d}
}

// MajorFromInt returns a whole-unit Major amount.
func MajorFromInt(v int64) Major {
	return Major{decimal.NewFromInt(v)}
}

// ParseMajor parses a decimal string such as "1250.50".
func ParseMajor(s string) (Major, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Major{}, err
	}
	return Major{d}, nil
}

// Cents converts the amount to minor units, rounding half away from zero.
func (m Major) Cents() Cents {
	return Cents(m.Shift(2).Round(0).IntPart())
}

// Plus returns m + other.
func (m Major) Plus(other Major) Major {
	return Major{m.Add(other.Decimal)}
}
