package model

// UnitListing is the asking price advertised for a rental unit.
// MonthlyPrice is in major units.
type UnitListing struct {
	ListingID    string
	RentalUnitID string
	PropertyID   string
	MonthlyPrice Major
}
