package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/ndewijer/Rental-Analytics-Backend/internal/model"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// UserBuilder provides a fluent interface for creating test users.
//
// Example usage:
//
//	user := testutil.NewUser().Build(t, db)
type UserBuilder struct {
	ID    string
	Email string
	Name  string
}

// NewUser creates a UserBuilder with sensible defaults.
func NewUser() *UserBuilder {
	id := MakeID()
	return &UserBuilder{
		ID:    id,
		Email: "owner-" + id[:8] + "@example.com",
		Name:  "Test Owner",
	}
}

// WithID sets a custom ID.
func (b *UserBuilder) WithID(id string) *UserBuilder {
	b.ID = id
	return b
}

// Build creates the user in the database and returns its ID.
func (b *UserBuilder) Build(t *testing.T, db *sql.DB) string {
	t.Helper()

	_, err := db.Exec(`INSERT INTO app_user (id, email, name) VALUES (?, ?, ?)`, b.ID, b.Email, b.Name)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return b.ID
}

// PropertyBuilder provides a fluent interface for creating test properties.
//
// Example usage:
//
//	property := testutil.NewProperty(ownerID).
//	    WithAcquisitionPrice("200000").
//	    Build(t, db)
type PropertyBuilder struct {
	ID               string
	OwnerID          string
	Name             string
	AcquisitionPrice *string
}

// NewProperty creates a PropertyBuilder owned by ownerID without a recorded price.
func NewProperty(ownerID string) *PropertyBuilder {
	return &PropertyBuilder{
		ID:      MakeID(),
		OwnerID: ownerID,
		Name:    MakePropertyName("Test Property"),
	}
}

// WithID sets a custom ID.
func (b *PropertyBuilder) WithID(id string) *PropertyBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *PropertyBuilder) WithName(name string) *PropertyBuilder {
	b.Name = name
	return b
}

// WithAcquisitionPrice sets the purchase price as a decimal string in major units.
func (b *PropertyBuilder) WithAcquisitionPrice(price string) *PropertyBuilder {
	b.AcquisitionPrice = &price
	return b
}

// Build creates the property in the database and returns it.
func (b *PropertyBuilder) Build(t *testing.T, db *sql.DB) model.Property {
	t.Helper()

	query := `
		INSERT INTO property (id, owner_id, name, acquisition_price)
		VALUES (?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.OwnerID, b.Name, b.AcquisitionPrice)
	if err != nil {
		t.Fatalf("Failed to create test property: %v", err)
	}

	p := model.Property{
		ID:      b.ID,
		OwnerID: b.OwnerID,
		Name:    b.Name,
	}
	if b.AcquisitionPrice != nil {
		price, err := model.ParseMajor(*b.AcquisitionPrice)
		if err != nil {
			t.Fatalf("Invalid acquisition price %q: %v", *b.AcquisitionPrice, err)
		}
		p.AcquisitionPrice = &price
	}
	return p
}

// CreateRentalUnit creates a whole-property unit on propertyID and returns its ID.
func CreateRentalUnit(t *testing.T, db *sql.DB, propertyID string) string {
	t.Helper()

	id := MakeID()
	_, err := db.Exec(`INSERT INTO rental_unit (id, property_id, name) VALUES (?, ?, ?)`, id, propertyID, "Unit "+id[:4])
	if err != nil {
		t.Fatalf("Failed to create test rental unit: %v", err)
	}
	return id
}

// ListingBuilder provides a fluent interface for creating test listings.
type ListingBuilder struct {
	ID           string
	RentalUnitID string
	MonthlyPrice string
	IsActive     bool
	CreatedAt    time.Time
}

// NewListing creates an active ListingBuilder for unitID.
func NewListing(unitID string) *ListingBuilder {
	return &ListingBuilder{
		ID:           MakeID(),
		RentalUnitID: unitID,
		MonthlyPrice: "1000",
		IsActive:     true,
		CreatedAt:    time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

// WithMonthlyPrice sets the asking rent as a decimal string in major units.
func (b *ListingBuilder) WithMonthlyPrice(price string) *ListingBuilder {
	b.MonthlyPrice = price
	return b
}

// WithCreatedAt sets the creation timestamp used to rank listings of a unit.
func (b *ListingBuilder) WithCreatedAt(createdAt time.Time) *ListingBuilder {
	b.CreatedAt = createdAt
	return b
}

// Inactive marks the listing as no longer advertised.
func (b *ListingBuilder) Inactive() *ListingBuilder {
	b.IsActive = false
	return b
}

// Build creates the listing in the database and returns its ID.
func (b *ListingBuilder) Build(t *testing.T, db *sql.DB) string {
	t.Helper()

	query := `
		INSERT INTO listing (id, rental_unit_id, monthly_price, is_active, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.RentalUnitID, b.MonthlyPrice, b.IsActive, b.CreatedAt.Format(dateTimeLayout))
	if err != nil {
		t.Fatalf("Failed to create test listing: %v", err)
	}
	return b.ID
}

// CreateApplication creates a rental application on listingID with the given lease status.
func CreateApplication(t *testing.T, db *sql.DB, listingID, status string) string {
	t.Helper()

	id := MakeID()
	_, err := db.Exec(`INSERT INTO rental_application (id, listing_id, lease_status) VALUES (?, ?, ?)`, id, listingID, status)
	if err != nil {
		t.Fatalf("Failed to create test application: %v", err)
	}
	return id
}

// LeasePeriodBuilder provides a fluent interface for creating lease financial periods.
//
// Example usage:
//
//	testutil.NewLeasePeriod(applicationID, start).
//	    Until(end).
//	    WithRent(100000, 10000).
//	    Build(t, db)
type LeasePeriodBuilder struct {
	ID                  string
	ApplicationID       string
	StartDate           time.Time
	EndDate             *time.Time
	BaseRentCents       int64
	ServiceChargesCents int64
}

// NewLeasePeriod creates an open-ended period starting at start with 1000.00 base rent.
func NewLeasePeriod(applicationID string, start time.Time) *LeasePeriodBuilder {
	return &LeasePeriodBuilder{
		ID:            MakeID(),
		ApplicationID: applicationID,
		StartDate:     start,
		BaseRentCents: 100000,
	}
}

// Until closes the period on end (inclusive).
func (b *LeasePeriodBuilder) Until(end time.Time) *LeasePeriodBuilder {
	b.EndDate = &end
	return b
}

// WithRent sets base rent and service charges in cents.
func (b *LeasePeriodBuilder) WithRent(baseRent, serviceCharges int64) *LeasePeriodBuilder {
	b.BaseRentCents = baseRent
	b.ServiceChargesCents = serviceCharges
	return b
}

// Build creates the period in the database and returns its ID.
func (b *LeasePeriodBuilder) Build(t *testing.T, db *sql.DB) string {
	t.Helper()

	var end *string
	if b.EndDate != nil {
		s := b.EndDate.Format(dateLayout)
		end = &s
	}

	query := `
		INSERT INTO lease_financial_period (id, application_id, start_date, end_date, base_rent_cents, service_charges_cents)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.ApplicationID, b.StartDate.Format(dateLayout), end, b.BaseRentCents, b.ServiceChargesCents)
	if err != nil {
		t.Fatalf("Failed to create test lease period: %v", err)
	}
	return b.ID
}

// ExpenseBuilder provides a fluent interface for creating test expenses.
//
// Example usage:
//
//	testutil.NewExpense(propertyID, date).
//	    WithCategory(model.ExpenseCategoryPropertyTax).
//	    WithAmount(120000).
//	    Deductible(120000).
//	    Build(t, db)
type ExpenseBuilder struct {
	ID                     string
	PropertyID             string
	Category               string
	Label                  string
	AmountTotalCents       int64
	AmountDeductibleCents  int64
	AmountRecoverableCents int64
	IsRecoverable          bool
	DateOccurred           time.Time
}

// NewExpense creates a 100.00 maintenance expense on date.
func NewExpense(propertyID string, date time.Time) *ExpenseBuilder {
	return &ExpenseBuilder{
		ID:               MakeID(),
		PropertyID:       propertyID,
		Category:         model.ExpenseCategoryMaintenance,
		Label:            "Test expense",
		AmountTotalCents: 10000,
		DateOccurred:     date,
	}
}

// WithCategory sets the expense category.
func (b *ExpenseBuilder) WithCategory(category string) *ExpenseBuilder {
	b.Category = category
	return b
}

// WithAmount sets the total amount in cents.
func (b *ExpenseBuilder) WithAmount(cents int64) *ExpenseBuilder {
	b.AmountTotalCents = cents
	return b
}

// Deductible sets the tax-deductible part in cents.
func (b *ExpenseBuilder) Deductible(cents int64) *ExpenseBuilder {
	b.AmountDeductibleCents = cents
	return b
}

// Recoverable flags the expense as rebillable to tenants for the given amount in cents.
func (b *ExpenseBuilder) Recoverable(cents int64) *ExpenseBuilder {
	b.AmountRecoverableCents = cents
	b.IsRecoverable = true
	return b
}

// Build creates the expense in the database and returns its ID.
func (b *ExpenseBuilder) Build(t *testing.T, db *sql.DB) string {
	t.Helper()

	query := `
		INSERT INTO expense (
			id, property_id, category, label, amount_total_cents, amount_deductible_cents,
			amount_recoverable_cents, is_recoverable, date_occurred
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID,
		b.PropertyID,
		b.Category,
		b.Label,
		b.AmountTotalCents,
		b.AmountDeductibleCents,
		b.AmountRecoverableCents,
		b.IsRecoverable,
		b.DateOccurred.Format(dateLayout),
	)
	if err != nil {
		t.Fatalf("Failed to create test expense: %v", err)
	}
	return b.ID
}

// Convenience functions

// LeasedUnit holds the ids of a unit chain created by CreateLeasedUnit.
type LeasedUnit struct {
	UnitID        string
	ListingID     string
	ApplicationID string
}

// CreateLeasedUnit creates a unit on propertyID with an active listing at
// monthlyPrice and a signed application, ready for lease periods.
//
// Example usage:
//
//	unit := testutil.CreateLeasedUnit(t, db, property.ID, "1000")
//	testutil.NewLeasePeriod(unit.ApplicationID, start).Build(t, db)
func CreateLeasedUnit(t *testing.T, db *sql.DB, propertyID, monthlyPrice string) LeasedUnit {
	t.Helper()

	unitID := CreateRentalUnit(t, db, propertyID)
	listingID := NewListing(unitID).WithMonthlyPrice(monthlyPrice).Build(t, db)
	applicationID := CreateApplication(t, db, listingID, model.LeaseStatusSigned)

	return LeasedUnit{
		UnitID:        unitID,
		ListingID:     listingID,
		ApplicationID: applicationID,
	}
}

// Date returns midnight UTC on the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
