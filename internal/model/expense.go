package model

import "time"

// Expense categories. The set is open; these are the ones the frontend offers.
const (
	ExpenseCategoryLoanInterest   = "loan_interest"
	ExpenseCategoryPropertyTax    = "property_tax"
	ExpenseCategoryInsurance      = "insurance"
	ExpenseCategoryMaintenance    = "maintenance"
	ExpenseCategoryManagementFees = "management_fees"
	ExpenseCategoryCondoFees      = "condo_fees"
	ExpenseCategoryUtilities      = "utilities"
	ExpenseCategoryOther          = "other"
)

// Expense is a dated, categorized outflow tied to a property.
// AmountDeductibleCents and AmountRecoverableCents never exceed AmountTotalCents;
// AmountRecoverableCents only counts when IsRecoverable is set.
type Expense struct {
	ID                     string
	PropertyID             string
	Category               string
	Label                  string
	AmountTotalCents       Cents
	AmountDeductibleCents  Cents
	AmountRecoverableCents Cents
	IsRecoverable          bool
	DateOccurred           time.Time
}
