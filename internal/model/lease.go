package model

import "time"

// Lease statuses stored on rental_application.lease_status.
const (
	LeaseStatusDraft      = "draft"
	LeaseStatusPending    = "pending"
	LeaseStatusSigned     = "signed"
	LeaseStatusTerminated = "terminated"
)

// LeasePeriod is a window of constant rent terms within a signed lease.
// The window is [StartDate, EndDate]; a nil EndDate is open-ended.
type LeasePeriod struct {
	ID                  string
	ApplicationID       string
	PropertyID          string
	StartDate           time.Time
	EndDate             *time.Time
	BaseRentCents       Cents
	ServiceChargesCents Cents
}
