package model

import "time"

// Property represents a physical rental asset from the database.
type Property struct {
	ID               string    `json:"id"`
	OwnerID          string    `json:"ownerId"`
	Name             string    `json:"name"`
	AcquisitionPrice *Major    `json:"acquisitionPrice,omitempty"` // Nil when no purchase price was recorded
	CreatedAt        time.Time `json:"createdAt"`
}

// PropertyValue is the slice of a property the analytics engine needs:
// its identifier and acquisition value.
type PropertyValue struct {
	ID               string
	OwnerID          string
	AcquisitionValue *Major
}

// RentalUnit is a leasable subdivision of a property (whole unit or a room).
type RentalUnit struct {
	ID         string
	PropertyID string
	Name       string
	Kind       string
}
