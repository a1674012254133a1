package validation

import (
	"fmt"

	"github.com/google/uuid"
)

// Common validation errors
var (
	ErrInvalidUUID = fmt.Errorf("invalid UUID format")
	ErrInvalidYear = fmt.Errorf("invalid year")
)

// Report years accepted by the API.
const (
	MinReportYear = 1900
	MaxReportYear = 9999
)

// ValidateUUID checks if a string is a valid UUID
func ValidateUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidUUID, id)
	}
	return nil
}

// ValidateYear checks that year lies in the supported report range.
func ValidateYear(year int) error {
	if year < MinReportYear || year > MaxReportYear {
		return fmt.Errorf("%w: %d is outside %d-%d", ErrInvalidYear, year, MinReportYear, MaxReportYear)
	}
	return nil
}
