package validation

import (
	"github.com/ndewijer/Rental-Analytics-Backend/internal/api/request"
)

// ValidateShareReport checks a share link request. PropertyID is optional;
// an empty value shares the whole portfolio.
func ValidateShareReport(req request.ShareReportRequest) error {
	errors := make(map[string]string)

	if req.PropertyID != "" {
		if err := ValidateUUID(req.PropertyID); err != nil {
			errors["propertyId"] = "propertyId must be a valid UUID"
		}
	}

	if req.Year == 0 {
		errors["year"] = "year is required"
	} else if err := ValidateYear(req.Year); err != nil {
		errors["year"] = "year must be between 1900 and 9999"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
