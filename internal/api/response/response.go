// Package response provides utilities for sending consistent HTTP responses.
// It includes helpers for JSON responses and standardized error responses.
package response

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/ndewijer/Rental-Analytics-Backend/internal/apperrors"
)

// ErrorResponse represents a structured error response returned by the API.
// The Details field is optional and can contain additional context about the error.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// RespondJSON sends a JSON response with the given status code.
// If data is nil, only the status code is sent.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("failed to encode JSON response: %v", err)
		}
	}
}

// RespondError sends a structured error response with the given status code.
//
// Example:
//
//	response.RespondError(w, http.StatusBadRequest, "invalid year", err.Error())
func RespondError(w http.ResponseWriter, status int, message string, details any) {
	RespondJSON(w, status, ErrorResponse{
		Error:   message,
		Details: details,
	})
}

// StatusFor maps a service error to its HTTP status code. Errors without a
// known sentinel are internal failures.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrMissingUser):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrPropertyNotOwned):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrPropertyNotFound),
		errors.Is(err, apperrors.ErrSnapshotNotFound),
		errors.Is(err, apperrors.ErrShareTokenInvalid):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrSharingDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// RespondServiceError sends err with the status StatusFor assigns it.
// Internal failures are logged.
func RespondServiceError(w http.ResponseWriter, message string, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("%s: %v", message, err)
	}
	RespondError(w, status, message, err.Error())
}
