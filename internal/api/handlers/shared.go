package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/ndewijer/Rental-Analytics-Backend/internal/validation"
)

// parseYear reads the year query parameter, falling back to defaultYear when absent.
func parseYear(r *http.Request, defaultYear int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("year"))
	if raw == "" {
		return defaultYear, nil
	}

	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, validation.ErrInvalidYear
	}
	if err := validation.ValidateYear(year); err != nil {
		return 0, err
	}
	return year, nil
}
