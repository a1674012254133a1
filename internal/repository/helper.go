package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/ndewijer/Rental-Analytics-Backend/internal/model"
)

// ParseTime parses a date string in "2006-01-02", RFC3339, SQLite's
// CURRENT_TIMESTAMP ("2006-01-02 15:04:05") or the driver's time.Time
// ("2006-01-02 15:04:05 -0700 MST") format.
func ParseTime(str string) (time.Time, error) {
	var lastErr error
	for _, layout := range []string{
		"2006-01-02",
		time.RFC3339Nano,
		"2006-01-02 15:04:05",
		"2006-01-02 15:04:05.999999999 -0700 MST",
	} {
		t, err := time.Parse(layout, str)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, fmt.Errorf("failed to parse date: %w", lastErr)
}

// parseNullTime parses a nullable date column. NULL yields nil.
func parseNullTime(str sql.NullString) (*time.Time, error) {
	if !str.Valid || str.String == "" {
		return nil, nil
	}
	t, err := ParseTime(str.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseNullMajor parses a nullable decimal column. NULL yields nil.
func parseNullMajor(str sql.NullString) (*model.Major, error) {
	if !str.Valid || str.String == "" {
		return nil, nil
	}
	m, err := model.ParseMajor(str.String)
	if err != nil {
		return nil, fmt.Errorf("failed to parse amount %q: %w", str.String, err)
	}
	return &m, nil
}

// inClause returns "?,?,?" for ids and the matching argument slice.
func inClause(ids []string) (string, []any) {
	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}
	return strings.Join(placeholders, ","), args
}
