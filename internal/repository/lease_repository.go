package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ndewijer/Rental-Analytics-Backend/internal/model"
)

// LeaseRepository provides read access to lease_financial_period, joined
// through rental_application, listing and rental_unit to the owning property.
type LeaseRepository struct {
	db *sql.DB
}

// NewLeaseRepository creates a new LeaseRepository with the provided database connection.
func NewLeaseRepository(db *sql.DB) *LeaseRepository {
	return &LeaseRepository{db: db}
}

// FetchSignedLeasePeriods retrieves every financial period of signed applications
// on the given properties, sorted by start date. Periods are not filtered by year;
// the analytics engine decides which ones overlap.
//
// Returns an empty slice if propertyIDs is empty.
func (r *LeaseRepository) FetchSignedLeasePeriods(ctx context.Context, propertyIDs []string) ([]model.LeasePeriod, error) {
	if len(propertyIDs) == 0 {
		return []model.LeasePeriod{}, nil
	}

	placeholders, args := inClause(propertyIDs)

	//#nosec G202 -- Safe: placeholders are generated programmatically, not from user input
	query := `
		SELECT lfp.id, lfp.application_id, ru.property_id,
		       lfp.start_date, lfp.end_date,
		       lfp.base_rent_cents, lfp.service_charges_cents
		FROM lease_financial_period lfp
		JOIN rental_application ra ON ra.id = lfp.application_id
		JOIN listing l ON l.id = ra.listing_id
		JOIN rental_unit ru ON ru.id = l.rental_unit_id
		WHERE ra.lease_status = ?
		AND ru.property_id IN (` + placeholders + `)
		ORDER BY lfp.start_date ASC, lfp.id ASC
	`
	args = append([]any{model.LeaseStatusSigned}, args...)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query lease_financial_period table: %w", err)
	}
	defer rows.Close()

	periods := []model.LeasePeriod{}

	for rows.Next() {
		var p model.LeasePeriod
		var startStr string
		var endStr sql.NullString

		err := rows.Scan(
			&p.ID,
			&p.ApplicationID,
			&p.PropertyID,
			&startStr,
			&endStr,
			&p.BaseRentCents,
			&p.ServiceChargesCents,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lease_financial_period results: %w", err)
		}

		p.StartDate, err = ParseTime(startStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse start_date: %w", err)
		}

		p.EndDate, err = parseNullTime(endStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse end_date: %w", err)
		}

		periods = append(periods, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lease_financial_period table: %w", err)
	}

	return periods, nil
}
