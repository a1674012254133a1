package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ndewijer/Rental-Analytics-Backend/internal/model"
)

// ListingRepository provides read access to listings and their rental units.
type ListingRepository struct {
	db *sql.DB
}

// NewListingRepository creates a new ListingRepository with the provided database connection.
func NewListingRepository(db *sql.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

// FetchActiveListingsPerUnit returns one active listing per rental unit of the
// given properties: the most recently created one. Units without an active
// listing are absent.
//
// Returns an empty slice if propertyIDs is empty.
func (r *ListingRepository) FetchActiveListingsPerUnit(ctx context.Context, propertyIDs []string) ([]model.UnitListing, error) {
	if len(propertyIDs) == 0 {
		return []model.UnitListing{}, nil
	}

	placeholders, args := inClause(propertyIDs)

	//#nosec G202 -- Safe: placeholders are generated programmatically, not from user input
	query := `
		SELECT l.id, l.rental_unit_id, ru.property_id, l.monthly_price
		FROM listing l
		JOIN rental_unit ru ON ru.id = l.rental_unit_id
		WHERE l.is_active = 1
		AND ru.property_id IN (` + placeholders + `)
		ORDER BY l.rental_unit_id ASC, l.created_at DESC, l.id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query listing table: %w", err)
	}
	defer rows.Close()

	listings := []model.UnitListing{}
	seenUnits := make(map[string]bool)

	for rows.Next() {
		var l model.UnitListing
		var priceStr string

		if err := rows.Scan(&l.ListingID, &l.RentalUnitID, &l.PropertyID, &priceStr); err != nil {
			return nil, fmt.Errorf("failed to scan listing table results: %w", err)
		}

		// Rows are ordered newest first within a unit.
		if seenUnits[l.RentalUnitID] {
			continue
		}
		seenUnits[l.RentalUnitID] = true

		l.MonthlyPrice, err = model.ParseMajor(priceStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse monthly_price of listing %s: %w", l.ListingID, err)
		}

		listings = append(listings, l)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating listing table: %w", err)
	}

	return listings, nil
}
