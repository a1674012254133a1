package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ndewijer/Rental-Analytics-Backend/internal/apperrors"
	"github.com/ndewijer/Rental-Analytics-Backend/internal/model"
)

// PropertyRepository provides data access methods for the property table.
// It resolves which properties a report covers and what they are worth.
type PropertyRepository struct {
	db *sql.DB
}

// NewPropertyRepository creates a new PropertyRepository with the provided database connection.
func NewPropertyRepository(db *sql.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// ResolveProperties returns the properties in scope of a report.
// When propertyID is set the scope is exactly that property, whoever owns it;
// ownership is checked by the caller. Otherwise it is every property owned by userID.
// Returns an empty slice if nothing matches.
func (r *PropertyRepository) ResolveProperties(ctx context.Context, userID, propertyID string) ([]model.PropertyValue, error) {
	query := `
		SELECT id, owner_id, acquisition_price
		FROM property
	`
	var arg string
	if propertyID != "" {
		query += " WHERE id = ?"
		arg = propertyID
	} else {
		query += " WHERE owner_id = ?"
		arg = userID
	}
	query += " ORDER BY id ASC"

	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query property table: %w", err)
	}
	defer rows.Close()

	properties := []model.PropertyValue{}

	for rows.Next() {
		var p model.PropertyValue
		var price sql.NullString

		if err := rows.Scan(&p.ID, &p.OwnerID, &price); err != nil {
			return nil, fmt.Errorf("failed to scan property table results: %w", err)
		}

		p.AcquisitionValue, err = parseNullMajor(price)
		if err != nil {
			return nil, err
		}

		properties = append(properties, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating property table: %w", err)
	}

	return properties, nil
}

// GetProperty retrieves a single property by ID.
// Returns apperrors.ErrPropertyNotFound when it does not exist.
func (r *PropertyRepository) GetProperty(ctx context.Context, propertyID string) (model.Property, error) {
	query := `
		SELECT id, owner_id, name, acquisition_price, created_at
		FROM property
		WHERE id = ?
	`
	var p model.Property
	var price sql.NullString
	var createdAtStr string

	err := r.db.QueryRowContext(ctx, query, propertyID).Scan(
		&p.ID,
		&p.OwnerID,
		&p.Name,
		&price,
		&createdAtStr,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Property{}, apperrors.ErrPropertyNotFound
	}
	if err != nil {
		return model.Property{}, fmt.Errorf("failed to query property: %w", err)
	}

	p.AcquisitionPrice, err = parseNullMajor(price)
	if err != nil {
		return model.Property{}, err
	}

	p.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.Property{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return p, nil
}

// ListOwners returns the ids of every user owning at least one property.
func (r *PropertyRepository) ListOwners(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT owner_id FROM property ORDER BY owner_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query property owners: %w", err)
	}
	defer rows.Close()

	owners := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan property owners: %w", err)
		}
		owners = append(owners, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating property owners: %w", err)
	}

	return owners, nil
}
