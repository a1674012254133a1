package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ndewijer/Rental-Analytics-Backend/internal/apperrors"
	"github.com/ndewijer/Rental-Analytics-Backend/internal/model"
)

// SnapshotRepository provides data access methods for the report_snapshot table,
// which stores pre-calculated portfolio reports.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new repository instance.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// GetSnapshot retrieves the stored report of an owner for a year.
// Returns apperrors.ErrSnapshotNotFound when none has been calculated yet.
func (r *SnapshotRepository) GetSnapshot(ctx context.Context, ownerID string, year int) (model.ReportSnapshot, error) {
	query := `
		SELECT id, owner_id, year, payload, calculated_at
		FROM report_snapshot
		WHERE owner_id = ? AND year = ?
	`
	var s model.ReportSnapshot
	var payload, calculatedAtStr string

	err := r.db.QueryRowContext(ctx, query, ownerID, year).Scan(
		&s.ID,
		&s.OwnerID,
		&s.Year,
		&payload,
		&calculatedAtStr,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ReportSnapshot{}, apperrors.ErrSnapshotNotFound
	}
	if err != nil {
		return model.ReportSnapshot{}, fmt.Errorf("failed to query report_snapshot: %w", err)
	}

	if err := json.Unmarshal([]byte(payload), &s.Report); err != nil {
		return model.ReportSnapshot{}, fmt.Errorf("failed to decode snapshot payload: %w", err)
	}

	s.CalculatedAt, err = ParseTime(calculatedAtStr)
	if err != nil {
		return model.ReportSnapshot{}, fmt.Errorf("failed to parse calculated_at: %w", err)
	}

	return s, nil
}

// UpsertSnapshot stores a snapshot, replacing any earlier one for the same owner and year.
func (r *SnapshotRepository) UpsertSnapshot(ctx context.Context, s model.ReportSnapshot) error {
	payload, err := json.Marshal(s.Report)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot payload: %w", err)
	}

	query := `
		INSERT INTO report_snapshot (id, owner_id, year, payload, calculated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(owner_id, year) DO UPDATE SET
			payload = excluded.payload,
			calculated_at = excluded.calculated_at
	`

	_, err = r.db.ExecContext(ctx, query,
		s.ID,
		s.OwnerID,
		s.Year,
		string(payload),
		s.CalculatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert report_snapshot: %w", err)
	}

	return nil
}
