package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ndewijer/Rental-Analytics-Backend/internal/model"
)

// ExpenseRepository provides data access methods for the expense table.
type ExpenseRepository struct {
	db *sql.DB
}

// NewExpenseRepository creates a new ExpenseRepository with the provided database connection.
func NewExpenseRepository(db *sql.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// FetchExpenses retrieves the expenses of the given properties dated between
// startDate and endDate, both inclusive, sorted by date.
//
// Returns an empty slice if propertyIDs is empty.
func (r *ExpenseRepository) FetchExpenses(ctx context.Context, propertyIDs []string, startDate, endDate time.Time) ([]model.Expense, error) {
	if len(propertyIDs) == 0 {
		return []model.Expense{}, nil
	}

	placeholders, args := inClause(propertyIDs)

	//#nosec G202 -- Safe: placeholders are generated programmatically, not from user input
	query := `
		SELECT id, property_id, category, label,
		       amount_total_cents, amount_deductible_cents, amount_recoverable_cents,
		       is_recoverable, date_occurred
		FROM expense
		WHERE property_id IN (` + placeholders + `)
		AND date_occurred >= ?
		AND date_occurred < ?
		ORDER BY date_occurred ASC, id ASC
	`
	// The upper bound is the day after endDate so timestamped rows on endDate still match.
	args = append(args, startDate.Format("2006-01-02"), endDate.AddDate(0, 0, 1).Format("2006-01-02"))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expense table: %w", err)
	}
	defer rows.Close()

	expenses := []model.Expense{}

	for rows.Next() {
		var e model.Expense
		var dateStr string

		err := rows.Scan(
			&e.ID,
			&e.PropertyID,
			&e.Category,
			&e.Label,
			&e.AmountTotalCents,
			&e.AmountDeductibleCents,
			&e.AmountRecoverableCents,
			&e.IsRecoverable,
			&dateStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense table results: %w", err)
		}

		e.DateOccurred, err = ParseTime(dateStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse date_occurred: %w", err)
		}

		expenses = append(expenses, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense table: %w", err)
	}

	return expenses, nil
}
