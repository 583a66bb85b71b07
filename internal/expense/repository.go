package expense

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

// Repository handles expense data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new expense repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new expense into the database
func (r *Repository) Create(ctx context.Context, groupID string, req *CreateExpenseRequest) (*Expense, error) {
	query := `
		INSERT INTO expenses (group_id, description, amount, paid_by_nickname, split_between_nicknames)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, group_id, description, amount, paid_by_nickname, split_between_nicknames, date
	`

	e := &Expense{}
	err := r.db.QueryRowContext(ctx, query, groupID, req.Description, req.Amount, req.PaidBy, pq.Array(req.SplitBetween)).Scan(
		&e.ID,
		&e.GroupID,
		&e.Description,
		&e.Amount,
		&e.PaidBy,
		pq.Array(&e.SplitBetween),
		&e.Date,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return e, nil
}

// ListByGroupID retrieves all expenses for a group ordered by creation time
func (r *Repository) ListByGroupID(ctx context.Context, groupID string) ([]*Expense, error) {
	query := `
		SELECT id, group_id, description, amount, paid_by_nickname, split_between_nicknames, date
		FROM expenses
		WHERE group_id = $1
		ORDER BY date, id
	`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*Expense
	for rows.Next() {
		e := &Expense{}
		if err := rows.Scan(
			&e.ID,
			&e.GroupID,
			&e.Description,
			&e.Amount,
			&e.PaidBy,
			pq.Array(&e.SplitBetween),
			&e.Date,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}

	return expenses, rows.Err()
}
