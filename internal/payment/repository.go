package payment

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles payment data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new payment repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new payment into the database
func (r *Repository) Create(ctx context.Context, groupID, currency string, req *CreatePaymentRequest) (*Payment, error) {
	query := `
		INSERT INTO payments (group_id, from_nickname, to_nickname, amount_fiat, currency, amount_crypto, crypto_symbol, tx_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, group_id, from_nickname, to_nickname, amount_fiat, currency, amount_crypto, crypto_symbol, tx_hash, created_at
	`

	p := &Payment{}
	err := r.db.QueryRowContext(ctx, query,
		groupID, req.From, req.To, req.AmountFiat, currency,
		req.AmountCrypto, req.CryptoSymbol, req.TxHash,
	).Scan(
		&p.ID,
		&p.GroupID,
		&p.From,
		&p.To,
		&p.AmountFiat,
		&p.Currency,
		&p.AmountCrypto,
		&p.CryptoSymbol,
		&p.TxHash,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	return p, nil
}

// ListByGroupID retrieves all payments for a group ordered by creation time
func (r *Repository) ListByGroupID(ctx context.Context, groupID string) ([]*Payment, error) {
	query := `
		SELECT id, group_id, from_nickname, to_nickname, amount_fiat, currency, amount_crypto, crypto_symbol, tx_hash, created_at
		FROM payments
		WHERE group_id = $1
		ORDER BY created_at, id
	`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []*Payment
	for rows.Next() {
		p := &Payment{}
		if err := rows.Scan(
			&p.ID,
			&p.GroupID,
			&p.From,
			&p.To,
			&p.AmountFiat,
			&p.Currency,
			&p.AmountCrypto,
			&p.CryptoSymbol,
			&p.TxHash,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}

	return payments, rows.Err()
}
