package profile

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Repository handles profile data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new profile repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new profile into the database
func (r *Repository) Create(ctx context.Context, req *RegisterProfileRequest) (*Profile, error) {
	query := `
		INSERT INTO profiles (wallet_address, nickname)
		VALUES ($1, $2)
		RETURNING wallet_address, nickname, created_at, updated_at
	`

	p := &Profile{}
	err := r.db.QueryRowContext(ctx, query, strings.ToLower(req.WalletAddress), req.Nickname).Scan(
		&p.WalletAddress,
		&p.Nickname,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return p, nil
}

// GetByWallet retrieves a profile by its wallet address
func (r *Repository) GetByWallet(ctx context.Context, wallet string) (*Profile, error) {
	query := `
		SELECT wallet_address, nickname, created_at, updated_at
		FROM profiles
		WHERE wallet_address = $1
	`

	p := &Profile{}
	err := r.db.QueryRowContext(ctx, query, strings.ToLower(wallet)).Scan(
		&p.WalletAddress,
		&p.Nickname,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return p, nil
}

// GetByNickname retrieves a profile by its nickname
func (r *Repository) GetByNickname(ctx context.Context, nickname string) (*Profile, error) {
	query := `
		SELECT wallet_address, nickname, created_at, updated_at
		FROM profiles
		WHERE nickname = $1
	`

	p := &Profile{}
	err := r.db.QueryRowContext(ctx, query, nickname).Scan(
		&p.WalletAddress,
		&p.Nickname,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return p, nil
}

// UpdateNickname changes the nickname for a wallet
func (r *Repository) UpdateNickname(ctx context.Context, wallet, nickname string) (*Profile, error) {
	query := `
		UPDATE profiles
		SET nickname = $2, updated_at = now()
		WHERE wallet_address = $1
		RETURNING wallet_address, nickname, created_at, updated_at
	`

	p := &Profile{}
	err := r.db.QueryRowContext(ctx, query, strings.ToLower(wallet), nickname).Scan(
		&p.WalletAddress,
		&p.Nickname,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return p, nil
}
