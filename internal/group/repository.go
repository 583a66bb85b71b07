package group

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Repository handles group data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new group repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new group into the database
func (r *Repository) Create(ctx context.Context, name, currency, ownerWallet string) (*Group, error) {
	query := `
		INSERT INTO groups (id, name, currency, owner_wallet)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, currency, owner_wallet, closed, closed_at, nft_token_id, nft_tx_hash, created_at
	`

	g := &Group{}
	err := r.db.QueryRowContext(ctx, query, uuid.NewString(), name, currency, ownerWallet).Scan(
		&g.ID,
		&g.Name,
		&g.Currency,
		&g.OwnerWallet,
		&g.Closed,
		&g.ClosedAt,
		&g.NFTTokenID,
		&g.NFTTxHash,
		&g.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	return g, nil
}

// GetByID retrieves a group by its ID
func (r *Repository) GetByID(ctx context.Context, id string) (*Group, error) {
	query := `
		SELECT id, name, currency, owner_wallet, closed, closed_at, nft_token_id, nft_tx_hash, created_at
		FROM groups
		WHERE id = $1
	`

	g := &Group{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&g.ID,
		&g.Name,
		&g.Currency,
		&g.OwnerWallet,
		&g.Closed,
		&g.ClosedAt,
		&g.NFTTokenID,
		&g.NFTTxHash,
		&g.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return g, nil
}

// ListByNickname retrieves all groups a nickname is a member of
func (r *Repository) ListByNickname(ctx context.Context, nickname string) ([]*Group, error) {
	query := `
		SELECT g.id, g.name, g.currency, g.owner_wallet, g.closed, g.closed_at, g.nft_token_id, g.nft_tx_hash, g.created_at
		FROM groups g
		JOIN group_members gm ON g.id = gm.group_id
		WHERE gm.nickname = $1
		ORDER BY g.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, nickname)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []*Group
	for rows.Next() {
		g := &Group{}
		if err := rows.Scan(
			&g.ID,
			&g.Name,
			&g.Currency,
			&g.OwnerWallet,
			&g.Closed,
			&g.ClosedAt,
			&g.NFTTokenID,
			&g.NFTTxHash,
			&g.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, g)
	}

	return groups, rows.Err()
}

// Close marks a group closed and records the optional mint metadata
func (r *Repository) Close(ctx context.Context, id string, nftTokenID, nftTxHash *string) (*Group, error) {
	query := `
		UPDATE groups
		SET closed = TRUE, closed_at = now(), nft_token_id = $2, nft_tx_hash = $3
		WHERE id = $1
		RETURNING id, name, currency, owner_wallet, closed, closed_at, nft_token_id, nft_tx_hash, created_at
	`

	g := &Group{}
	err := r.db.QueryRowContext(ctx, query, id, nftTokenID, nftTxHash).Scan(
		&g.ID,
		&g.Name,
		&g.Currency,
		&g.OwnerWallet,
		&g.Closed,
		&g.ClosedAt,
		&g.NFTTokenID,
		&g.NFTTxHash,
		&g.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to close group: %w", err)
	}

	return g, nil
}

// AddMember adds a nickname to a group
func (r *Repository) AddMember(ctx context.Context, groupID, nickname string, wallet *string) (*Member, error) {
	query := `
		INSERT INTO group_members (group_id, nickname, wallet_address)
		VALUES ($1, $2, $3)
		RETURNING id, group_id, nickname, wallet_address, created_at
	`

	m := &Member{}
	err := r.db.QueryRowContext(ctx, query, groupID, nickname, wallet).Scan(
		&m.ID,
		&m.GroupID,
		&m.Nickname,
		&m.WalletAddress,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	return m, nil
}

// GetMembers retrieves all members of a group ordered by join time
func (r *Repository) GetMembers(ctx context.Context, groupID string) ([]*Member, error) {
	query := `
		SELECT id, group_id, nickname, wallet_address, created_at
		FROM group_members
		WHERE group_id = $1
		ORDER BY created_at, id
	`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	defer rows.Close()

	var members []*Member
	for rows.Next() {
		m := &Member{}
		if err := rows.Scan(
			&m.ID,
			&m.GroupID,
			&m.Nickname,
			&m.WalletAddress,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}

	return members, rows.Err()
}

// GetMember retrieves a single member of a group by nickname
func (r *Repository) GetMember(ctx context.Context, groupID, nickname string) (*Member, error) {
	query := `
		SELECT id, group_id, nickname, wallet_address, created_at
		FROM group_members
		WHERE group_id = $1 AND nickname = $2
	`

	m := &Member{}
	err := r.db.QueryRowContext(ctx, query, groupID, nickname).Scan(
		&m.ID,
		&m.GroupID,
		&m.Nickname,
		&m.WalletAddress,
		&m.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return m, nil
}
