package settlement

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lbianchi/splitchain/internal/ledger"
)

// Repository persists computed balance snapshots to the display cache tables
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new settlement repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// PutBalances replaces the cached balances and stats for a group. The write
// is transactional so readers never see a half-refreshed snapshot.
func (r *Repository) PutBalances(ctx context.Context, groupID, currency string, balances map[string]float64, stats ledger.Stats) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin cache transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM group_balances WHERE group_id = $1`, groupID); err != nil {
		return fmt.Errorf("failed to clear cached balances: %w", err)
	}

	insert := `
		INSERT INTO group_balances (group_id, nickname, balance, currency, computed_at)
		VALUES ($1, $2, $3, $4, now())
	`
	for nick, balance := range balances {
		if _, err := tx.ExecContext(ctx, insert, groupID, nick, balance, currency); err != nil {
			return fmt.Errorf("failed to cache balance: %w", err)
		}
	}

	statsQuery := `
		INSERT INTO group_stats (group_id, total_owed, total_to_receive, currency, computed_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (group_id) DO UPDATE
		SET total_owed = EXCLUDED.total_owed,
		    total_to_receive = EXCLUDED.total_to_receive,
		    currency = EXCLUDED.currency,
		    computed_at = EXCLUDED.computed_at
	`
	if _, err := tx.ExecContext(ctx, statsQuery, groupID, stats.TotalOwed, stats.TotalToReceive, currency); err != nil {
		return fmt.Errorf("failed to cache stats: %w", err)
	}

	return tx.Commit()
}
