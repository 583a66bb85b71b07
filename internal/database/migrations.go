package database

import "database/sql"

// schema contains the statements run on startup to ensure all tables exist.
// Profiles and groups must be created before the tables referencing them.
const schema = `
CREATE TABLE IF NOT EXISTS profiles (
    wallet_address TEXT PRIMARY KEY,
    nickname TEXT NOT NULL UNIQUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS groups (
    id UUID PRIMARY KEY,
    name TEXT NOT NULL,
    currency CHAR(3) NOT NULL,
    owner_wallet TEXT NOT NULL,
    closed BOOLEAN NOT NULL DEFAULT FALSE,
    closed_at TIMESTAMPTZ,
    nft_token_id TEXT,
    nft_tx_hash TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS group_members (
    id BIGSERIAL PRIMARY KEY,
    group_id UUID NOT NULL REFERENCES groups(id) ON DELETE CASCADE,
    nickname TEXT NOT NULL,
    wallet_address TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    UNIQUE (group_id, nickname)
);

CREATE TABLE IF NOT EXISTS expenses (
    id BIGSERIAL PRIMARY KEY,
    group_id UUID NOT NULL REFERENCES groups(id) ON DELETE CASCADE,
    description TEXT NOT NULL,
    amount NUMERIC(14,2) NOT NULL,
    paid_by_nickname TEXT NOT NULL,
    split_between_nicknames TEXT[] NOT NULL,
    date TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS payments (
    id BIGSERIAL PRIMARY KEY,
    group_id UUID NOT NULL REFERENCES groups(id) ON DELETE CASCADE,
    from_nickname TEXT NOT NULL,
    to_nickname TEXT NOT NULL,
    amount_fiat NUMERIC(14,2) NOT NULL,
    currency CHAR(3) NOT NULL,
    amount_crypto TEXT,
    crypto_symbol TEXT,
    tx_hash TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS group_balances (
    group_id UUID NOT NULL REFERENCES groups(id) ON DELETE CASCADE,
    nickname TEXT NOT NULL,
    balance NUMERIC(14,2) NOT NULL,
    currency CHAR(3) NOT NULL,
    computed_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    PRIMARY KEY (group_id, nickname)
);

CREATE TABLE IF NOT EXISTS group_stats (
    group_id UUID PRIMARY KEY REFERENCES groups(id) ON DELETE CASCADE,
    total_owed NUMERIC(14,2) NOT NULL,
    total_to_receive NUMERIC(14,2) NOT NULL,
    currency CHAR(3) NOT NULL,
    computed_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_group_members_group_id ON group_members(group_id);
CREATE INDEX IF NOT EXISTS idx_group_members_nickname ON group_members(nickname);
CREATE INDEX IF NOT EXISTS idx_expenses_group_id ON expenses(group_id);
CREATE INDEX IF NOT EXISTS idx_payments_group_id ON payments(group_id);
`

func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
