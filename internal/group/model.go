package group

import "time"

// Group scopes members, expenses and payments. All amounts in a group share
// one currency. A closed group no longer accepts expenses or payments; the
// NFT fields record the commemorative mint performed by the on-chain layer
// when the group closes.
type Group struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Currency    string     `json:"currency"`
	OwnerWallet string     `json:"owner_wallet"`
	Closed      bool       `json:"closed"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`
	NFTTokenID  *string    `json:"nft_token_id,omitempty"`
	NFTTxHash   *string    `json:"nft_tx_hash,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Member is a group membership. Nickname is the member key used by expenses,
// payments and the ledger; the wallet address is optional metadata until the
// member links a profile.
type Member struct {
	ID            int64     `json:"id"`
	GroupID       string    `json:"group_id"`
	Nickname      string    `json:"nickname"`
	WalletAddress *string   `json:"wallet_address,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
