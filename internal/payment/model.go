package payment

import "time"

// Payment is an immutable settlement record: From paid To the fiat amount.
// When the debt was settled on-chain the crypto fields record what was
// actually transferred; they are informational only, balances always use the
// fiat amount.
type Payment struct {
	ID           int64     `json:"id"`
	GroupID      string    `json:"group_id"`
	From         string    `json:"from"`
	To           string    `json:"to"`
	AmountFiat   float64   `json:"amount_fiat"`
	Currency     string    `json:"currency"`
	AmountCrypto *string   `json:"amount_crypto,omitempty"`
	CryptoSymbol *string   `json:"crypto_symbol,omitempty"`
	TxHash       *string   `json:"tx_hash,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
