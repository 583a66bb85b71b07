package profile

import "time"

// Profile links a wallet address to the nickname used as the member key in
// every group the wallet participates in.
type Profile struct {
	WalletAddress string    `json:"wallet_address"`
	Nickname      string    `json:"nickname"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
