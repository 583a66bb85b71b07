package middleware

import (
	"context"
	"net/http"
	"strings"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// WalletKey is the context key for the caller's wallet address
	WalletKey ContextKey = "wallet_address"
)

// WalletIdentity reads the caller's wallet address from the X-Wallet-Address
// header and stores it on the request context. Signature verification against
// the connected wallet happens upstream; this service only needs to know who
// the caller claims to be.
func WalletIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wallet := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Wallet-Address")))
		if wallet != "" {
			r = r.WithContext(context.WithValue(r.Context(), WalletKey, wallet))
		}
		next.ServeHTTP(w, r)
	})
}

// GetWallet extracts the caller's wallet address from the request context
func GetWallet(ctx context.Context) (string, bool) {
	wallet, ok := ctx.Value(WalletKey).(string)
	return wallet, ok
}
