package payment

// CreatePaymentRequest represents the request to record a payment. The crypto
// fields are optional and come from the on-chain settlement executor.
type CreatePaymentRequest struct {
	From         string  `json:"from" validate:"required"`
	To           string  `json:"to" validate:"required"`
	AmountFiat   float64 `json:"amount_fiat" validate:"required,gt=0"`
	AmountCrypto *string `json:"amount_crypto,omitempty"`
	CryptoSymbol *string `json:"crypto_symbol,omitempty"`
	TxHash       *string `json:"tx_hash,omitempty"`
}

// PaymentResponse represents the response for a payment
type PaymentResponse struct {
	ID           int64   `json:"id"`
	GroupID      string  `json:"group_id"`
	From         string  `json:"from"`
	To           string  `json:"to"`
	AmountFiat   float64 `json:"amount_fiat"`
	Currency     string  `json:"currency"`
	AmountCrypto *string `json:"amount_crypto,omitempty"`
	CryptoSymbol *string `json:"crypto_symbol,omitempty"`
	TxHash       *string `json:"tx_hash,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

// ToResponse converts a Payment model to a PaymentResponse DTO
func (p *Payment) ToResponse() *PaymentResponse {
	return &PaymentResponse{
		ID:           p.ID,
		GroupID:      p.GroupID,
		From:         p.From,
		To:           p.To,
		AmountFiat:   p.AmountFiat,
		Currency:     p.Currency,
		AmountCrypto: p.AmountCrypto,
		CryptoSymbol: p.CryptoSymbol,
		TxHash:       p.TxHash,
		CreatedAt:    p.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
