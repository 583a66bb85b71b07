package payment

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/lbianchi/splitchain/internal/group"
	"github.com/lbianchi/splitchain/internal/ledger"
)

// Common errors
var (
	ErrGroupClosed       = errors.New("group is closed")
	ErrNonPositiveAmount = errors.New("amount must be positive")
	ErrSelfPayment       = errors.New("payer and payee must differ")
	ErrBadCryptoAmount   = errors.New("amount_crypto is not a valid positive decimal")
)

// GroupDirectory is the slice of the group service the payment boundary needs.
type GroupDirectory interface {
	GetByID(ctx context.Context, id string) (*group.Group, error)
	GetByIDWithMembers(ctx context.Context, id string) (*group.Group, []*group.Member, error)
}

// Service handles payment business logic
type Service struct {
	repo   *Repository
	groups GroupDirectory
}

// NewService creates a new payment service
func NewService(repo *Repository, groups GroupDirectory) *Service {
	return &Service{repo: repo, groups: groups}
}

// Create validates and records a payment. The currency is always the group's.
// Crypto token amounts arrive as decimal strings from the on-chain executor
// and are stored verbatim; float64 would mangle 18-decimal token amounts, so
// they are only ever parsed for validation.
func (s *Service) Create(ctx context.Context, groupID string, req *CreatePaymentRequest) (*Payment, error) {
	if req.AmountFiat <= 0 {
		return nil, ErrNonPositiveAmount
	}
	if req.From == req.To {
		return nil, ErrSelfPayment
	}

	if req.AmountCrypto != nil {
		amt, err := decimal.NewFromString(*req.AmountCrypto)
		if err != nil || !amt.IsPositive() {
			return nil, ErrBadCryptoAmount
		}
	}

	g, members, err := s.groups.GetByIDWithMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if g.Closed {
		return nil, ErrGroupClosed
	}

	known := make(map[string]bool, len(members))
	for _, m := range members {
		known[m.Nickname] = true
	}
	if !known[req.From] {
		return nil, &ledger.UnknownMemberError{Nickname: req.From}
	}
	if !known[req.To] {
		return nil, &ledger.UnknownMemberError{Nickname: req.To}
	}

	return s.repo.Create(ctx, groupID, g.Currency, req)
}

// ListByGroupID retrieves all payments for a group in creation order
func (s *Service) ListByGroupID(ctx context.Context, groupID string) ([]*Payment, error) {
	if _, err := s.groups.GetByID(ctx, groupID); err != nil {
		return nil, err
	}
	return s.repo.ListByGroupID(ctx, groupID)
}
