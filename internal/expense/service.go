package expense

import (
	"context"
	"errors"
	"strings"

	"github.com/lbianchi/splitchain/internal/group"
	"github.com/lbianchi/splitchain/internal/ledger"
)

// Common errors
var (
	ErrGroupClosed       = errors.New("group is closed")
	ErrNonPositiveAmount = errors.New("amount must be positive")
	ErrEmptyDescription  = errors.New("description is required")
)

// GroupDirectory is the slice of the group service the expense boundary
// needs: existence, closure state and the member list used for validation.
type GroupDirectory interface {
	GetByID(ctx context.Context, id string) (*group.Group, error)
	GetByIDWithMembers(ctx context.Context, id string) (*group.Group, []*group.Member, error)
}

// Service handles expense business logic
type Service struct {
	repo   *Repository
	groups GroupDirectory
}

// NewService creates a new expense service
func NewService(repo *Repository, groups GroupDirectory) *Service {
	return &Service{repo: repo, groups: groups}
}

// Create validates and records an expense. Expenses are append-only: there is
// no update or delete, balances are always recomputed from the full history.
// An empty split set defaults to all current members before validation.
func (s *Service) Create(ctx context.Context, groupID string, req *CreateExpenseRequest) (*Expense, string, error) {
	if strings.TrimSpace(req.Description) == "" {
		return nil, "", ErrEmptyDescription
	}
	if req.Amount <= 0 {
		return nil, "", ErrNonPositiveAmount
	}

	g, members, err := s.groups.GetByIDWithMembers(ctx, groupID)
	if err != nil {
		return nil, "", err
	}
	if g.Closed {
		return nil, "", ErrGroupClosed
	}

	known := make(map[string]bool, len(members))
	for _, m := range members {
		known[m.Nickname] = true
	}

	if len(req.SplitBetween) == 0 {
		req.SplitBetween = make([]string, len(members))
		for i, m := range members {
			req.SplitBetween[i] = m.Nickname
		}
	}

	if !known[req.PaidBy] {
		return nil, "", &ledger.UnknownMemberError{Nickname: req.PaidBy}
	}
	for _, nick := range req.SplitBetween {
		if !known[nick] {
			return nil, "", &ledger.UnknownMemberError{Nickname: nick}
		}
	}

	e, err := s.repo.Create(ctx, groupID, req)
	if err != nil {
		return nil, "", err
	}
	return e, g.Currency, nil
}

// ListByGroupID retrieves all expenses for a group in creation order
func (s *Service) ListByGroupID(ctx context.Context, groupID string) ([]*Expense, string, error) {
	g, err := s.groups.GetByID(ctx, groupID)
	if err != nil {
		return nil, "", err
	}

	expenses, err := s.repo.ListByGroupID(ctx, groupID)
	if err != nil {
		return nil, "", err
	}
	return expenses, g.Currency, nil
}
