// Package settlement is the read-side of the ledger: it assembles a snapshot
// from the stores, runs the pure balance and netting computations, and writes
// the results to the display cache. The cache is an optimization only; every
// read recomputes from the source records.
package settlement

import (
	"context"
	"log/slog"
	"sort"

	"github.com/lbianchi/splitchain/internal/expense"
	"github.com/lbianchi/splitchain/internal/group"
	"github.com/lbianchi/splitchain/internal/ledger"
	"github.com/lbianchi/splitchain/internal/payment"
)

// GroupSource supplies a group and its ordered member list.
type GroupSource interface {
	GetByID(ctx context.Context, id string) (*group.Group, error)
	GetMembers(ctx context.Context, groupID string) ([]*group.Member, error)
}

// ExpenseSource supplies a group's expenses in creation order.
type ExpenseSource interface {
	ListByGroupID(ctx context.Context, groupID string) ([]*expense.Expense, error)
}

// PaymentSource supplies a group's payments in creation order.
type PaymentSource interface {
	ListByGroupID(ctx context.Context, groupID string) ([]*payment.Payment, error)
}

// SnapshotCache persists computed balances for fast display reads. Writes are
// best-effort; a failed or stale cache never affects correctness.
type SnapshotCache interface {
	PutBalances(ctx context.Context, groupID, currency string, balances map[string]float64, stats ledger.Stats) error
}

// Service derives balances and repayment suggestions for a group
type Service struct {
	groups   GroupSource
	expenses ExpenseSource
	payments PaymentSource
	cache    SnapshotCache
}

// NewService creates a new settlement service. cache may be nil to disable
// snapshot caching.
func NewService(groups GroupSource, expenses ExpenseSource, payments PaymentSource, cache SnapshotCache) *Service {
	return &Service{groups: groups, expenses: expenses, payments: payments, cache: cache}
}

// snapshot loads the group's full history into a ledger snapshot
func (s *Service) snapshot(ctx context.Context, groupID string) (*group.Group, ledger.Snapshot, error) {
	g, err := s.groups.GetByID(ctx, groupID)
	if err != nil {
		return nil, ledger.Snapshot{}, err
	}
	if g == nil {
		return nil, ledger.Snapshot{}, group.ErrGroupNotFound
	}

	members, err := s.groups.GetMembers(ctx, groupID)
	if err != nil {
		return nil, ledger.Snapshot{}, err
	}

	expenses, err := s.expenses.ListByGroupID(ctx, groupID)
	if err != nil {
		return nil, ledger.Snapshot{}, err
	}

	payments, err := s.payments.ListByGroupID(ctx, groupID)
	if err != nil {
		return nil, ledger.Snapshot{}, err
	}

	snap := ledger.Snapshot{
		Members:  make([]ledger.Member, len(members)),
		Expenses: make([]ledger.Expense, len(expenses)),
		Payments: make([]ledger.Payment, len(payments)),
	}
	for i, m := range members {
		snap.Members[i] = ledger.Member{Nickname: m.Nickname}
		if m.WalletAddress != nil {
			snap.Members[i].Wallet = *m.WalletAddress
		}
	}
	for i, e := range expenses {
		snap.Expenses[i] = ledger.Expense{
			Description:  e.Description,
			Amount:       e.Amount,
			PaidBy:       e.PaidBy,
			SplitBetween: e.SplitBetween,
		}
	}
	for i, p := range payments {
		snap.Payments[i] = ledger.Payment{From: p.From, To: p.To, Amount: p.AmountFiat}
	}

	return g, snap, nil
}

// GroupBalances recomputes every member's balance from the group's full
// history and refreshes the display cache best-effort.
func (s *Service) GroupBalances(ctx context.Context, groupID string) (*BalancesResponse, error) {
	g, snap, err := s.snapshot(ctx, groupID)
	if err != nil {
		return nil, err
	}

	balances, err := ledger.ComputeBalances(snap)
	if err != nil {
		return nil, err
	}
	stats := ledger.ComputeStats(balances)

	if s.cache != nil {
		if err := s.cache.PutBalances(ctx, groupID, g.Currency, balances, stats); err != nil {
			slog.Warn("balance cache write failed", "group_id", groupID, "error", err)
		}
	}

	resp := &BalancesResponse{
		GroupID:        groupID,
		Currency:       g.Currency,
		Balances:       make([]MemberBalance, 0, len(balances)),
		TotalOwed:      stats.TotalOwed,
		TotalToReceive: stats.TotalToReceive,
	}
	for nick, b := range balances {
		resp.Balances = append(resp.Balances, MemberBalance{Nickname: nick, Balance: b})
	}
	sort.Slice(resp.Balances, func(i, j int) bool {
		return resp.Balances[i].Nickname < resp.Balances[j].Nickname
	})

	return resp, nil
}

// Suggestions plans the transfers that would settle the group
func (s *Service) Suggestions(ctx context.Context, groupID string) (*SuggestionsResponse, error) {
	g, snap, err := s.snapshot(ctx, groupID)
	if err != nil {
		return nil, err
	}

	plan, err := ledger.Settle(snap)
	if err != nil {
		return nil, err
	}

	resp := &SuggestionsResponse{
		GroupID:     groupID,
		Currency:    g.Currency,
		Suggestions: make([]SuggestionResponse, len(plan)),
	}
	for i, sg := range plan {
		resp.Suggestions[i] = SuggestionResponse{
			From:     sg.From,
			To:       sg.To,
			Amount:   sg.Amount,
			Currency: g.Currency,
		}
	}

	return resp, nil
}

// AllSettled reports whether every member's balance is zero within the
// rounding epsilon. Used to gate group closure.
func (s *Service) AllSettled(ctx context.Context, groupID string) (bool, error) {
	_, snap, err := s.snapshot(ctx, groupID)
	if err != nil {
		return false, err
	}

	balances, err := ledger.ComputeBalances(snap)
	if err != nil {
		return false, err
	}
	for _, b := range balances {
		if b >= ledger.Epsilon || b <= -ledger.Epsilon {
			return false, nil
		}
	}
	return true, nil
}
