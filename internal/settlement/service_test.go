package settlement

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbianchi/splitchain/internal/expense"
	"github.com/lbianchi/splitchain/internal/group"
	"github.com/lbianchi/splitchain/internal/ledger"
	"github.com/lbianchi/splitchain/internal/payment"
)

type fakeStores struct {
	group    *group.Group
	members  []*group.Member
	expenses []*expense.Expense
	payments []*payment.Payment
}

func (f *fakeStores) GetByID(ctx context.Context, id string) (*group.Group, error) {
	if f.group == nil || f.group.ID != id {
		return nil, nil
	}
	return f.group, nil
}

func (f *fakeStores) GetMembers(ctx context.Context, groupID string) ([]*group.Member, error) {
	return f.members, nil
}

func (f *fakeStores) ListByGroupID(ctx context.Context, groupID string) ([]*expense.Expense, error) {
	return f.expenses, nil
}

type fakePayments struct{ stores *fakeStores }

func (f *fakePayments) ListByGroupID(ctx context.Context, groupID string) ([]*payment.Payment, error) {
	return f.stores.payments, nil
}

type recordingCache struct {
	puts int
	fail bool
}

func (c *recordingCache) PutBalances(ctx context.Context, groupID, currency string, balances map[string]float64, stats ledger.Stats) error {
	c.puts++
	if c.fail {
		return errors.New("cache unavailable")
	}
	return nil
}

func weekendTrip() *fakeStores {
	return &fakeStores{
		group: &group.Group{ID: "g1", Name: "Weekend Trip", Currency: "EUR"},
		members: []*group.Member{
			{Nickname: "Mario"},
			{Nickname: "Luca"},
			{Nickname: "Sara"},
		},
		expenses: []*expense.Expense{
			{Description: "Hotel booking", Amount: 150, PaidBy: "Mario", SplitBetween: []string{"Mario", "Luca", "Sara"}},
		},
	}
}

func newService(stores *fakeStores, cache SnapshotCache) *Service {
	return NewService(stores, stores, &fakePayments{stores: stores}, cache)
}

func TestGroupBalances(t *testing.T) {
	stores := weekendTrip()
	cache := &recordingCache{}
	svc := newService(stores, cache)

	resp, err := svc.GroupBalances(context.Background(), "g1")
	require.NoError(t, err)

	assert.Equal(t, "EUR", resp.Currency)
	require.Len(t, resp.Balances, 3)
	// Sorted by nickname.
	assert.Equal(t, MemberBalance{Nickname: "Luca", Balance: -50}, resp.Balances[0])
	assert.Equal(t, MemberBalance{Nickname: "Mario", Balance: 100}, resp.Balances[1])
	assert.Equal(t, MemberBalance{Nickname: "Sara", Balance: -50}, resp.Balances[2])
	assert.InDelta(t, 100, resp.TotalOwed, 1e-9)
	assert.InDelta(t, 100, resp.TotalToReceive, 1e-9)

	assert.Equal(t, 1, cache.puts, "balances read should refresh the cache")
}

func TestGroupBalances_CacheFailureIsNotFatal(t *testing.T) {
	svc := newService(weekendTrip(), &recordingCache{fail: true})

	resp, err := svc.GroupBalances(context.Background(), "g1")
	require.NoError(t, err)
	require.Len(t, resp.Balances, 3)
}

func TestGroupBalances_NoCache(t *testing.T) {
	svc := newService(weekendTrip(), nil)

	_, err := svc.GroupBalances(context.Background(), "g1")
	require.NoError(t, err)
}

func TestGroupBalances_GroupNotFound(t *testing.T) {
	svc := newService(weekendTrip(), nil)

	_, err := svc.GroupBalances(context.Background(), "missing")
	require.ErrorIs(t, err, group.ErrGroupNotFound)
}

func TestSuggestions(t *testing.T) {
	svc := newService(weekendTrip(), nil)

	resp, err := svc.Suggestions(context.Background(), "g1")
	require.NoError(t, err)

	require.Len(t, resp.Suggestions, 2)
	assert.Equal(t, SuggestionResponse{From: "Luca", To: "Mario", Amount: 50, Currency: "EUR"}, resp.Suggestions[0])
	assert.Equal(t, SuggestionResponse{From: "Sara", To: "Mario", Amount: 50, Currency: "EUR"}, resp.Suggestions[1])
}

func TestSuggestions_PaymentReducesDebt(t *testing.T) {
	stores := weekendTrip()
	stores.payments = []*payment.Payment{
		{From: "Luca", To: "Mario", AmountFiat: 50, Currency: "EUR"},
	}
	svc := newService(stores, nil)

	resp, err := svc.Suggestions(context.Background(), "g1")
	require.NoError(t, err)

	require.Len(t, resp.Suggestions, 1)
	assert.Equal(t, SuggestionResponse{From: "Sara", To: "Mario", Amount: 50, Currency: "EUR"}, resp.Suggestions[0])
}

func TestAllSettled(t *testing.T) {
	stores := weekendTrip()
	svc := newService(stores, nil)

	settled, err := svc.AllSettled(context.Background(), "g1")
	require.NoError(t, err)
	assert.False(t, settled)

	stores.payments = []*payment.Payment{
		{From: "Luca", To: "Mario", AmountFiat: 50, Currency: "EUR"},
		{From: "Sara", To: "Mario", AmountFiat: 50, Currency: "EUR"},
	}

	settled, err = svc.AllSettled(context.Background(), "g1")
	require.NoError(t, err)
	assert.True(t, settled)
}

func TestGroupBalances_CorruptHistorySurfaced(t *testing.T) {
	stores := weekendTrip()
	stores.expenses = append(stores.expenses, &expense.Expense{
		Description: "Taxi", Amount: 30, PaidBy: "Anna", SplitBetween: []string{"Mario"},
	})
	svc := newService(stores, nil)

	_, err := svc.GroupBalances(context.Background(), "g1")

	var unknownErr *ledger.UnknownMemberError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "Anna", unknownErr.Nickname)
}
