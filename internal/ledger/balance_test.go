package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func members(nicks ...string) []Member {
	ms := make([]Member, len(nicks))
	for i, n := range nicks {
		ms[i] = Member{Nickname: n}
	}
	return ms
}

func TestComputeBalances_SimpleTrip(t *testing.T) {
	snap := Snapshot{
		Members: members("Mario", "Luca", "Sara"),
		Expenses: []Expense{
			{Description: "Hotel booking", Amount: 150, PaidBy: "Mario", SplitBetween: []string{"Mario", "Luca", "Sara"}},
		},
	}

	balances, err := ComputeBalances(snap)
	require.NoError(t, err)

	assert.InDelta(t, 100, balances["Mario"], 1e-9)
	assert.InDelta(t, -50, balances["Luca"], 1e-9)
	assert.InDelta(t, -50, balances["Sara"], 1e-9)
}

func TestComputeBalances_PaymentReducesDebt(t *testing.T) {
	snap := Snapshot{
		Members: members("Mario", "Luca", "Sara"),
		Expenses: []Expense{
			{Description: "Hotel booking", Amount: 150, PaidBy: "Mario", SplitBetween: []string{"Mario", "Luca", "Sara"}},
		},
		Payments: []Payment{
			{From: "Luca", To: "Mario", Amount: 50},
		},
	}

	balances, err := ComputeBalances(snap)
	require.NoError(t, err)

	assert.InDelta(t, 50, balances["Mario"], 1e-9)
	assert.InDelta(t, 0, balances["Luca"], 1e-9)
	assert.InDelta(t, -50, balances["Sara"], 1e-9)
}

func TestComputeBalances_ZeroActivity(t *testing.T) {
	snap := Snapshot{Members: members("Mario", "Luca", "Sara")}

	balances, err := ComputeBalances(snap)
	require.NoError(t, err)

	require.Len(t, balances, 3)
	for nick, b := range balances {
		assert.Zerof(t, b, "member %s should start at zero", nick)
	}
}

func TestComputeBalances_InactiveMemberAppears(t *testing.T) {
	snap := Snapshot{
		Members: members("Mario", "Luca", "Sara"),
		Expenses: []Expense{
			{Description: "Dinner", Amount: 40, PaidBy: "Mario", SplitBetween: []string{"Mario", "Luca"}},
		},
	}

	balances, err := ComputeBalances(snap)
	require.NoError(t, err)

	b, ok := balances["Sara"]
	require.True(t, ok, "inactive member must appear in the result")
	assert.Zero(t, b)
}

func TestComputeBalances_UnevenSplitRounding(t *testing.T) {
	snap := Snapshot{
		Members: members("Mario", "Luca", "Sara"),
		Expenses: []Expense{
			{Description: "Groceries", Amount: 100, PaidBy: "Mario", SplitBetween: []string{"Mario", "Luca", "Sara"}},
		},
	}

	balances, err := ComputeBalances(snap)
	require.NoError(t, err)

	assert.InDelta(t, 66.67, balances["Mario"], 1e-9)
	assert.InDelta(t, -33.33, balances["Luca"], 1e-9)
	assert.InDelta(t, -33.33, balances["Sara"], 1e-9)

	// Per-member rounding may leave up to one cent per member unaccounted.
	var sum float64
	for _, b := range balances {
		sum += b
	}
	assert.LessOrEqual(t, abs(sum), 0.03)
}

func TestComputeBalances_Conservation(t *testing.T) {
	snap := Snapshot{
		Members: members("a", "b", "c", "d", "e"),
		Expenses: []Expense{
			{Amount: 99.99, PaidBy: "a", SplitBetween: []string{"a", "b", "c"}},
			{Amount: 0.05, PaidBy: "b", SplitBetween: []string{"c", "d", "e"}},
			{Amount: 73.21, PaidBy: "c", SplitBetween: []string{"a", "b", "c", "d", "e"}},
			{Amount: 12.34, PaidBy: "e", SplitBetween: []string{"b"}},
		},
		Payments: []Payment{
			{From: "b", To: "a", Amount: 20},
			{From: "d", To: "c", Amount: 14.64},
		},
	}

	balances, err := ComputeBalances(snap)
	require.NoError(t, err)

	var sum float64
	for _, b := range balances {
		sum += b
	}
	assert.LessOrEqual(t, abs(sum), Epsilon*float64(len(balances)))
}

func TestComputeBalances_Validation(t *testing.T) {
	base := members("Mario", "Luca")

	tests := []struct {
		name    string
		snap    Snapshot
		wantErr error
	}{
		{
			name: "empty split set",
			snap: Snapshot{
				Members:  base,
				Expenses: []Expense{{Amount: 10, PaidBy: "Mario"}},
			},
			wantErr: ErrEmptySplit,
		},
		{
			name: "zero expense amount",
			snap: Snapshot{
				Members:  base,
				Expenses: []Expense{{Amount: 0, PaidBy: "Mario", SplitBetween: []string{"Luca"}}},
			},
			wantErr: ErrNonPositiveAmount,
		},
		{
			name: "negative payment amount",
			snap: Snapshot{
				Members:  base,
				Payments: []Payment{{From: "Luca", To: "Mario", Amount: -5}},
			},
			wantErr: ErrNonPositiveAmount,
		},
		{
			name: "self payment",
			snap: Snapshot{
				Members:  base,
				Payments: []Payment{{From: "Mario", To: "Mario", Amount: 5}},
			},
			wantErr: ErrSelfPayment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeBalances(tt.snap)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestComputeBalances_UnknownMember(t *testing.T) {
	tests := []struct {
		name     string
		snap     Snapshot
		offender string
	}{
		{
			name: "unknown expense payer",
			snap: Snapshot{
				Members:  members("Mario", "Luca"),
				Expenses: []Expense{{Amount: 10, PaidBy: "Anna", SplitBetween: []string{"Mario"}}},
			},
			offender: "Anna",
		},
		{
			name: "unknown split member",
			snap: Snapshot{
				Members:  members("Mario", "Luca"),
				Expenses: []Expense{{Amount: 10, PaidBy: "Mario", SplitBetween: []string{"Mario", "Anna"}}},
			},
			offender: "Anna",
		},
		{
			name: "unknown payment payee",
			snap: Snapshot{
				Members:  members("Mario", "Luca"),
				Payments: []Payment{{From: "Mario", To: "Anna", Amount: 10}},
			},
			offender: "Anna",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeBalances(tt.snap)

			var unknownErr *UnknownMemberError
			require.ErrorAs(t, err, &unknownErr)
			assert.Equal(t, tt.offender, unknownErr.Nickname)
		})
	}
}

func TestComputeStats(t *testing.T) {
	stats := ComputeStats(map[string]float64{
		"Mario": 100,
		"Luca":  -50,
		"Sara":  -50,
		"Anna":  0,
	})

	assert.InDelta(t, 100, stats.TotalOwed, 1e-9)
	assert.InDelta(t, 100, stats.TotalToReceive, 1e-9)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
