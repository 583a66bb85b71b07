package expense

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbianchi/splitchain/internal/group"
	"github.com/lbianchi/splitchain/internal/ledger"
)

type fakeGroups struct {
	group   *group.Group
	members []*group.Member
}

func (f *fakeGroups) GetByID(ctx context.Context, id string) (*group.Group, error) {
	if f.group == nil || f.group.ID != id {
		return nil, group.ErrGroupNotFound
	}
	return f.group, nil
}

func (f *fakeGroups) GetByIDWithMembers(ctx context.Context, id string) (*group.Group, []*group.Member, error) {
	g, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return g, f.members, nil
}

func openGroup() *fakeGroups {
	return &fakeGroups{
		group: &group.Group{ID: "g1", Name: "Weekend Trip", Currency: "EUR"},
		members: []*group.Member{
			{Nickname: "Mario"},
			{Nickname: "Luca"},
			{Nickname: "Sara"},
		},
	}
}

func TestCreate_RejectsBeforePersisting(t *testing.T) {
	tests := []struct {
		name    string
		groups  *fakeGroups
		req     *CreateExpenseRequest
		wantErr error
	}{
		{
			name:    "missing description",
			groups:  openGroup(),
			req:     &CreateExpenseRequest{Amount: 10, PaidBy: "Mario"},
			wantErr: ErrEmptyDescription,
		},
		{
			name:    "zero amount",
			groups:  openGroup(),
			req:     &CreateExpenseRequest{Description: "Taxi", Amount: 0, PaidBy: "Mario"},
			wantErr: ErrNonPositiveAmount,
		},
		{
			name:    "negative amount",
			groups:  openGroup(),
			req:     &CreateExpenseRequest{Description: "Taxi", Amount: -3, PaidBy: "Mario"},
			wantErr: ErrNonPositiveAmount,
		},
		{
			name:    "group not found",
			groups:  &fakeGroups{},
			req:     &CreateExpenseRequest{Description: "Taxi", Amount: 10, PaidBy: "Mario"},
			wantErr: group.ErrGroupNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// repo is nil: validation must reject before any persistence.
			svc := NewService(nil, tt.groups)

			_, _, err := svc.Create(context.Background(), "g1", tt.req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreate_RejectsClosedGroup(t *testing.T) {
	groups := openGroup()
	groups.group.Closed = true
	svc := NewService(nil, groups)

	_, _, err := svc.Create(context.Background(), "g1", &CreateExpenseRequest{
		Description: "Taxi", Amount: 10, PaidBy: "Mario",
	})
	require.ErrorIs(t, err, ErrGroupClosed)
}

func TestCreate_RejectsUnknownMembers(t *testing.T) {
	svc := NewService(nil, openGroup())

	_, _, err := svc.Create(context.Background(), "g1", &CreateExpenseRequest{
		Description: "Taxi", Amount: 10, PaidBy: "Anna",
	})

	var unknownErr *ledger.UnknownMemberError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "Anna", unknownErr.Nickname)

	_, _, err = svc.Create(context.Background(), "g1", &CreateExpenseRequest{
		Description: "Taxi", Amount: 10, PaidBy: "Mario", SplitBetween: []string{"Mario", "Gino"},
	})

	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "Gino", unknownErr.Nickname)
}

func TestCreate_EmptySplitDefaultsToAllMembers(t *testing.T) {
	svc := NewService(nil, openGroup())

	req := &CreateExpenseRequest{Description: "Hotel booking", Amount: 150, PaidBy: "Mario"}
	// The nil repo panics on persistence, which proves validation passed and
	// the default split was applied first.
	require.Panics(t, func() {
		svc.Create(context.Background(), "g1", req)
	})
	assert.Equal(t, []string{"Mario", "Luca", "Sara"}, req.SplitBetween)
}
