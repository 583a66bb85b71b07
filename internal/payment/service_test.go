package payment

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
		},
	}
}

func strPtr(s string) *string { return &s }

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     *CreatePaymentRequest
		wantErr error
	}{
		{
			name:    "zero amount",
			req:     &CreatePaymentRequest{From: "Luca", To: "Mario", AmountFiat: 0},
			wantErr: ErrNonPositiveAmount,
		},
		{
			name:    "negative amount",
			req:     &CreatePaymentRequest{From: "Luca", To: "Mario", AmountFiat: -10},
			wantErr: ErrNonPositiveAmount,
		},
		{
			name:    "self payment",
			req:     &CreatePaymentRequest{From: "Mario", To: "Mario", AmountFiat: 10},
			wantErr: ErrSelfPayment,
		},
		{
			name:    "crypto amount not a number",
			req:     &CreatePaymentRequest{From: "Luca", To: "Mario", AmountFiat: 10, AmountCrypto: strPtr("abc")},
			wantErr: ErrBadCryptoAmount,
		},
		{
			name:    "crypto amount negative",
			req:     &CreatePaymentRequest{From: "Luca", To: "Mario", AmountFiat: 10, AmountCrypto: strPtr("-0.5")},
			wantErr: ErrBadCryptoAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// repo is nil: validation must reject before any persistence.
			svc := NewService(nil, openGroup())

			_, err := svc.Create(context.Background(), "g1", tt.req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreate_AcceptsValidCryptoAmount(t *testing.T) {
	svc := NewService(nil, openGroup())

	req := &CreatePaymentRequest{
		From: "Luca", To: "Mario", AmountFiat: 50,
		AmountCrypto: strPtr("0.025000000000000000"),
		CryptoSymbol: strPtr("ETH"),
	}
	// The nil repo panics on persistence, which proves validation passed.
	require.Panics(t, func() {
		svc.Create(context.Background(), "g1", req)
	})
}

func TestCreate_RejectsClosedGroup(t *testing.T) {
	groups := openGroup()
	groups.group.Closed = true
	svc := NewService(nil, groups)

	_, err := svc.Create(context.Background(), "g1", &CreatePaymentRequest{
		From: "Luca", To: "Mario", AmountFiat: 10,
	})
	require.ErrorIs(t, err, ErrGroupClosed)
}

func TestCreate_RejectsUnknownMembers(t *testing.T) {
	svc := NewService(nil, openGroup())

	_, err := svc.Create(context.Background(), "g1", &CreatePaymentRequest{
		From: "Anna", To: "Mario", AmountFiat: 10,
	})

	var unknownErr *ledger.UnknownMemberError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "Anna", unknownErr.Nickname)
}
