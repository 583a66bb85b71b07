package ledger

import (
	"errors"
	"fmt"
)

// Epsilon is the sub-cent threshold below which a residual amount is treated
// as zero. It matches the minor unit of the supported currencies.
const Epsilon = 0.01

// Member is a group member as seen by the ledger. Nickname is the member key,
// unique within a group. Wallet is opaque metadata carried along for callers.
type Member struct {
	Nickname string `json:"nickname"`
	Wallet   string `json:"wallet,omitempty"`
}

// Expense is an immutable shared cost. The full amount was paid by PaidBy and
// is divided equally among SplitBetween (which may include the payer).
type Expense struct {
	Description  string   `json:"description"`
	Amount       float64  `json:"amount"`
	PaidBy       string   `json:"paid_by"`
	SplitBetween []string `json:"split_between"`
}

// Payment is an immutable settlement record: From paid To the given fiat
// amount. Any on-chain metadata stays outside the ledger.
type Payment struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// Snapshot is the full input to a balance computation: the group's members
// and its complete expense and payment history at a point in time.
type Snapshot struct {
	Members  []Member
	Expenses []Expense
	Payments []Payment
}

// Settlement is a suggested point-to-point transfer that reduces mutual debt.
type Settlement struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// Stats aggregates a balance set for display.
type Stats struct {
	TotalOwed      float64 `json:"total_owed"`       // sum of all debts
	TotalToReceive float64 `json:"total_to_receive"` // sum of all credits
}

// Validation errors
var (
	ErrEmptySplit        = errors.New("expense split set must not be empty")
	ErrNonPositiveAmount = errors.New("amount must be positive")
	ErrSelfPayment       = errors.New("payment payer and payee must differ")
)

// ErrUnbalanced signals a numeric invariant violation: total debt and total
// credit disagree beyond the rounding tolerance. It indicates drift in the
// upstream records, never a user error.
var ErrUnbalanced = errors.New("total debt and total credit do not match")

// UnknownMemberError reports an expense or payment referencing a nickname
// that is not a member of the group.
type UnknownMemberError struct {
	Nickname string
}

func (e *UnknownMemberError) Error() string {
	return fmt.Sprintf("unknown member %q", e.Nickname)
}
