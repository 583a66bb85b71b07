package expense

import "time"

// Expense is an immutable shared cost. The currency is the group's; only the
// amount is stored here. SplitBetween holds the nicknames sharing the cost
// equally, payer included when they take part.
type Expense struct {
	ID           int64     `json:"id"`
	GroupID      string    `json:"group_id"`
	Description  string    `json:"description"`
	Amount       float64   `json:"amount"`
	PaidBy       string    `json:"paid_by"`
	SplitBetween []string  `json:"split_between"`
	Date         time.Time `json:"date"`
}
