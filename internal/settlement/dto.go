package settlement

// MemberBalance is one member's net position in the group's currency
type MemberBalance struct {
	Nickname string  `json:"nickname"`
	Balance  float64 `json:"balance"`
}

// BalancesResponse carries every member's balance plus the group aggregates
type BalancesResponse struct {
	GroupID        string          `json:"group_id"`
	Currency       string          `json:"currency"`
	Balances       []MemberBalance `json:"balances"`
	TotalOwed      float64         `json:"total_owed"`
	TotalToReceive float64         `json:"total_to_receive"`
}

// SuggestionResponse is one proposed repayment
type SuggestionResponse struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// SuggestionsResponse carries the full repayment plan for a group
type SuggestionsResponse struct {
	GroupID     string               `json:"group_id"`
	Currency    string               `json:"currency"`
	Suggestions []SuggestionResponse `json:"suggestions"`
}
