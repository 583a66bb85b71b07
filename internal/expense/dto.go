package expense

// CreateExpenseRequest represents the request to record an expense.
// An empty split set means "divide among all current members".
type CreateExpenseRequest struct {
	Description  string   `json:"description" validate:"required,min=1,max=200"`
	Amount       float64  `json:"amount" validate:"required,gt=0"`
	PaidBy       string   `json:"paid_by" validate:"required"`
	SplitBetween []string `json:"split_between"`
}

// ExpenseResponse represents the response for an expense
type ExpenseResponse struct {
	ID           int64    `json:"id"`
	GroupID      string   `json:"group_id"`
	Description  string   `json:"description"`
	Amount       float64  `json:"amount"`
	Currency     string   `json:"currency"`
	PaidBy       string   `json:"paid_by"`
	SplitBetween []string `json:"split_between"`
	Date         string   `json:"date"`
}

// ToResponse converts an Expense model to an ExpenseResponse DTO
func (e *Expense) ToResponse(currency string) *ExpenseResponse {
	return &ExpenseResponse{
		ID:           e.ID,
		GroupID:      e.GroupID,
		Description:  e.Description,
		Amount:       e.Amount,
		Currency:     currency,
		PaidBy:       e.PaidBy,
		SplitBetween: e.SplitBetween,
		Date:         e.Date.Format("2006-01-02T15:04:05Z"),
	}
}
