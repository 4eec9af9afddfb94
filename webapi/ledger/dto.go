package ledger

//revive:disable

// DepositRequest represents the request body for crediting a customer's statement.
type DepositRequest struct {
	Description string   `json:"description" validate:"max=255"`
	Amount      *float64 `json:"amount" validate:"required,gte=0"`
}

// WithdrawRequest represents the request body for debiting a customer's statement.
type WithdrawRequest struct {
	Amount *float64 `json:"amount" validate:"required,gte=0"`
}

// BalanceResponse is the payload of GET /balance.
type BalanceResponse struct {
	Balance float64 `json:"balance"`
}
