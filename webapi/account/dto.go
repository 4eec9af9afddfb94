package account

//revive:disable

// CreateAccountRequest represents the request body for registering a customer.
type CreateAccountRequest struct {
	CPF  string `json:"cpf" validate:"required,max=32"`
	Name string `json:"name" validate:"required,max=255"`
}

// UpdateAccountRequest represents the request body for renaming a customer.
type UpdateAccountRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}
