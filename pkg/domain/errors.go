package domain

import "errors"

// Common domain errors
var (
	// ErrNotFound is returned when no customer is registered under the given CPF
	ErrNotFound = errors.New("customer not found")
	// ErrAlreadyExists is returned when a CPF is registered twice
	ErrAlreadyExists = errors.New("customer already exists")
	// ErrInsufficientFunds is returned when a withdrawal exceeds the current balance
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrValidation is returned when input validation fails
	ErrValidation = errors.New("validation error")
	// ErrUnauthorized is returned when login credentials are rejected
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is returned when a session token is missing, invalid, expired or revoked
	ErrForbidden = errors.New("forbidden")
)
