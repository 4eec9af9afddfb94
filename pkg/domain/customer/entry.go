package customer

import (
	"fmt"
	"math"
	"time"

	"github.com/amirasaad/ledger/pkg/domain"
)

// EntryType tells whether an entry adds to or subtracts from the balance.
type EntryType string

const (
	Credit EntryType = "credit"
	Debit  EntryType = "debit"
)

// Entry is a single statement operation. Once appended it is never mutated.
type Entry struct {
	Description string    `json:"description,omitempty"`
	Amount      float64   `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
	Type        EntryType `json:"type"`
}

// NewCredit creates a deposit entry stamped at the given time.
func NewCredit(description string, amount float64, at time.Time) (Entry, error) {
	if err := validateAmount(amount); err != nil {
		return Entry{}, err
	}
	return Entry{
		Description: description,
		Amount:      amount,
		CreatedAt:   at,
		Type:        Credit,
	}, nil
}

// NewDebit creates a withdrawal entry stamped at the given time. Debits carry no description.
func NewDebit(amount float64, at time.Time) (Entry, error) {
	if err := validateAmount(amount); err != nil {
		return Entry{}, err
	}
	return Entry{
		Amount:    amount,
		CreatedAt: at,
		Type:      Debit,
	}, nil
}

func validateAmount(amount float64) error {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Errorf("%w: amount must be a non-negative number", domain.ErrValidation)
	}
	return nil
}
