package customer

import (
	"context"

	"github.com/amirasaad/ledger/pkg/domain/customer"
)

// Guard inspects the current statement of a record before an entry is appended.
// Returning an error aborts the append.
type Guard func(statement []customer.Entry) error

// Repository is the Account Store: the set of all customer records, keyed by CPF.
//
// Implementations hand out snapshots, never references into their own state.
// Mutations of one record are serialized; mutations of different records need not be.
type Repository interface {
	// FindByCPF returns a snapshot of the record registered under cpf, or domain.ErrNotFound.
	FindByCPF(ctx context.Context, cpf string) (*customer.Customer, error)

	// Exists reports whether a record is registered under cpf.
	Exists(ctx context.Context, cpf string) (bool, error)

	// Insert stores a new record; domain.ErrAlreadyExists if its CPF is taken.
	Insert(ctx context.Context, c *customer.Customer) error

	// Remove deletes the stored record that c identifies (same CPF and ID).
	Remove(ctx context.Context, c *customer.Customer) error

	// UpdateName overwrites the display name of the record that c identifies.
	UpdateName(ctx context.Context, c *customer.Customer, name string) error

	// AppendEntry runs guard against the record's current statement and, if it passes,
	// appends entry. Both steps happen under the record's lock.
	AppendEntry(ctx context.Context, c *customer.Customer, entry customer.Entry, guard Guard) error

	// List returns snapshots of all records in insertion order.
	List(ctx context.Context) ([]*customer.Customer, error)
}
