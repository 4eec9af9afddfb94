// Package customer holds the ledger's data model: customer records keyed by CPF,
// their append-only statement of entries, and the pure computations over it.
package customer

import (
	"fmt"
	"strings"
	"time"

	"github.com/amirasaad/ledger/pkg/domain"
)

// Customer is a registered account holder.
//
// Invariants:
//   - ID and CPF never change after creation.
//   - Statement is append-only; insertion order is chronological order.
type Customer struct {
	ID        string    `json:"id"`
	CPF       string    `json:"cpf"`
	Name      string    `json:"name"`
	Statement []Entry   `json:"statement"`
	CreatedAt time.Time `json:"-"`
}

// Builder provides a fluent API for constructing Customer instances.
type Builder struct {
	id        string
	cpf       string
	name      string
	statement []Entry
	createdAt time.Time
}

// New creates a new Builder stamped with the current time.
func New() *Builder {
	return &Builder{createdAt: time.Now()}
}

// WithID sets the opaque identifier. Mandatory.
func (b *Builder) WithID(id string) *Builder {
	b.id = id
	return b
}

// WithCPF sets the natural key, trimmed of surrounding whitespace. Mandatory.
func (b *Builder) WithCPF(cpf string) *Builder {
	b.cpf = strings.TrimSpace(cpf)
	return b
}

// WithName sets the display name.
func (b *Builder) WithName(name string) *Builder {
	b.name = name
	return b
}

// WithStatement seeds the statement. Only for hydrating a record from a store.
func (b *Builder) WithStatement(entries []Entry) *Builder {
	b.statement = entries
	return b
}

// WithCreatedAt sets the creation timestamp. Only for hydrating a record from a store.
func (b *Builder) WithCreatedAt(t time.Time) *Builder {
	b.createdAt = t
	return b
}

// Build validates the mandatory fields and returns the Customer.
// A freshly built customer always has a non-nil, possibly empty, statement.
func (b *Builder) Build() (*Customer, error) {
	if b.cpf == "" {
		return nil, fmt.Errorf("%w: cpf is required", domain.ErrValidation)
	}
	if b.id == "" {
		return nil, fmt.Errorf("%w: id is required", domain.ErrValidation)
	}
	statement := make([]Entry, len(b.statement))
	copy(statement, b.statement)
	return &Customer{
		ID:        b.id,
		CPF:       b.cpf,
		Name:      b.name,
		Statement: statement,
		CreatedAt: b.createdAt,
	}, nil
}

// Clone returns a deep copy so callers never share the statement's backing array.
func (c *Customer) Clone() *Customer {
	if c == nil {
		return nil
	}
	cp := *c
	cp.Statement = make([]Entry, len(c.Statement))
	copy(cp.Statement, c.Statement)
	return &cp
}

// Balance is the net of the customer's statement.
func (c *Customer) Balance() float64 {
	return Balance(c.Statement)
}
