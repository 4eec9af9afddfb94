package customer

import (
	"time"

	"github.com/amirasaad/ledger/pkg/domain/customer"
)

// Customer is the persisted form of a customer record. The surrogate primary key
// orders records by insertion; ExternalID carries the domain identifier.
type Customer struct {
	ID         uint      `gorm:"primaryKey"`
	ExternalID string    `gorm:"type:varchar(64);index;not null"`
	CPF        string    `gorm:"type:varchar(32);uniqueIndex;not null"`
	Name       string    `gorm:"type:varchar(255)"`
	Entries    []Entry   `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time
}

// TableName specifies the table name for the Customer model.
func (Customer) TableName() string {
	return "customers"
}

// Entry is the persisted form of a statement entry. Entries are only ever inserted.
type Entry struct {
	ID          uint    `gorm:"primaryKey"`
	CustomerID  uint    `gorm:"index;not null"`
	Description *string `gorm:"type:varchar(255)"`
	Amount      float64 `gorm:"not null"`
	Type        string  `gorm:"type:varchar(8);not null"`
	CreatedAt   time.Time
}

// TableName specifies the table name for the Entry model.
func (Entry) TableName() string {
	return "statement_entries"
}

func mapEntryToModel(customerID uint, e customer.Entry) Entry {
	m := Entry{
		CustomerID: customerID,
		Amount:     e.Amount,
		Type:       string(e.Type),
		CreatedAt:  e.CreatedAt,
	}
	if e.Type == customer.Credit {
		desc := e.Description
		m.Description = &desc
	}
	return m
}

func mapModelToEntry(m Entry) customer.Entry {
	e := customer.Entry{
		Amount:    m.Amount,
		Type:      customer.EntryType(m.Type),
		CreatedAt: m.CreatedAt,
	}
	if m.Description != nil {
		e.Description = *m.Description
	}
	return e
}

func mapModelToEntries(models []Entry) []customer.Entry {
	out := make([]customer.Entry, 0, len(models))
	for _, m := range models {
		out = append(out, mapModelToEntry(m))
	}
	return out
}

func mapModelToCustomer(m *Customer) (*customer.Customer, error) {
	return customer.New().
		WithID(m.ExternalID).
		WithCPF(m.CPF).
		WithName(m.Name).
		WithStatement(mapModelToEntries(m.Entries)).
		WithCreatedAt(m.CreatedAt).
		Build()
}
