package customer

import (
	"context"
	"fmt"
	"sync"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/customer"
	repo "github.com/amirasaad/ledger/pkg/repository/customer"
)

// record is one stored customer. mu guards c and removed.
type record struct {
	mu      sync.Mutex
	c       *customer.Customer
	removed bool
}

// MemoryRepository keeps all customers in process memory.
//
// Lock order is store then record. The store lock guards the index only,
// so appends to different customers never wait on each other.
type MemoryRepository struct {
	mu    sync.RWMutex
	byCPF map[string]*record
	order []*record
}

// NewMemory creates an empty in-memory Account Store.
func NewMemory() *MemoryRepository {
	return &MemoryRepository{byCPF: make(map[string]*record)}
}

func (m *MemoryRepository) FindByCPF(ctx context.Context, cpf string) (*customer.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.byCPF[cpf]
	if !ok {
		return nil, domain.ErrNotFound
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.c.Clone(), nil
}

func (m *MemoryRepository) Exists(ctx context.Context, cpf string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.byCPF[cpf]
	return ok, nil
}

func (m *MemoryRepository) Insert(ctx context.Context, c *customer.Customer) error {
	if c == nil {
		return fmt.Errorf("%w: nil customer", domain.ErrValidation)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byCPF[c.CPF]; ok {
		return domain.ErrAlreadyExists
	}
	rec := &record{c: c.Clone()}
	m.byCPF[c.CPF] = rec
	m.order = append(m.order, rec)
	return nil
}

// Remove drops the record c identifies. The slot is located by the stored
// record's pointer, never by comparing customer values.
func (m *MemoryRepository) Remove(ctx context.Context, c *customer.Customer) error {
	if c == nil {
		return domain.ErrNotFound
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.byCPF[c.CPF]
	if !ok {
		return domain.ErrNotFound
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.c.ID != c.ID {
		return domain.ErrNotFound
	}
	delete(m.byCPF, c.CPF)
	for i, r := range m.order {
		if r == rec {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	rec.removed = true
	return nil
}

func (m *MemoryRepository) UpdateName(ctx context.Context, c *customer.Customer, name string) error {
	rec, err := m.lookup(c)
	if err != nil {
		return err
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.removed {
		return domain.ErrNotFound
	}
	rec.c.Name = name
	return nil
}

func (m *MemoryRepository) AppendEntry(
	ctx context.Context,
	c *customer.Customer,
	entry customer.Entry,
	guard repo.Guard,
) error {
	rec, err := m.lookup(c)
	if err != nil {
		return err
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.removed {
		return domain.ErrNotFound
	}
	if guard != nil {
		snapshot := make([]customer.Entry, len(rec.c.Statement))
		copy(snapshot, rec.c.Statement)
		if err := guard(snapshot); err != nil {
			return err
		}
	}
	rec.c.Statement = append(rec.c.Statement, entry)
	return nil
}

func (m *MemoryRepository) List(ctx context.Context) ([]*customer.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*customer.Customer, 0, len(m.order))
	for _, rec := range m.order {
		rec.mu.Lock()
		out = append(out, rec.c.Clone())
		rec.mu.Unlock()
	}
	return out, nil
}

// lookup resolves the live record for c. It does not take the record lock.
func (m *MemoryRepository) lookup(c *customer.Customer) (*record, error) {
	if c == nil {
		return nil, domain.ErrNotFound
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.byCPF[c.CPF]
	if !ok || rec.c.ID != c.ID {
		return nil, domain.ErrNotFound
	}
	return rec, nil
}

var _ repo.Repository = (*MemoryRepository)(nil)
