// Package account provides the business logic for registering, reading, renaming and
// removing customer records.
//
// Every operation except Create and Get works on an already resolved record: callers
// look the record up with Get first, and the lookup fails with domain.ErrNotFound before
// the operation runs.
package account

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/customer"
	"github.com/amirasaad/ledger/pkg/idgen"
	repo "github.com/amirasaad/ledger/pkg/repository/customer"
)

// Service orchestrates the Account Store for customer record lifecycle operations.
type Service struct {
	repo   repo.Repository
	ids    idgen.Generator
	now    func() time.Time
	logger *slog.Logger
}

// Option customizes a Service.
type Option func(*Service)

// WithClock overrides the time source used to stamp new records.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator overrides the generator used when Create is called without an id.
func WithIDGenerator(ids idgen.Generator) Option {
	return func(s *Service) { s.ids = ids }
}

// New creates a Service backed by the given store.
func New(r repo.Repository, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		repo:   r,
		ids:    idgen.Default,
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create registers a new customer with an empty statement.
// An empty id is replaced by a freshly generated one.
func (s *Service) Create(ctx context.Context, cpf, name, id string) (*customer.Customer, error) {
	log := s.logger.With("operation", "Create", "cpf", cpf)
	if id == "" {
		id = s.ids.NewID()
	}
	c, err := customer.New().
		WithID(id).
		WithCPF(cpf).
		WithName(name).
		WithCreatedAt(s.now()).
		Build()
	if err != nil {
		log.Warn("Rejected customer", "error", err)
		return nil, err
	}
	if err := s.repo.Insert(ctx, c); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			log.Warn("Customer already exists")
		} else {
			log.Error("Failed to store customer", "error", err)
		}
		return nil, err
	}
	log.Info("Customer created", "id", c.ID)
	return c, nil
}

// Get resolves the record registered under cpf. Surrounding whitespace is ignored.
func (s *Service) Get(ctx context.Context, cpf string) (*customer.Customer, error) {
	cpf = strings.TrimSpace(cpf)
	c, err := s.repo.FindByCPF(ctx, cpf)
	if err != nil {
		s.logger.Debug("Customer lookup failed", "cpf", cpf, "error", err)
		return nil, err
	}
	return c, nil
}

// UpdateName overwrites the display name of a resolved record and returns the updated snapshot.
func (s *Service) UpdateName(ctx context.Context, c *customer.Customer, name string) (*customer.Customer, error) {
	log := s.logger.With("operation", "UpdateName", "cpf", c.CPF)
	if err := s.repo.UpdateName(ctx, c, name); err != nil {
		log.Error("Failed to update name", "error", err)
		return nil, err
	}
	updated := c.Clone()
	updated.Name = name
	log.Info("Customer renamed")
	return updated, nil
}

// Delete removes a resolved record and returns the records that remain.
func (s *Service) Delete(ctx context.Context, c *customer.Customer) ([]*customer.Customer, error) {
	log := s.logger.With("operation", "Delete", "cpf", c.CPF)
	if err := s.repo.Remove(ctx, c); err != nil {
		log.Error("Failed to remove customer", "error", err)
		return nil, err
	}
	log.Info("Customer removed")
	return s.repo.List(ctx)
}

// List returns every registered record in insertion order.
func (s *Service) List(ctx context.Context) ([]*customer.Customer, error) {
	return s.repo.List(ctx)
}
