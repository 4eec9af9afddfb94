// Package ledger implements deposits, withdrawals, statements and balances against a
// resolved customer record.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/customer"
	repo "github.com/amirasaad/ledger/pkg/repository/customer"
)

// Service appends statement entries and answers statement queries.
type Service struct {
	repo   repo.Repository
	loc    *time.Location
	now    func() time.Time
	logger *slog.Logger
}

// Option customizes a Service.
type Option func(*Service)

// WithClock overrides the time source used to stamp entries.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLocation sets the time zone that defines a calendar date for StatementByDate.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// New creates a Service backed by the given store.
func New(r repo.Repository, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		repo:   r,
		loc:    time.Local,
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Location is the time zone used for by-date statements.
func (s *Service) Location() *time.Location {
	return s.loc
}

// Deposit appends a credit entry stamped at call time. There is no balance check.
func (s *Service) Deposit(
	ctx context.Context,
	c *customer.Customer,
	description string,
	amount float64,
) (customer.Entry, error) {
	log := s.logger.With("operation", "Deposit", "cpf", c.CPF, "amount", amount)
	entry, err := customer.NewCredit(description, amount, s.now())
	if err != nil {
		log.Warn("Rejected deposit", "error", err)
		return customer.Entry{}, err
	}
	if err := s.repo.AppendEntry(ctx, c, entry, nil); err != nil {
		log.Error("Failed to append credit", "error", err)
		return customer.Entry{}, err
	}
	log.Info("Deposit recorded")
	return entry, nil
}

// Withdraw appends a debit entry when the current balance covers amount.
// The balance check and the append are atomic with respect to other writes on the record.
func (s *Service) Withdraw(
	ctx context.Context,
	c *customer.Customer,
	amount float64,
) (customer.Entry, error) {
	log := s.logger.With("operation", "Withdraw", "cpf", c.CPF, "amount", amount)
	entry, err := customer.NewDebit(amount, s.now())
	if err != nil {
		log.Warn("Rejected withdrawal", "error", err)
		return customer.Entry{}, err
	}
	err = s.repo.AppendEntry(ctx, c, entry, func(statement []customer.Entry) error {
		if balance := customer.Balance(statement); balance < amount {
			return fmt.Errorf("%w: balance %.2f, requested %.2f", domain.ErrInsufficientFunds, balance, amount)
		}
		return nil
	})
	if err != nil {
		log.Warn("Withdrawal refused", "error", err)
		return customer.Entry{}, err
	}
	log.Info("Withdrawal recorded")
	return entry, nil
}

// Statement returns the full ordered statement of the record.
func (s *Service) Statement(ctx context.Context, c *customer.Customer) ([]customer.Entry, error) {
	current, err := s.refresh(ctx, c)
	if err != nil {
		return nil, err
	}
	return current.Statement, nil
}

// StatementByDate returns the entries created on the calendar date of date in the
// service's location. date is a YYYY-MM-DD string.
func (s *Service) StatementByDate(
	ctx context.Context,
	c *customer.Customer,
	date string,
) ([]customer.Entry, error) {
	day, err := customer.ParseDate(date, s.loc)
	if err != nil {
		s.logger.Warn("Rejected statement date", "cpf", c.CPF, "date", date)
		return nil, err
	}
	statement, err := s.Statement(ctx, c)
	if err != nil {
		return nil, err
	}
	return customer.FilterByDate(statement, day, s.loc), nil
}

// Balance returns the net of the record's statement.
func (s *Service) Balance(ctx context.Context, c *customer.Customer) (float64, error) {
	statement, err := s.Statement(ctx, c)
	if err != nil {
		return 0, err
	}
	return customer.Balance(statement), nil
}

// refresh reloads c so reads reflect entries appended after it was resolved.
func (s *Service) refresh(ctx context.Context, c *customer.Customer) (*customer.Customer, error) {
	current, err := s.repo.FindByCPF(ctx, c.CPF)
	if err != nil {
		return nil, err
	}
	if current.ID != c.ID {
		return nil, domain.ErrNotFound
	}
	return current, nil
}
