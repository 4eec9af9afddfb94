package customer_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	infracustomer "github.com/amirasaad/ledger/infra/repository/customer"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/customer"
	repo "github.com/amirasaad/ledger/pkg/repository/customer"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// StoreSuite checks the Account Store contract against one implementation.
type StoreSuite struct {
	suite.Suite
	newStore func(t *testing.T) repo.Repository
	store    repo.Repository
	ctx      context.Context
}

func (s *StoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = s.newStore(s.T())
}

func (s *StoreSuite) newCustomer(cpf, id, name string) *customer.Customer {
	c, err := customer.New().WithCPF(cpf).WithID(id).WithName(name).Build()
	s.Require().NoError(err)
	return c
}

func (s *StoreSuite) credit(amount float64) customer.Entry {
	e, err := customer.NewCredit("salary", amount, time.Now())
	s.Require().NoError(err)
	return e
}

func (s *StoreSuite) TestInsertAndFind() {
	c := s.newCustomer("111", "id-1", "Alice")
	s.Require().NoError(s.store.Insert(s.ctx, c))

	got, err := s.store.FindByCPF(s.ctx, "111")
	s.Require().NoError(err)
	s.Equal("id-1", got.ID)
	s.Equal("Alice", got.Name)
	s.Empty(got.Statement)

	exists, err := s.store.Exists(s.ctx, "111")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *StoreSuite) TestFindMissing() {
	_, err := s.store.FindByCPF(s.ctx, "404")
	s.ErrorIs(err, domain.ErrNotFound)

	exists, err := s.store.Exists(s.ctx, "404")
	s.Require().NoError(err)
	s.False(exists)
}

func (s *StoreSuite) TestInsertDuplicateCPF() {
	s.Require().NoError(s.store.Insert(s.ctx, s.newCustomer("111", "id-1", "Alice")))
	err := s.store.Insert(s.ctx, s.newCustomer("111", "id-2", "Bob"))
	s.ErrorIs(err, domain.ErrAlreadyExists)

	got, err := s.store.FindByCPF(s.ctx, "111")
	s.Require().NoError(err)
	s.Equal("Alice", got.Name)
}

func (s *StoreSuite) TestSnapshotsAreDetached() {
	c := s.newCustomer("111", "id-1", "Alice")
	s.Require().NoError(s.store.Insert(s.ctx, c))
	c.Name = "mutated after insert"

	got, err := s.store.FindByCPF(s.ctx, "111")
	s.Require().NoError(err)
	got.Name = "mutated snapshot"
	got.Statement = append(got.Statement, s.credit(1))

	again, err := s.store.FindByCPF(s.ctx, "111")
	s.Require().NoError(err)
	s.Equal("Alice", again.Name)
	s.Empty(again.Statement)
}

func (s *StoreSuite) TestUpdateName() {
	c := s.newCustomer("111", "id-1", "Alice")
	s.Require().NoError(s.store.Insert(s.ctx, c))
	s.Require().NoError(s.store.UpdateName(s.ctx, c, "Alice Doe"))

	got, err := s.store.FindByCPF(s.ctx, "111")
	s.Require().NoError(err)
	s.Equal("Alice Doe", got.Name)
	s.Equal("id-1", got.ID)

	s.ErrorIs(s.store.UpdateName(s.ctx, s.newCustomer("222", "id-2", "x"), "y"), domain.ErrNotFound)
}

func (s *StoreSuite) TestAppendEntryKeepsOrder() {
	c := s.newCustomer("111", "id-1", "Alice")
	s.Require().NoError(s.store.Insert(s.ctx, c))
	for i := 1; i <= 5; i++ {
		s.Require().NoError(s.store.AppendEntry(s.ctx, c, s.credit(float64(i)), nil))
	}

	got, err := s.store.FindByCPF(s.ctx, "111")
	s.Require().NoError(err)
	s.Require().Len(got.Statement, 5)
	for i, e := range got.Statement {
		s.InDelta(float64(i+1), e.Amount, 0)
		s.Equal(customer.Credit, e.Type)
		s.Equal("salary", e.Description)
	}
}

func (s *StoreSuite) TestAppendEntryGuard() {
	c := s.newCustomer("111", "id-1", "Alice")
	s.Require().NoError(s.store.Insert(s.ctx, c))
	s.Require().NoError(s.store.AppendEntry(s.ctx, c, s.credit(10), nil))

	var seen []customer.Entry
	err := s.store.AppendEntry(s.ctx, c, s.credit(5), func(statement []customer.Entry) error {
		seen = statement
		return domain.ErrInsufficientFunds
	})
	s.ErrorIs(err, domain.ErrInsufficientFunds)
	s.Len(seen, 1)

	got, err := s.store.FindByCPF(s.ctx, "111")
	s.Require().NoError(err)
	s.Len(got.Statement, 1)
}

func (s *StoreSuite) TestAppendEntryDebitHasNoDescription() {
	c := s.newCustomer("111", "id-1", "Alice")
	s.Require().NoError(s.store.Insert(s.ctx, c))
	debit, err := customer.NewDebit(3, time.Now())
	s.Require().NoError(err)
	s.Require().NoError(s.store.AppendEntry(s.ctx, c, debit, nil))

	got, err := s.store.FindByCPF(s.ctx, "111")
	s.Require().NoError(err)
	s.Require().Len(got.Statement, 1)
	s.Equal(customer.Debit, got.Statement[0].Type)
	s.Empty(got.Statement[0].Description)
}

func (s *StoreSuite) TestRemoveThenRecreate() {
	alice := s.newCustomer("111", "id-1", "Alice")
	s.Require().NoError(s.store.Insert(s.ctx, alice))
	s.Require().NoError(s.store.AppendEntry(s.ctx, alice, s.credit(10), nil))
	s.Require().NoError(s.store.Insert(s.ctx, s.newCustomer("222", "id-2", "Carol")))

	s.Require().NoError(s.store.Remove(s.ctx, alice))
	_, err := s.store.FindByCPF(s.ctx, "111")
	s.ErrorIs(err, domain.ErrNotFound)
	s.ErrorIs(s.store.Remove(s.ctx, alice), domain.ErrNotFound)
	s.ErrorIs(s.store.AppendEntry(s.ctx, alice, s.credit(1), nil), domain.ErrNotFound)

	remaining, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(remaining, 1)
	s.Equal("222", remaining[0].CPF)

	bob := s.newCustomer("111", "id-3", "Bob")
	s.Require().NoError(s.store.Insert(s.ctx, bob))
	got, err := s.store.FindByCPF(s.ctx, "111")
	s.Require().NoError(err)
	s.Equal("Bob", got.Name)
	s.Empty(got.Statement)
}

func (s *StoreSuite) TestRemoveStaleHandle() {
	alice := s.newCustomer("111", "id-1", "Alice")
	s.Require().NoError(s.store.Insert(s.ctx, alice))
	s.Require().NoError(s.store.Remove(s.ctx, alice))
	bob := s.newCustomer("111", "id-2", "Bob")
	s.Require().NoError(s.store.Insert(s.ctx, bob))

	// alice's handle must not remove bob even though the CPF matches.
	s.ErrorIs(s.store.Remove(s.ctx, alice), domain.ErrNotFound)
	s.ErrorIs(s.store.UpdateName(s.ctx, alice, "x"), domain.ErrNotFound)
	got, err := s.store.FindByCPF(s.ctx, "111")
	s.Require().NoError(err)
	s.Equal("Bob", got.Name)
}

func (s *StoreSuite) TestListInsertionOrder() {
	for i, cpf := range []string{"333", "111", "222"} {
		s.Require().NoError(s.store.Insert(s.ctx, s.newCustomer(cpf, fmt.Sprintf("id-%d", i), cpf)))
	}
	all, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal("333", all[0].CPF)
	s.Equal("111", all[1].CPF)
	s.Equal("222", all[2].CPF)
}

func (s *StoreSuite) TestConcurrentGuardedAppends() {
	c := s.newCustomer("111", "id-1", "Alice")
	s.Require().NoError(s.store.Insert(s.ctx, c))
	s.Require().NoError(s.store.AppendEntry(s.ctx, c, s.credit(10), nil))

	// 20 debits of 1 against a balance of 10: exactly 10 may succeed.
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			debit, _ := customer.NewDebit(1, time.Now())
			err := s.store.AppendEntry(s.ctx, c, debit, func(statement []customer.Entry) error {
				if customer.Balance(statement) < 1 {
					return domain.ErrInsufficientFunds
				}
				return nil
			})
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	s.Equal(10, succeeded)
	got, err := s.store.FindByCPF(s.ctx, "111")
	s.Require().NoError(err)
	s.Len(got.Statement, 11)
	s.InDelta(0, got.Balance(), 0)
}

func TestMemoryStore(t *testing.T) {
	suite.Run(t, &StoreSuite{
		newStore: func(t *testing.T) repo.Repository { return infracustomer.NewMemory() },
	})
}

func TestSQLiteStore(t *testing.T) {
	suite.Run(t, &StoreSuite{
		newStore: func(t *testing.T) repo.Repository {
			dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
			db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
				Logger:         logger.Default.LogMode(logger.Silent),
				TranslateError: true,
			})
			if err != nil {
				t.Fatalf("open sqlite: %v", err)
			}
			sqlDB, err := db.DB()
			if err != nil {
				t.Fatalf("sqlite handle: %v", err)
			}
			sqlDB.SetMaxOpenConns(1)
			t.Cleanup(func() { _ = sqlDB.Close() })
			if err := infracustomer.Migrate(db); err != nil {
				t.Fatalf("migrate: %v", err)
			}
			return infracustomer.New(db)
		},
	})
}
