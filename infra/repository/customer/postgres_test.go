package customer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	infracustomer "github.com/amirasaad/ledger/infra/repository/customer"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/customer"
	repo "github.com/amirasaad/ledger/pkg/repository/customer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockStore(t *testing.T) (repo.Repository, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDb.Close() })
	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return infracustomer.New(db), mock
}

func TestPostgresStore_FindByCPF_NotFound(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(`SELECT (.+) FROM "customers" WHERE cpf = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "external_id", "cpf", "name"}))

	_, err := store.FindByCPF(context.Background(), "111")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Exists_DatabaseError(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "customers" WHERE cpf = \$1`).
		WillReturnError(errors.New("connection reset"))

	_, err := store.Exists(context.Background(), "111")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Insert_Duplicate(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "customers" WHERE cpf = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	c, err := customer.New().WithCPF("111").WithID("id-1").WithName("Alice").Build()
	require.NoError(t, err)
	assert.ErrorIs(t, store.Insert(context.Background(), c), domain.ErrAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_UpdateName_NoRows(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "customers" SET (.+) WHERE (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	c := &customer.Customer{ID: "id-1", CPF: "111"}
	assert.ErrorIs(t, store.UpdateName(context.Background(), c, "Bob"), domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_AppendEntry_LocksRow(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "customers" WHERE (.+) FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "external_id", "cpf", "name"}))
	mock.ExpectRollback()

	c := &customer.Customer{ID: "id-1", CPF: "111"}
	entry, err := customer.NewCredit("salary", 10, c.CreatedAt)
	require.NoError(t, err)
	assert.ErrorIs(t, store.AppendEntry(context.Background(), c, entry, nil), domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
