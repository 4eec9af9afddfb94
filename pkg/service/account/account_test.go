package account_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	infracustomer "github.com/amirasaad/ledger/infra/repository/customer"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/customer"
	"github.com/amirasaad/ledger/pkg/idgen"
	repo "github.com/amirasaad/ledger/pkg/repository/customer"
	"github.com/amirasaad/ledger/pkg/service/account"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

func newService(t *testing.T) *account.Service {
	t.Helper()
	return account.New(
		infracustomer.NewMemory(),
		slog.Default(),
		account.WithClock(func() time.Time { return fixedNow }),
		account.WithIDGenerator(idgen.Func(func() string { return "generated-id" })),
	)
}

func TestCreate(t *testing.T) {
	t.Parallel()
	svc := newService(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, "111", "Alice", "id-1")
	require.NoError(t, err)
	assert.Equal(t, "111", c.CPF)
	assert.Equal(t, "Alice", c.Name)
	assert.Equal(t, "id-1", c.ID)
	assert.NotNil(t, c.Statement)
	assert.Empty(t, c.Statement)
	assert.Equal(t, fixedNow, c.CreatedAt)

	got, err := svc.Get(ctx, "111")
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)
}

func TestCreate_GeneratesID(t *testing.T) {
	t.Parallel()
	c, err := newService(t).Create(context.Background(), "111", "Alice", "")
	require.NoError(t, err)
	assert.Equal(t, "generated-id", c.ID)
}

func TestCreate_DuplicateCPF(t *testing.T) {
	t.Parallel()
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "111", "Alice", "id-1")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "111", "Bob", "id-2")
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestCreate_BlankCPF(t *testing.T) {
	t.Parallel()
	_, err := newService(t).Create(context.Background(), "  ", "Alice", "id-1")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreate_TrimsCPF(t *testing.T) {
	t.Parallel()
	svc := newService(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, " 111 ", "Alice", "id-1")
	require.NoError(t, err)
	assert.Equal(t, "111", c.CPF)

	_, err = svc.Create(ctx, "111", "Bob", "id-2")
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	for _, cpf := range []string{"111", " 111 ", "\t111"} {
		got, err := svc.Get(ctx, cpf)
		require.NoError(t, err, "%q", cpf)
		assert.Equal(t, "Alice", got.Name, "%q", cpf)
	}
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()
	_, err := newService(t).Get(context.Background(), "404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateName(t *testing.T) {
	t.Parallel()
	svc := newService(t)
	ctx := context.Background()
	c, err := svc.Create(ctx, "111", "Alice", "id-1")
	require.NoError(t, err)

	updated, err := svc.UpdateName(ctx, c, "Alice Doe")
	require.NoError(t, err)
	assert.Equal(t, "Alice Doe", updated.Name)
	assert.Equal(t, "Alice", c.Name, "the caller's snapshot is left untouched")

	got, err := svc.Get(ctx, "111")
	require.NoError(t, err)
	assert.Equal(t, "Alice Doe", got.Name)
	assert.Equal(t, "111", got.CPF)
	assert.Equal(t, "id-1", got.ID)
}

func TestDeleteThenRecreate(t *testing.T) {
	t.Parallel()
	svc := newService(t)
	ctx := context.Background()
	alice, err := svc.Create(ctx, "111", "Alice", "id-1")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "222", "Carol", "id-2")
	require.NoError(t, err)

	remaining, err := svc.Delete(ctx, alice)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "222", remaining[0].CPF)

	_, err = svc.Get(ctx, "111")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	bob, err := svc.Create(ctx, "111", "Bob", "id-3")
	require.NoError(t, err)
	assert.Equal(t, "Bob", bob.Name)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

type mockRepository struct {
	mock.Mock
	repo.Repository
}

func (m *mockRepository) Insert(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockRepository) Remove(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func TestCreate_StoreFailure(t *testing.T) {
	t.Parallel()
	r := new(mockRepository)
	boom := errors.New("connection reset")
	r.On("Insert", mock.Anything, mock.AnythingOfType("*customer.Customer")).Return(boom).Once()

	_, err := account.New(r, slog.Default()).Create(context.Background(), "111", "Alice", "id-1")
	assert.ErrorIs(t, err, boom)
	r.AssertExpectations(t)
}

func TestDelete_NotFound(t *testing.T) {
	t.Parallel()
	r := new(mockRepository)
	r.On("Remove", mock.Anything, mock.Anything).Return(domain.ErrNotFound).Once()
	c, err := customer.New().WithCPF("111").WithID("id-1").Build()
	require.NoError(t, err)

	_, err = account.New(r, nil).Delete(context.Background(), c)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	r.AssertExpectations(t)
}
