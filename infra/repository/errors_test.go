package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMapGormErrorToDomain(t *testing.T) {
	t.Parallel()

	other := errors.New("some other error")
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{"nil error returns nil", nil, nil},
		{"duplicate key maps to ErrAlreadyExists", gorm.ErrDuplicatedKey, domain.ErrAlreadyExists},
		{"record not found maps to ErrNotFound", gorm.ErrRecordNotFound, domain.ErrNotFound},
		{"invalid data maps to ErrValidation", gorm.ErrInvalidData, domain.ErrValidation},
		{"joined duplicate key", errors.Join(errors.New("outer"), gorm.ErrDuplicatedKey), domain.ErrAlreadyExists},
		{"wrapped not found", fmt.Errorf("query: %w", gorm.ErrRecordNotFound), domain.ErrNotFound},
		{"domain error passes through", domain.ErrInsufficientFunds, domain.ErrInsufficientFunds},
		{"unknown error passes through", other, other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := MapGormErrorToDomain(tt.input)
			if tt.expected == nil {
				require.NoError(t, result)
				return
			}
			assert.ErrorIs(t, result, tt.expected)
		})
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	assert.NoError(t, WrapError(func() error { return nil }))
	assert.ErrorIs(t, WrapError(func() error { return gorm.ErrRecordNotFound }), domain.ErrNotFound)
}
