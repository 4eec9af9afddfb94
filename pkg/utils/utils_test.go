package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Parallel()
	hashed, err := HashPassword("123")
	require.NoError(t, err)
	assert.NotEmpty(t, hashed)
	assert.NotEqual(t, "123", hashed)

	again, err := HashPassword("123")
	require.NoError(t, err)
	assert.NotEqual(t, hashed, again, "bcrypt salts every hash")
}

func TestCheckPasswordHash(t *testing.T) {
	t.Parallel()
	hashed, err := HashPassword("123")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("123", hashed))
	assert.False(t, CheckPasswordHash("1234", hashed))
	assert.False(t, CheckPasswordHash("123", ""))
	assert.False(t, CheckPasswordHash("123", "not-a-bcrypt-hash"))
}
