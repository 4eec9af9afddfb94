package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "s3cret", cfg.Auth.Jwt.Secret)
	assert.Equal(t, 300*time.Second, cfg.Auth.Jwt.Expiry)
	assert.Equal(t, "admin", cfg.Auth.User)
	assert.Equal(t, "123", cfg.Auth.Password)
	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.Empty(t, cfg.Redis.URL)
	assert.Equal(t, "Local", cfg.Ledger.TimeZone)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("AUTH_JWT_SECRET"))

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_FromEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env.ledger-test")
	content := "AUTH_JWT_SECRET=fromfile\nSTORE_DRIVER=sqlite\nAUTH_JWT_EXPIRY=2m\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))
	t.Chdir(dir)
	// godotenv does not override variables that are already set.
	t.Setenv("AUTH_JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("AUTH_JWT_SECRET"))
	t.Setenv("STORE_DRIVER", "")
	require.NoError(t, os.Unsetenv("STORE_DRIVER"))
	t.Setenv("AUTH_JWT_EXPIRY", "")
	require.NoError(t, os.Unsetenv("AUTH_JWT_EXPIRY"))

	cfg, err := Load(".env.ledger-test")
	require.NoError(t, err)
	assert.Equal(t, "fromfile", cfg.Auth.Jwt.Secret)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, 2*time.Minute, cfg.Auth.Jwt.Expiry)
}

func TestLedgerLocation(t *testing.T) {
	t.Parallel()
	loc, err := (&Ledger{TimeZone: "Local"}).Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = (&Ledger{TimeZone: "UTC"}).Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	_, err = (&Ledger{TimeZone: "Not/AZone"}).Location()
	assert.Error(t, err)
}

func TestMaskValue(t *testing.T) {
	t.Parallel()
	assert.Empty(t, maskValue(""))
	assert.Equal(t, "****", maskValue("abc"))
	assert.Equal(t, "po****able", maskValue("postgres://u:p@host/db?sslmode=disable"))
}

func TestFindEnvFile(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.find"), []byte("X=1\n"), 0o600))
	t.Chdir(nested)

	found, err := FindEnvFile(".env.find")
	require.NoError(t, err)
	assert.Equal(t, ".env.find", filepath.Base(found))

	_, err = FindEnvFile(".env.does-not-exist")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFindUpward_SkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a")
	require.NoError(t, os.MkdirAll(filepath.Join(nested, ".env"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("X=1\n"), 0o600))

	found, err := findUpward(nested, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".env"), found)
}
