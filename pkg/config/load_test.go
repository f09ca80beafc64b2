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
	t.Chdir(t.TempDir())
	for _, key := range []string{
		"APP_ENV", "DATABASE_DRIVER", "DATABASE_URL", "SERVER_PORT",
		"RATE_LIMIT_MAX_REQUESTS", "RATE_LIMIT_WINDOW", "SEED_ENABLED", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, DriverMemory, cfg.DB.Driver)
	assert.Equal(t, 25, cfg.DB.MaxOpenConns)
	assert.Equal(t, time.Hour, cfg.DB.ConnMaxLifetime)
	assert.True(t, cfg.DB.Migrate)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 100, cfg.RateLimit.MaxRequests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.True(t, cfg.Seed.Enabled)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://bank:secret@db:5432/bank?sslmode=disable")
	t.Setenv("DATABASE_MAX_OPEN_CONNS", "7")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("SEED_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, 7, cfg.DB.MaxOpenConns)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
	assert.False(t, cfg.Seed.Enabled)
}

func TestLoad_FromEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.test"),
		[]byte("BANKCORE_TEST_MARKER=1\nSERVER_PORT=4321\n"), 0o600))
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	t.Chdir(nested)
	t.Setenv("SERVER_PORT", "")
	require.NoError(t, os.Unsetenv("SERVER_PORT"))
	t.Cleanup(func() { _ = os.Unsetenv("BANKCORE_TEST_MARKER") })

	cfg, err := Load("missing.env", ".env.test")
	require.NoError(t, err)
	assert.Equal(t, 4321, cfg.Server.Port)
	assert.Equal(t, "1", os.Getenv("BANKCORE_TEST_MARKER"))
}

func TestLoad_RejectsBadDriver(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATABASE_DRIVER", "sqlite")

	_, err := Load()
	assert.ErrorContains(t, err, "unsupported DATABASE_DRIVER")
}

func TestLoad_PostgresNeedsURL(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	assert.ErrorContains(t, err, "DATABASE_URL is required")
}

func TestFindEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), nil, 0o600))
	nested := filepath.Join(dir, "x")
	require.NoError(t, os.Mkdir(nested, 0o755))
	t.Chdir(nested)

	found, err := FindEnvFile("")
	require.NoError(t, err)
	assert.Equal(t, ".env", filepath.Base(found))

	_, err = FindEnvFile("does-not-exist.env")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMaskValue(t *testing.T) {
	assert.Equal(t, "****", maskValue("short"))
	assert.Equal(t, "po****able", maskValue("postgres://u:p@h/db?sslmode=disable"))
}
