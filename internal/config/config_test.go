package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	for _, key := range []string{"ADDR", "DB_DRIVER", "DB_DSN"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "sqlite3", cfg.DBDriver)
	assert.Equal(t, "newel.db", cfg.DBDSN)
	assert.Equal(t, "test-secret", cfg.SecretKey)
}

func TestLoadRequiresSecretKey(t *testing.T) {
	t.Setenv("SECRET_KEY", "")

	_, err := Load()
	assert.Error(t, err, "a missing SECRET_KEY must refuse to start, never fall back to a builtin")
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("DB_DRIVER", "oracle")

	_, err := Load()
	assert.Error(t, err)
}
