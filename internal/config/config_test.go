package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SirviTusharChoudhary/InventoryPro/internal/alert"
)

var keys = []string{
	"ADDR", "DB_PATH", "STATIC_PATH", "STORAGE_KEY", "LOG_LEVEL",
	"TOAST_TTL", "NOTIFY_PERMISSION", "NOTIFY_RATE_PER_MINUTE",
}

// clearEnv unsets every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "./data/inventory.db", cfg.DBPath)
	assert.Equal(t, "./web", cfg.StaticPath)
	assert.Equal(t, "inventory", cfg.StorageKey)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 4*time.Second, cfg.ToastTTL)
	assert.Equal(t, alert.PermissionDefault, cfg.NotifyPermission)
	assert.Equal(t, 30, cfg.NotifyRatePerMinute)
}

func TestLoad_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv("ADDR", ":9090")
	t.Setenv("TOAST_TTL", "250ms")
	t.Setenv("NOTIFY_PERMISSION", "Granted")
	t.Setenv("NOTIFY_RATE_PER_MINUTE", "0")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 250*time.Millisecond, cfg.ToastTTL)
	assert.Equal(t, alert.PermissionGranted, cfg.NotifyPermission)
	assert.Equal(t, 0, cfg.NotifyRatePerMinute)
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_PATH", "/from/env.db")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DB_PATH=/from/file.db\nSTORAGE_KEY=shop\n"), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/from/env.db", cfg.DBPath, "environment wins over .env")
	assert.Equal(t, "shop", cfg.StorageKey)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad ttl", "TOAST_TTL", "soon"},
		{"non-positive ttl", "TOAST_TTL", "0s"},
		{"bad permission", "NOTIFY_PERMISSION", "maybe"},
		{"bad rate", "NOTIFY_RATE_PER_MINUTE", "lots"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
			assert.ErrorContains(t, err, tt.key)
		})
	}
}
