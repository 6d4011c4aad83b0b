// Package config loads server settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/SirviTusharChoudhary/InventoryPro/internal/alert"
	"github.com/SirviTusharChoudhary/InventoryPro/internal/inventory"
)

// Config holds every setting of the server.
type Config struct {
	Addr       string
	DBPath     string
	StaticPath string
	StorageKey string
	LogLevel   string

	ToastTTL            time.Duration
	NotifyPermission    alert.Permission
	NotifyRatePerMinute int
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Load reads .env from the working directory, if present, then the
// environment. Variables already set in the environment win over .env.
func Load() (Config, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit .env path.
func LoadFile(path string) (Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", path, err)
	}

	cfg := Config{
		Addr:       getEnv("ADDR", ":8080"),
		DBPath:     getEnv("DB_PATH", "./data/inventory.db"),
		StaticPath: getEnv("STATIC_PATH", "./web"),
		StorageKey: getEnv("STORAGE_KEY", inventory.DefaultKey),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
	}

	ttl, err := time.ParseDuration(getEnv("TOAST_TTL", alert.DefaultToastTTL.String()))
	if err != nil {
		return Config{}, fmt.Errorf("invalid TOAST_TTL: %w", err)
	}
	if ttl <= 0 {
		return Config{}, fmt.Errorf("invalid TOAST_TTL: must be positive, got %s", ttl)
	}
	cfg.ToastTTL = ttl

	perm, err := alert.ParsePermission(getEnv("NOTIFY_PERMISSION", string(alert.PermissionDefault)))
	if err != nil {
		return Config{}, fmt.Errorf("invalid NOTIFY_PERMISSION: %w", err)
	}
	cfg.NotifyPermission = perm

	rate, err := strconv.Atoi(getEnv("NOTIFY_RATE_PER_MINUTE", "30"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid NOTIFY_RATE_PER_MINUTE: %w", err)
	}
	cfg.NotifyRatePerMinute = rate

	return cfg, nil
}
