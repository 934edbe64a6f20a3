package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Драйверы хранилища.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config описывает настройки запуска приложения.
type Config struct {
	HTTPAddr    string
	MetricsAddr string

	StorageDriver string
	PostgresDSN   string
	// AutoMigrate применяет миграции при старте (только для postgres).
	AutoMigrate bool
}

// DefaultConfig возвращает безопасные значения для локального запуска.
func DefaultConfig() Config {
	return Config{
		HTTPAddr:      ":8080",
		MetricsAddr:   ":9090",
		StorageDriver: StorageMemory,
		AutoMigrate:   false,
	}
}

// LoadConfig читает конфигурацию из .env (если есть) и переменных окружения.
func LoadConfig() (Config, error) {
	_ = godotenv.Load() // .env необязателен

	cfg := DefaultConfig()
	if v := os.Getenv("SALES_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("SALES_METRICS_ADDR"); v != "" {
		cfg.MetricsAddr = v
	}
	if v := os.Getenv("SALES_STORAGE_DRIVER"); v != "" {
		cfg.StorageDriver = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("SALES_POSTGRES_DSN"); v != "" {
		cfg.PostgresDSN = strings.TrimSpace(v)
	}
	if v := os.Getenv("SALES_POSTGRES_AUTO_MIGRATE"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse SALES_POSTGRES_AUTO_MIGRATE: %w", err)
		}
		cfg.AutoMigrate = parsed
	}

	return cfg, cfg.Validate()
}

// Validate проверяет согласованность настроек.
func (c Config) Validate() error {
	switch c.StorageDriver {
	case StorageMemory:
	case StoragePostgres:
		if c.PostgresDSN == "" {
			return fmt.Errorf("storage driver %q requires SALES_POSTGRES_DSN", c.StorageDriver)
		}
	default:
		return fmt.Errorf("unsupported storage driver: %q", c.StorageDriver)
	}
	return nil
}
