package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken        string        `mapstructure:"TELEGRAM_TOKEN"`
	DBDSN                string        `mapstructure:"DB_DSN"`
	Environment          string        `mapstructure:"ENV"`
	LogLevel             string        `mapstructure:"LOG_LEVEL"`
	JWTSecret            string        `mapstructure:"SUPABASE_JWT_SECRET"`
	MigrationsPath       string        `mapstructure:"MIGRATIONS_PATH"`
	RequestTimeout       time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	StatusStaleAfter     time.Duration `mapstructure:"STATUS_STALE_AFTER"`
	SessionSweepInterval time.Duration `mapstructure:"SESSION_SWEEP_INTERVAL"`
}

const (
	defaultMigrationsPath       = "migrations"
	defaultRequestTimeout       = 10 * time.Second
	defaultStatusStaleAfter     = 30 * time.Minute
	defaultSessionSweepInterval = 5 * time.Minute
)

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	return FromEnv(os.Getenv)
}

// FromEnv собирает конфиг из функции чтения переменных окружения
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		DBDSN:          getenv("DB_DSN"),
		TelegramToken:  getenv("TELEGRAM_TOKEN"),
		Environment:    getenv("ENV"),
		LogLevel:       getenv("LOG_LEVEL"),
		JWTSecret:      getenv("SUPABASE_JWT_SECRET"),
		MigrationsPath: getenv("MIGRATIONS_PATH"),
	}

	// Устанавливаем дефолтные значения
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = defaultMigrationsPath
	}

	var err error
	if cfg.RequestTimeout, err = durationOr(getenv, "REQUEST_TIMEOUT", defaultRequestTimeout); err != nil {
		return nil, err
	}
	if cfg.StatusStaleAfter, err = durationOr(getenv, "STATUS_STALE_AFTER", defaultStatusStaleAfter); err != nil {
		return nil, err
	}
	if cfg.SessionSweepInterval, err = durationOr(getenv, "SESSION_SWEEP_INTERVAL", defaultSessionSweepInterval); err != nil {
		return nil, err
	}

	// Проверяем обязательные поля
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is required but not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("SUPABASE_JWT_SECRET is required but not set")
	}
	if cfg.SessionSweepInterval <= 0 {
		return nil, fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive")
	}

	return cfg, nil
}

func (c *Config) GetDBDSN() string {
	return c.DBDSN
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// durationOr читает длительность вида "10s"; пустое значение даёт дефолт
func durationOr(getenv func(string) string, key string, def time.Duration) (time.Duration, error) {
	raw := getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, raw, err)
	}
	return d, nil
}
