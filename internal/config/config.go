package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	defaultJWTSecret   = "shortlinks-dev-secret"
	defaultMaxAttempts = 5
	defaultCacheTTL    = time.Hour
	defaultNATSSubject = "clicks.events"
)

// Config конфигурация сервиса.
// Приоритет: переменные окружения > флаги > значения по умолчанию.
type Config struct {
	ServerAddress   NetworkAddress `env:"SERVER_ADDRESS"`
	GRPCAddress     NetworkAddress `env:"GRPC_ADDRESS"`
	BaseURL         URLPrefix      `env:"BASE_URL"`
	FileStoragePath string         `env:"FILE_STORAGE_PATH"`
	DatabaseDSN     string         `env:"DATABASE_DSN"`
	JWTSecret       string         `env:"JWT_SECRET"`
	LogLevel        string         `env:"LOG_LEVEL"`

	Retry RetryConfig `envPrefix:"RETRY_"`
	Redis RedisConfig `envPrefix:"REDIS_"`
	NATS  NATSConfig  `envPrefix:"NATS_"`
}

// RetryConfig настройки повторной генерации кода при коллизии
type RetryConfig struct {
	MaxAttempts int `env:"MAX_ATTEMPTS"`
}

// RedisConfig настройки кэша ссылок. Пустой адрес отключает кэш.
type RedisConfig struct {
	Addr string        `env:"ADDR"`
	TTL  time.Duration `env:"TTL"`
}

// NATSConfig настройки публикации событий переходов. Пустой URL отключает публикацию.
type NATSConfig struct {
	URL     string `env:"URL"`
	Subject string `env:"SUBJECT"`
}

// NewDefaultConfig возвращает конфигурацию со значениями по умолчанию
func NewDefaultConfig() *Config {
	return &Config{
		ServerAddress: NetworkAddress{Host: "localhost", Port: 8080},
		BaseURL:       URLPrefix("http://localhost:8080"),
		JWTSecret:     defaultJWTSecret,
		LogLevel:      "info",
		Retry: RetryConfig{
			MaxAttempts: defaultMaxAttempts,
		},
		Redis: RedisConfig{
			TTL: defaultCacheTTL,
		},
		NATS: NATSConfig{
			Subject: defaultNATSSubject,
		},
	}
}

// Load загружает .env (если есть), флаги командной строки и переменные окружения
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	return LoadFromArgs(os.Args[1:])
}

// LoadFromArgs разбирает переданные аргументы и переменные окружения
func LoadFromArgs(args []string) (*Config, error) {
	cfg := NewDefaultConfig()

	fs := flag.NewFlagSet("shortener", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&cfg.ServerAddress, "a", "address to run HTTP server")
	fs.Var(&cfg.GRPCAddress, "g", "address to run gRPC health server")
	fs.Var(&cfg.BaseURL, "b", "base URL for shortened links")
	fs.StringVar(&cfg.FileStoragePath, "f", cfg.FileStoragePath, "path to file storage")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN (postgres://, file:, libsql://)")
	fs.StringVar(&cfg.JWTSecret, "j", cfg.JWTSecret, "secret for identity tokens")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.IntVar(&cfg.Retry.MaxAttempts, "r", cfg.Retry.MaxAttempts, "max attempts to generate a unique code")
	fs.StringVar(&cfg.Redis.Addr, "redis", cfg.Redis.Addr, "redis address for link cache")
	fs.StringVar(&cfg.NATS.URL, "nats", cfg.NATS.URL, "NATS URL for click events")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("retry max attempts must be positive, got %d", c.Retry.MaxAttempts)
	}
	if c.JWTSecret == "" {
		return errors.New("JWT secret must not be empty")
	}
	if c.ServerAddress.IsZero() {
		return errors.New("server address is required")
	}
	return nil
}
