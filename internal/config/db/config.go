// Package db открывает подключения к поддерживаемым базам данных.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // драйвер pgx для database/sql, нужен миграциям
)

//go:generate mockery --name Database

// Database подключение, которым владеет приложение
type Database interface {
	Ping(ctx context.Context) error
	Close()
	// DB возвращает *sql.DB для миграций
	DB() *sql.DB
}

// Config параметры пула PostgreSQL
type Config struct {
	DSN               string
	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
}

// NewConfig создает конфигурацию пула с настройками по умолчанию
func NewConfig(dsn string) *Config {
	return &Config{
		DSN:               dsn,
		MaxConns:          10,
		MinConns:          1,
		MaxConnLifetime:   time.Hour,
		MaxConnIdleTime:   30 * time.Minute,
		HealthCheckPeriod: time.Minute,
	}
}

// PostgresDatabase пул pgx для запросов и отдельное *sql.DB для golang-migrate
type PostgresDatabase struct {
	Pool  *pgxpool.Pool
	sqlDB *sql.DB
}

// Connect открывает пул и соединение для миграций; оба проверяются пингом
func (c *Config) Connect(ctx context.Context) (*PostgresDatabase, error) {
	if c.DSN == "" {
		return nil, errors.New("database DSN is required")
	}

	sqlDB, err := c.openMigrationDB(ctx)
	if err != nil {
		return nil, err
	}

	pool, err := c.newPool(ctx)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}

	return &PostgresDatabase{Pool: pool, sqlDB: sqlDB}, nil
}

func (c *Config) openMigrationDB(ctx context.Context) (*sql.DB, error) {
	sqlDB, err := sql.Open("pgx", c.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open sql database: %w", err)
	}
	sqlDB.SetMaxOpenConns(2)
	sqlDB.SetConnMaxLifetime(c.MaxConnLifetime)

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return sqlDB, nil
}

func (c *Config) newPool(ctx context.Context) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(c.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = c.MaxConns
	poolConfig.MinConns = c.MinConns
	poolConfig.MaxConnLifetime = c.MaxConnLifetime
	poolConfig.MaxConnIdleTime = c.MaxConnIdleTime
	poolConfig.HealthCheckPeriod = c.HealthCheckPeriod

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping connection pool: %w", err)
	}

	return pool, nil
}

func (d *PostgresDatabase) Ping(ctx context.Context) error {
	return d.Pool.Ping(ctx)
}

func (d *PostgresDatabase) Close() {
	d.Pool.Close()
	d.sqlDB.Close()
}

func (d *PostgresDatabase) DB() *sql.DB {
	return d.sqlDB
}
