package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/tursodatabase/libsql-client-go/libsql" // Turso/libSQL драйвер
	_ "modernc.org/sqlite"                               // локальный SQLite драйвер
)

// Kind тип хранилища, определяемый по DSN
type Kind string

const (
	KindPostgres Kind = "postgres"
	KindSQLite   Kind = "sqlite"
	KindLibSQL   Kind = "libsql"
)

// DetectKind определяет тип базы данных по схеме DSN
func DetectKind(dsn string) (Kind, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"),
		strings.Contains(dsn, "host="):
		return KindPostgres, nil
	case strings.HasPrefix(dsn, "libsql://"), strings.HasPrefix(dsn, "wss://"),
		strings.HasPrefix(dsn, "https://"):
		return KindLibSQL, nil
	case strings.HasPrefix(dsn, "file:"), strings.HasPrefix(dsn, "sqlite:"),
		dsn == ":memory:", strings.HasSuffix(dsn, ".db"), strings.HasSuffix(dsn, ".sqlite"):
		return KindSQLite, nil
	default:
		return "", fmt.Errorf("unsupported database DSN %q", dsn)
	}
}

// SQLiteDatabase реализует Database для SQLite и libSQL
type SQLiteDatabase struct {
	sqlDB *sql.DB
}

// OpenSQLite открывает SQLite или libSQL базу и включает внешние ключи
func OpenSQLite(ctx context.Context, dsn string) (*SQLiteDatabase, error) {
	kind, err := DetectKind(dsn)
	if err != nil {
		return nil, err
	}

	driverName := "sqlite"
	if kind == KindLibSQL {
		driverName = "libsql"
	} else {
		dsn = strings.TrimPrefix(dsn, "sqlite:")
	}

	sqlDB, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driverName, err)
	}
	if kind == KindSQLite {
		// in-memory база живет в рамках одного соединения
		sqlDB.SetMaxOpenConns(1)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := sqlDB.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &SQLiteDatabase{sqlDB: sqlDB}, nil
}

func (d *SQLiteDatabase) Ping(ctx context.Context) error {
	return d.sqlDB.PingContext(ctx)
}

func (d *SQLiteDatabase) Close() {
	d.sqlDB.Close()
}

func (d *SQLiteDatabase) DB() *sql.DB {
	return d.sqlDB
}
