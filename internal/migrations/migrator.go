package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed schema/postgres/*.sql schema/sqlite/*.sql
var migrationFiles embed.FS

// Dialect диалект SQL, для которого применяются миграции
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// Migrator управляет миграциями базы данных
type Migrator struct {
	db      *sql.DB
	dialect Dialect
	logger  *zap.Logger
}

// NewMigrator создает новый экземпляр migrator
func NewMigrator(db *sql.DB, dialect Dialect, logger *zap.Logger) *Migrator {
	return &Migrator{
		db:      db,
		dialect: dialect,
		logger:  logger,
	}
}

// RunUp применяет все миграции вверх
func (m *Migrator) RunUp() error {
	m.logger.Info("Starting database migrations", zap.String("dialect", string(m.dialect)))

	migrateInstance, err := m.newInstance()
	if err != nil {
		return err
	}
	defer m.release(migrateInstance)

	err = migrateInstance.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		m.logger.Info("No migrations to apply")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	m.logger.Info("Migrations applied successfully")
	return nil
}

// GetVersion возвращает текущую версию миграций
func (m *Migrator) GetVersion() (uint, bool, error) {
	migrateInstance, err := m.newInstance()
	if err != nil {
		return 0, false, err
	}
	defer m.release(migrateInstance)

	return migrateInstance.Version()
}

func (m *Migrator) newInstance() (*migrate.Migrate, error) {
	source, err := iofs.New(migrationFiles, "schema/"+string(m.dialect))
	if err != nil {
		return nil, fmt.Errorf("failed to create migration source: %w", err)
	}

	var driver database.Driver
	switch m.dialect {
	case DialectPostgres:
		driver, err = postgres.WithInstance(m.db, &postgres.Config{})
	case DialectSQLite:
		driver, err = sqlite.WithInstance(m.db, &sqlite.Config{})
	default:
		return nil, fmt.Errorf("unsupported migration dialect %q", m.dialect)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s driver: %w", m.dialect, err)
	}

	migrateInstance, err := migrate.NewWithInstance("iofs", source, string(m.dialect), driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	return migrateInstance, nil
}

// release закрывает экземпляр migrate. Драйвер sqlite при закрытии закрывает
// переданный *sql.DB, который в этом случае используется и хранилищем.
func (m *Migrator) release(migrateInstance *migrate.Migrate) {
	if m.dialect == DialectSQLite {
		return
	}
	if srcErr, dbErr := migrateInstance.Close(); srcErr != nil || dbErr != nil {
		m.logger.Warn("Failed to close migrate instance",
			zap.NamedError("source_error", srcErr),
			zap.NamedError("database_error", dbErr),
		)
	}
}
