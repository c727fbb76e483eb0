package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/avc-dev/shortlinks/internal/config/db"
	"github.com/avc-dev/shortlinks/internal/migrations"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// setupSQLiteStore создает отдельную in-memory базу для каждого теста
func setupSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()

	database, err := db.OpenSQLite(context.Background(), fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	t.Cleanup(database.Close)

	migrator := migrations.NewMigrator(database.DB(), migrations.DialectSQLite, zap.NewNop())
	require.NoError(t, migrator.RunUp())

	return NewSQLiteStore(database.DB())
}

func TestSQLiteStore_Contract(t *testing.T) {
	runStoreContract(t, func(t *testing.T) contractStore {
		return setupSQLiteStore(t)
	})
}
