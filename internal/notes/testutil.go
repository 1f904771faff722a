package notes

import (
	"testing"

	"github.com/ekinoks/slack-assistant-bot/internal/database"
	"github.com/ekinoks/slack-assistant-bot/migrator/sqlite"
	"github.com/stretchr/testify/require"
)

// SetupTestStore creates an in-memory notes store for testing
func SetupTestStore(t *testing.T) *Store {
	t.Helper()

	sqlDB, err := database.Open(":memory:")
	require.NoError(t, err, "Failed to create test database")

	err = sqlite.MigrateNotes(sqlDB)
	require.NoError(t, err, "Failed to run migrations on test database")

	return &Store{conn: sqlDB}
}
