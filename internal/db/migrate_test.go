package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_AppliesSchema(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{"lists", "items"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		require.NoError(t, err, "table %s must exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_Rerunnable(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// Migrations run once in OpenDB; a second pass must be harmless.
	require.NoError(t, Migrate(database))
}

func TestOpenDB_EnforcesForeignKeys(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(
		`INSERT INTO items (id, list_id, position, text, done, time_min, created_at, updated_at)
		 VALUES ('i1', 'no-such-list', 0, 'orphan', 0, 0, '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`,
	)
	assert.Error(t, err, "items must require an existing list")
}
