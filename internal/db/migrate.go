package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS lists (
		id           TEXT PRIMARY KEY,
		kind         TEXT NOT NULL
		             CHECK(kind IN ('checklist','resources','steps','schedule','timeline')),
		title        TEXT NOT NULL,
		end_time_min INTEGER,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS items (
		id         TEXT PRIMARY KEY,
		list_id    TEXT NOT NULL REFERENCES lists(id) ON DELETE CASCADE,
		position   INTEGER NOT NULL,
		text       TEXT NOT NULL,
		done       INTEGER NOT NULL DEFAULT 0,
		time_min   INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_items_list_position ON items(list_id, position)`,
}
