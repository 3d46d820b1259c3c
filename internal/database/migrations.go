package database

import (
	"context"
	"database/sql"
	"fmt"
)

// migrations are applied in order; user_version records how many ran
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS exports (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		project_id INTEGER NOT NULL,
		format TEXT NOT NULL,
		aggregate_hours INTEGER NOT NULL,
		file_name TEXT NOT NULL,
		path TEXT NOT NULL,
		bytes INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_exports_project
		ON exports(project_id, created_at)`,
	`ALTER TABLE exports ADD COLUMN exported_by TEXT NOT NULL DEFAULT ''`,
}

// runMigrations brings the schema up to date
func runMigrations(ctx context.Context, db *sql.DB) error {
	var version int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for i := version; i < len(migrations); i++ {
		if _, err := db.ExecContext(ctx, migrations[i]); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
		// PRAGMA does not accept bound parameters
		if _, err := db.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", i+1)); err != nil {
			return fmt.Errorf("failed to record schema version %d: %w", i+1, err)
		}
	}

	return nil
}
