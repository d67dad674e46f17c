package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent and re-run on
// every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ... ADD COLUMN is not idempotent in SQLite.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS checks (
		id          TEXT PRIMARY KEY,
		priority    INTEGER NOT NULL,
		description TEXT NOT NULL,
		arrival     INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_checks_priority ON checks(priority DESC, arrival)`,

	`CREATE TABLE IF NOT EXISTS submissions (
		id         TEXT PRIMARY KEY,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS submission_results (
		submission_id TEXT NOT NULL REFERENCES submissions(id) ON DELETE CASCADE,
		position      INTEGER NOT NULL,
		check_id      TEXT NOT NULL,
		result        TEXT NOT NULL CHECK(result IN ('yes','no')),
		PRIMARY KEY (submission_id, position)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_submissions_created ON submissions(created_at)`,

	`ALTER TABLE submissions ADD COLUMN origin TEXT NOT NULL DEFAULT ''`,
}
