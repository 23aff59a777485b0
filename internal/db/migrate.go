package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies every schema statement. Statements are idempotent so the
// whole list runs on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS planets (
		name        TEXT PRIMARY KEY,
		ra          REAL NOT NULL,
		dec         REAL NOT NULL,
		dist        REAL NOT NULL CHECK(dist > 0),
		x_earth     REAL NOT NULL,
		y_earth     REAL NOT NULL,
		z_earth     REAL NOT NULL,
		imported_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS stars (
		id          TEXT PRIMARY KEY,
		ra          REAL NOT NULL,
		dec         REAL NOT NULL,
		dist        REAL NOT NULL CHECK(dist > 0),
		mag         REAL NOT NULL,
		x_earth     REAL NOT NULL,
		y_earth     REAL NOT NULL,
		z_earth     REAL NOT NULL,
		imported_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_stars_mag ON stars(mag)`,

	`CREATE TABLE IF NOT EXISTS imports (
		id         TEXT PRIMARY KEY,
		kind       TEXT NOT NULL CHECK(kind IN ('planets','stars')),
		source     TEXT NOT NULL,
		row_count  INTEGER NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_imports_created ON imports(created_at)`,
}
