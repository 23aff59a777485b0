package testutil

import (
	"database/sql"
	"testing"

	"github.com/sixworlds/exosky/internal/db"
)

// workspaceTables are the tables every migrated workspace must have.
var workspaceTables = []string{"planets", "stars", "imports"}

// NewTestDB opens an in-memory workspace, checks the planet, star and import
// tables were migrated, and closes it when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test workspace: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})

	for _, table := range workspaceTables {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("workspace table %q missing after migrate: %v", table, err)
		}
	}
	return database
}

// NewTestUoW wraps a test workspace in a UnitOfWork for service tests.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
