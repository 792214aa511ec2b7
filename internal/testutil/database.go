// Package testutil provides throwaway fixtures for package tests.
package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"newel/internal/database"
)

// AcquireDB opens a fresh sqlite database under t.TempDir with the full
// schema applied.
func AcquireDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "newel_test.db")
	db, err := database.Open("sqlite3", dsn)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(db, "sqlite3"); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}
