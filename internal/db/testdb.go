package db

import (
	"database/sql"
	"testing"
)

// NewTestDB creates a migrated in-memory database for tests. Open pins
// it to one connection, so the schema survives the connection pool.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrating test database: %v", err)
	}

	t.Cleanup(func() { db.Close() })

	return db
}
