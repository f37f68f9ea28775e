package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/triage/internal/catalog"
	"github.com/alexanderramin/triage/internal/db"
	"github.com/alexanderramin/triage/internal/triage"
)

// NewTestDB creates an in-memory conversation store that is closed when
// the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

// NewTestEngine returns an engine over the built-in catalog, failing the
// test if the catalog is inconsistent.
func NewTestEngine(t *testing.T) *triage.Engine {
	t.Helper()
	c := catalog.Default()
	if errs := catalog.Validate(c); len(errs) > 0 {
		t.Fatalf("built-in catalog is inconsistent: %v", errs)
	}
	return triage.New(c)
}
