package db

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

var pragmas = []struct {
	name  string
	value string
	desc  string
}{
	{"journal_mode", "WAL", "setting WAL mode"},
	{"foreign_keys", "ON", "enabling foreign keys"},
	{"busy_timeout", "5000", "setting busy timeout"},
}

// dsn passes the pragmas as connection parameters so that every pooled
// connection gets them, not only the first.
func dsn(path string) string {
	if path == MemoryPath {
		return path
	}
	params := make([]string, len(pragmas))
	for i, p := range pragmas {
		params[i] = "_pragma=" + url.QueryEscape(fmt.Sprintf("%s(%s)", p.name, p.value))
	}
	return "file:" + path + "?" + strings.Join(params, "&")
}

// OpenDB opens the conversation store at path, creating its directory if
// needed, and runs migrations. An in-memory database is pinned to a single
// connection so every query sees the same data.
func OpenDB(path string) (*sql.DB, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if path == MemoryPath {
		db.SetMaxOpenConns(1)
	}

	for _, p := range pragmas {
		if _, err := db.Exec(fmt.Sprintf("PRAGMA %s = %s", p.name, p.value)); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", p.desc, err)
		}
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}
