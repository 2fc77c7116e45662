// Package testsupport holds helpers shared by integration tests.
package testsupport

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// NewSQLiteMemoryDB opens a shared in-memory sqlite handle. Callers should cap
// the pool at one connection so every statement sees the same database.
func NewSQLiteMemoryDB() (*sql.DB, error) {
	return sql.Open("sqlite3", "file::memory:?cache=shared")
}
