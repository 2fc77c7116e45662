package di

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/goliatone/go-campaigns/internal/runtimeconfig"
)

// NewBunDB wraps an existing *sql.DB with the dialect matching the configured
// storage driver. Callers owning a postgres pool pass it here with the
// "postgres" driver; everything else is treated as sqlite.
func NewBunDB(sqlDB *sql.DB, driver string) *bun.DB {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "postgres":
		return bun.NewDB(sqlDB, pgdialect.New())
	default:
		return bun.NewDB(sqlDB, sqlitedialect.New())
	}
}

// OpenDatabase opens a database handle from storage configuration. Only the
// sqlite driver is opened directly; postgres callers must supply their own
// *sql.DB through NewBunDB since driver registration is application-specific.
func OpenDatabase(cfg runtimeconfig.StorageConfig) (*bun.DB, error) {
	driver := strings.ToLower(strings.TrimSpace(cfg.Driver))
	switch driver {
	case "sqlite":
		dsn := cfg.DSN
		if strings.TrimSpace(dsn) == "" {
			dsn = "file::memory:?cache=shared"
		}
		sqlDB, err := sql.Open("sqlite3", dsn)
		if err != nil {
			return nil, fmt.Errorf("di: open sqlite database: %w", err)
		}
		return bun.NewDB(sqlDB, sqlitedialect.New()), nil
	default:
		return nil, fmt.Errorf("di: driver %q cannot be opened directly", cfg.Driver)
	}
}
