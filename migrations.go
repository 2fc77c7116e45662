package campaigns

import "embed"

//go:embed data/sql/migrations/*.sql
var migrationsFS embed.FS

// GetMigrationsFS exposes the embedded SQL migrations so host applications can
// run them with their migration tool of choice.
func GetMigrationsFS() embed.FS {
	return migrationsFS
}
