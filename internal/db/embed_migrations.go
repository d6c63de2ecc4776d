package db

import "embed"

// MigrationFS embeds the Postgres migrations that create the catalog slot table.
// Used by internal/db/migrate (cmd/migrate and STORE_AUTO_MIGRATE).
//
//go:embed migrations/*.sql
var MigrationFS embed.FS
