package postgres

import "embed"

// Migrations holds the embedded goose migration scripts. The server
// applies them at startup when the database is reachable.
//
//go:embed migrations/*.sql
var Migrations embed.FS
