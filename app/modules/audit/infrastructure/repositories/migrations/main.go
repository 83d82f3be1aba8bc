package auditmigrations

import "github.com/uptrace/bun/migrate"

// Migrations holds the audit module's registered migrations.
var Migrations = migrate.NewMigrations()
