package eventmigrations

import "github.com/uptrace/bun/migrate"

// Migrations holds the event module's registered migrations.
var Migrations = migrate.NewMigrations()
