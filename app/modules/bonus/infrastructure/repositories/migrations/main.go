package bonusmigrations

import "github.com/uptrace/bun/migrate"

// Migrations holds the bonus module's registered migrations.
var Migrations = migrate.NewMigrations()
