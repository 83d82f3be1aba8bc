package app

import (
	"context"
	"fmt"

	auditmigrations "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/audit/infrastructure/repositories/migrations"
	bonusmigrations "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/bonus/infrastructure/repositories/migrations"
	eventmigrations "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/event/infrastructure/repositories/migrations"
	rostermigrations "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/roster/infrastructure/repositories/migrations"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

// ModuleMigrations names one module's migration set.
type ModuleMigrations struct {
	Name       string
	Migrations *migrate.Migrations
}

// MigrationSets lists every module's migrations in foreign key order.
func MigrationSets() []ModuleMigrations {
	return []ModuleMigrations{
		{Name: "roster", Migrations: rostermigrations.Migrations},
		{Name: "event", Migrations: eventmigrations.Migrations},
		{Name: "bonus", Migrations: bonusmigrations.Migrations},
		{Name: "audit", Migrations: auditmigrations.Migrations},
	}
}

// Migrate creates the migration tables and applies every pending migration.
func Migrate(ctx context.Context, db *bun.DB) error {
	sets := MigrationSets()
	if err := migrate.NewMigrator(db, sets[0].Migrations).Init(ctx); err != nil {
		return fmt.Errorf("failed to initialize migration tables: %w", err)
	}
	for _, set := range sets {
		if _, err := migrate.NewMigrator(db, set.Migrations).Migrate(ctx); err != nil {
			return fmt.Errorf("failed to run %s migrations: %w", set.Name, err)
		}
	}
	return nil
}
