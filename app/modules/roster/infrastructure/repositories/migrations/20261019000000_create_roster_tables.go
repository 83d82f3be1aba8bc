package rostermigrations

import (
	"context"
	"fmt"

	rosterdb "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/roster/infrastructure/repositories"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating roster tables...")

		if _, err := db.NewCreateTable().
			Model((*rosterdb.Team)(nil)).
			IfNotExists().
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to create teams table: %w", err)
		}

		if _, err := db.NewCreateTable().
			Model((*rosterdb.Member)(nil)).
			IfNotExists().
			ForeignKey(`("team_id") REFERENCES "teams" ("id") ON DELETE CASCADE`).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to create members table: %w", err)
		}

		if _, err := db.NewCreateTable().
			Model((*rosterdb.Coach)(nil)).
			IfNotExists().
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to create coaches table: %w", err)
		}

		indexes := []string{
			"CREATE INDEX IF NOT EXISTS idx_members_team_id ON members (team_id)",
			"CREATE INDEX IF NOT EXISTS idx_teams_coach_name ON teams (coach_name)",
		}
		for _, stmt := range indexes {
			if _, err := db.NewRaw(stmt).Exec(ctx); err != nil {
				return fmt.Errorf("failed to create roster index: %w", err)
			}
		}

		fmt.Println("Roster tables created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping roster tables...")
		for _, model := range []any{(*rosterdb.Member)(nil), (*rosterdb.Coach)(nil), (*rosterdb.Team)(nil)} {
			if _, err := db.NewDropTable().Model(model).IfExists().Exec(ctx); err != nil {
				return err
			}
		}
		return nil
	})
}
