package bonusmigrations

import (
	"context"
	"fmt"

	bonusdb "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/bonus/infrastructure/repositories"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating bonus_points table...")

		if _, err := db.NewCreateTable().
			Model((*bonusdb.BonusPoint)(nil)).
			IfNotExists().
			ForeignKey(`("team_id") REFERENCES "teams" ("id")`).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to create bonus_points table: %w", err)
		}

		if _, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_bonus_points_team_id ON bonus_points (team_id)").Exec(ctx); err != nil {
			return fmt.Errorf("failed to create bonus_points index: %w", err)
		}

		fmt.Println("bonus_points table created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping bonus_points table...")
		_, err := db.NewDropTable().Model((*bonusdb.BonusPoint)(nil)).IfExists().Exec(ctx)
		return err
	})
}
