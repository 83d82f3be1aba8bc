package eventmigrations

import (
	"context"
	"fmt"

	eventdb "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/event/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// The attendance table references members, so the roster migrations run first.
func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating event tables...")

		if _, err := db.NewCreateTable().
			Model((*eventdb.Event)(nil)).
			IfNotExists().
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to create events table: %w", err)
		}

		if _, err := db.NewCreateTable().
			Model((*eventdb.Attendance)(nil)).
			IfNotExists().
			ForeignKey(`("event_id") REFERENCES "events" ("id") ON DELETE CASCADE`).
			ForeignKey(`("member_id") REFERENCES "members" ("id") ON DELETE CASCADE`).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to create attendance table: %w", err)
		}

		// NULLs never collide in a unique index, so member rows and coach
		// rows each get their own one-row-per-event guarantee.
		indexes := []string{
			"CREATE UNIQUE INDEX IF NOT EXISTS uniq_attendance_event_member ON attendance (event_id, member_id)",
			"CREATE UNIQUE INDEX IF NOT EXISTS uniq_attendance_event_coach ON attendance (event_id, coach_name)",
			"CREATE INDEX IF NOT EXISTS idx_attendance_member_id ON attendance (member_id)",
			"CREATE INDEX IF NOT EXISTS idx_attendance_coach_name ON attendance (coach_name)",
			"CREATE INDEX IF NOT EXISTS idx_events_event_date ON events (event_date)",
		}
		for _, stmt := range indexes {
			if _, err := db.NewRaw(stmt).Exec(ctx); err != nil {
				return fmt.Errorf("failed to create event index: %w", err)
			}
		}

		fmt.Println("Event tables created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping event tables...")
		for _, model := range []any{(*eventdb.Attendance)(nil), (*eventdb.Event)(nil)} {
			if _, err := db.NewDropTable().Model(model).IfExists().Exec(ctx); err != nil {
				return err
			}
		}
		return nil
	})
}
