package auditmigrations

import (
	"context"
	"fmt"

	auditdb "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/audit/infrastructure/repositories"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating audit_log table...")
		if _, err := db.NewCreateTable().
			Model((*auditdb.Entry)(nil)).
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_audit_log_created_at ON audit_log (created_at)").Exec(ctx); err != nil {
			return err
		}
		fmt.Println("audit_log table created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping audit_log table...")
		_, err := db.NewDropTable().Model((*auditdb.Entry)(nil)).IfExists().Exec(ctx)
		return err
	})
}
