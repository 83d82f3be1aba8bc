package auditservice

import (
	"context"

	auditdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/audit/domain"
	authdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/domain"
	"github.com/uptrace/bun"
)

// Recorder appends audit entries inside a caller's transaction.
type Recorder interface {
	Record(ctx context.Context, db bun.IDB, entry auditdomain.Entry) error
}

// Service is the audit module's public surface.
type Service interface {
	Recorder

	// List returns the newest entries. Admin only.
	List(ctx context.Context, grant authdomain.Grant, limit int) ([]auditdomain.Record, error)
}
