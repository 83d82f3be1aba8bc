package audit

import (
	"context"

	auditservice "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/audit/application"
	audithandlers "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/audit/infrastructure/handlers"
	auditdb "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/audit/infrastructure/repositories"
	auditrouter "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/audit/infrastructure/router"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/clock"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the audit module.
type Module struct {
	Service  *auditservice.AuditService
	handlers audithandlers.Handlers
}

// NewAuditModule creates and initializes a new audit module.
func NewAuditModule(ctx context.Context, obs observability.Observability, db *bun.DB, clk clock.Clock) *Module {
	logger := obs.Provider.Logger
	tracer := obs.Registry.Tracer

	logger.InfoContext(ctx, "audit.NewAuditModule initializing")

	repo := auditdb.NewRepository(db)
	service := auditservice.NewAuditService(repo, logger, obs.OperationMetrics("audit"), tracer, clk, db)

	return &Module{
		Service:  service,
		handlers: audithandlers.NewAuditHandlers(service, logger, tracer),
	}
}

// MountAdmin registers the admin routes.
func (m *Module) MountAdmin(admin chi.Router) {
	auditrouter.Configure(admin, m.handlers)
}
