package roster

import (
	"context"

	auditservice "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/audit/application"
	rosterservice "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/roster/application"
	rosterhandlers "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/roster/infrastructure/handlers"
	rosterdb "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/roster/infrastructure/repositories"
	rosterrouter "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/roster/infrastructure/router"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/clock"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the roster module.
type Module struct {
	Repo     rosterdb.Repository
	Service  rosterservice.Service
	handlers rosterhandlers.Handlers
}

// NewRosterModule creates and initializes a new roster module.
func NewRosterModule(
	ctx context.Context,
	obs observability.Observability,
	db *bun.DB,
	audit auditservice.Recorder,
	clk clock.Clock,
) *Module {
	logger := obs.Provider.Logger
	tracer := obs.Registry.Tracer

	logger.InfoContext(ctx, "roster.NewRosterModule initializing")

	repo := rosterdb.NewRepository(db)
	service := rosterservice.NewRosterService(repo, audit, logger, obs.OperationMetrics("roster"), tracer, clk, db)

	return &Module{
		Repo:     repo,
		Service:  service,
		handlers: rosterhandlers.NewRosterHandlers(service, logger, tracer),
	}
}

// Mount registers the public routes.
func (m *Module) Mount(api chi.Router) {
	rosterrouter.Configure(api, m.handlers)
}

// MountAdmin registers the admin routes.
func (m *Module) MountAdmin(admin chi.Router) {
	rosterrouter.ConfigureAdmin(admin, m.handlers)
}
