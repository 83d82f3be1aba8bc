package bonus

import (
	"context"

	auditservice "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/audit/application"
	bonusservice "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/bonus/application"
	bonushandlers "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/bonus/infrastructure/handlers"
	bonusdb "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/bonus/infrastructure/repositories"
	bonusrouter "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/bonus/infrastructure/router"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/clock"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the bonus module.
type Module struct {
	Repo     bonusdb.Repository
	Service  bonusservice.Service
	handlers bonushandlers.Handlers
}

// NewBonusModule creates and initializes a new bonus module.
func NewBonusModule(
	ctx context.Context,
	obs observability.Observability,
	db *bun.DB,
	teams bonusservice.TeamReader,
	audit auditservice.Recorder,
	clk clock.Clock,
) *Module {
	logger := obs.Provider.Logger
	tracer := obs.Registry.Tracer

	logger.InfoContext(ctx, "bonus.NewBonusModule initializing")

	repo := bonusdb.NewRepository(db)
	service := bonusservice.NewBonusService(repo, teams, audit, logger, obs.OperationMetrics("bonus"), tracer, clk, db)

	return &Module{
		Repo:     repo,
		Service:  service,
		handlers: bonushandlers.NewBonusHandlers(service, logger, tracer),
	}
}

// Mount registers the public routes.
func (m *Module) Mount(api chi.Router) {
	bonusrouter.Configure(api, m.handlers)
}

// MountAdmin registers the admin routes.
func (m *Module) MountAdmin(admin chi.Router) {
	bonusrouter.ConfigureAdmin(admin, m.handlers)
}
