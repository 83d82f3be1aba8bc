package scoring

import (
	"context"
	"database/sql"

	scoringservice "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/scoring/application"
	scoringhandlers "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/scoring/infrastructure/handlers"
	scoringdb "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/scoring/infrastructure/repositories"
	scoringrouter "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/scoring/infrastructure/router"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
)

// Module represents the scoring module.
type Module struct {
	Repo     scoringdb.Repository
	Service  scoringservice.Service
	handlers scoringhandlers.Handlers
}

// NewScoringModule creates and initializes a new scoring module.
func NewScoringModule(
	ctx context.Context,
	obs observability.Observability,
	db *bun.DB,
) *Module {
	logger := obs.Provider.Logger
	tracer := obs.Registry.Tracer

	logger.InfoContext(ctx, "scoring.NewScoringModule initializing")

	// Postgres reads the six tables from one consistent snapshot.
	var txOptions *sql.TxOptions
	if db != nil && db.Dialect().Name() == dialect.PG {
		txOptions = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
	}

	repo := scoringdb.NewRepository(db)
	service := scoringservice.NewScoringService(repo, logger, obs.OperationMetrics("scoring"), tracer, db, txOptions)

	return &Module{
		Repo:     repo,
		Service:  service,
		handlers: scoringhandlers.NewScoringHandlers(service, logger, tracer),
	}
}

// Mount registers the public routes.
func (m *Module) Mount(api chi.Router) {
	scoringrouter.Configure(api, m.handlers)
}

// MountAdmin registers the admin routes.
func (m *Module) MountAdmin(admin chi.Router) {
	scoringrouter.ConfigureAdmin(admin, m.handlers)
}
