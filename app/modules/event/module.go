package event

import (
	"context"
	"time"

	auditservice "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/audit/application"
	eventservice "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/event/application"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/event/application/parsers"
	eventhandlers "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/event/infrastructure/handlers"
	eventdb "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/event/infrastructure/repositories"
	eventrouter "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/event/infrastructure/router"
	eventtime "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/event/time_utils"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/clock"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Config carries the event settings from the app config.
type Config struct {
	Defaults eventservice.Defaults
	Location *time.Location
}

// Module represents the event module.
type Module struct {
	Repo     eventdb.Repository
	Service  eventservice.Service
	handlers eventhandlers.Handlers
}

// NewEventModule creates and initializes a new event module.
func NewEventModule(
	ctx context.Context,
	obs observability.Observability,
	db *bun.DB,
	roster eventservice.RosterReader,
	audit auditservice.Recorder,
	clk clock.Clock,
	cfg Config,
) *Module {
	logger := obs.Provider.Logger
	tracer := obs.Registry.Tracer

	logger.InfoContext(ctx, "event.NewEventModule initializing")

	repo := eventdb.NewRepository(db)
	service := eventservice.NewEventService(eventservice.Deps{
		Repo:     repo,
		Roster:   roster,
		Audit:    audit,
		Parsers:  parsers.NewFactory(),
		Dates:    eventtime.NewTimeParser(cfg.Location),
		Defaults: cfg.Defaults,
		Clock:    clk,
		DB:       db,
	}, logger, obs.OperationMetrics("event"), tracer)

	return &Module{
		Repo:     repo,
		Service:  service,
		handlers: eventhandlers.NewEventHandlers(service, logger, tracer),
	}
}

// Mount registers the public routes.
func (m *Module) Mount(api chi.Router) {
	eventrouter.Configure(api, m.handlers)
}

// MountAdmin registers the admin routes.
func (m *Module) MountAdmin(admin chi.Router) {
	eventrouter.ConfigureAdmin(admin, m.handlers)
}
