// Package app assembles the modules into the HTTP service.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/audit"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/bonus"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/event"
	eventservice "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/event/application"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/roster"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/scoring"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/clock"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/observability"
	"github.com/Black-And-White-Club/cirqit-scoreboard/config"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// App holds the modules and shared infrastructure of the scoreboard.
type App struct {
	Config        *config.Config
	Observability observability.Observability
	DB            *bun.DB

	Audit   *audit.Module
	Auth    *auth.Module
	Roster  *roster.Module
	Event   *event.Module
	Bonus   *bonus.Module
	Scoring *scoring.Module
}

// NewApp connects to Postgres and builds every module.
func NewApp(ctx context.Context, cfg *config.Config, obs observability.Observability) (*App, error) {
	db, err := OpenPostgres(cfg.Postgres.DSN)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to reach postgres: %w", err)
	}

	return New(ctx, cfg, obs, db, clock.RealClock{})
}

// OpenPostgres opens a bun handle over pgdriver.
func OpenPostgres(dsn string) (*bun.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres dsn is empty")
	}
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	return bun.NewDB(sqldb, pgdialect.New()), nil
}

// New builds the modules on an open database. Audit comes first because
// every write records through it; the roster repository backs event
// attendance and bonus team lookups.
func New(ctx context.Context, cfg *config.Config, obs observability.Observability, db *bun.DB, clk clock.Clock) (*App, error) {
	loc, err := time.LoadLocation(cfg.Events.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid events timezone %q: %w", cfg.Events.Timezone, err)
	}

	auditModule := audit.NewAuditModule(ctx, obs, db, clk)
	rosterModule := roster.NewRosterModule(ctx, obs, db, auditModule.Service, clk)
	eventModule := event.NewEventModule(ctx, obs, db, rosterModule.Repo, auditModule.Service, clk, event.Config{
		Defaults: eventservice.Defaults{
			MemberPoints: cfg.Events.DefaultMemberPoints,
			CoachPoints:  cfg.Events.DefaultCoachPoints,
		},
		Location: loc,
	})
	bonusModule := bonus.NewBonusModule(ctx, obs, db, rosterModule.Repo, auditModule.Service, clk)
	scoringModule := scoring.NewScoringModule(ctx, obs, db)
	authModule := auth.NewAuthModule(ctx, cfg.Auth, obs)

	obs.Provider.Logger.InfoContext(ctx, "Modules initialized")

	return &App{
		Config:        cfg,
		Observability: obs,
		DB:            db,
		Audit:         auditModule,
		Auth:          authModule,
		Roster:        rosterModule,
		Event:         eventModule,
		Bonus:         bonusModule,
		Scoring:       scoringModule,
	}, nil
}

// Close releases the database handle.
func (a *App) Close() error {
	if a.DB == nil {
		return nil
	}
	return a.DB.Close()
}
