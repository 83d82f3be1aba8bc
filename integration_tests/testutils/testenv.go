// Package testutils provisions a migrated Postgres database and a fully
// wired App for integration tests.
package testutils

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/uptrace/bun"

	"github.com/Black-And-White-Club/cirqit-scoreboard/app"
	authdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/domain"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/clock"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/observability"
	"github.com/Black-And-White-Club/cirqit-scoreboard/config"
	"github.com/Black-And-White-Club/cirqit-scoreboard/integration_tests/containers"
)

// Tables lists every scoreboard table, children first.
var Tables = []string{"audit_log", "bonus_points", "attendance", "events", "members", "coaches", "teams"}

// TestEnvironment holds all resources needed for integration testing.
type TestEnvironment struct {
	Ctx         context.Context
	Postgres    *containers.PostgresInstance
	DB          *bun.DB
	App         *app.App
	Config      *config.Config
	Clock       clock.Clock
	T           *testing.T
}

// NewTestEnvironment starts Postgres, applies migrations and builds the App.
// Everything is torn down on test cleanup.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	pg, err := containers.StartPostgres(ctx)
	if err != nil {
		t.Fatalf("failed to set up postgres: %v", err)
	}
	connStr := pg.DSN
	t.Cleanup(func() {
		if err := pg.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	db, err := app.OpenPostgres(connStr)
	if err != nil {
		t.Fatalf("failed to open postgres: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := app.Migrate(ctx, db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	cfg := &config.Config{
		Postgres: config.PostgresConfig{DSN: connStr},
		Auth: config.AuthConfig{
			JWTSecret:      "integration-secret-that-is-long-enough",
			Issuer:         "cirqit-scoreboard",
			TokenTTL:       time.Hour,
			LoginRateLimit: 100,
			LoginBurst:     100,
		},
		Events: config.EventsConfig{DefaultMemberPoints: 1, DefaultCoachPoints: 2, Timezone: "Asia/Manila"},
	}
	clk := clock.Fixed(time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC))

	application, err := app.New(ctx, cfg, observability.NewNoop(), db, clk)
	if err != nil {
		t.Fatalf("failed to build app: %v", err)
	}

	return &TestEnvironment{
		Ctx:         ctx,
		Postgres:    pg,
		DB:          db,
		App:         application,
		Config:      cfg,
		Clock:       clk,
		T:           t,
	}
}

// Reset empties every table and restarts identity sequences.
func (env *TestEnvironment) Reset() {
	env.T.Helper()
	for _, table := range Tables {
		if _, err := env.DB.ExecContext(env.Ctx, fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)); err != nil {
			env.T.Fatalf("failed to truncate %s: %v", table, err)
		}
	}
}

// AdminGrant returns a grant that allows every administrative action.
func AdminGrant() authdomain.Grant {
	return authdomain.Grant{Subject: "integration-admin", Role: authdomain.RoleAdmin}
}

// EditorGrant returns a grant limited to editor actions.
func EditorGrant() authdomain.Grant {
	return authdomain.Grant{Subject: "integration-editor", Role: authdomain.RoleEditor}
}
