// Package containers starts the throwaway infrastructure integration tests run against.
package containers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresOptions configures the scoreboard database container.
type PostgresOptions struct {
	Image    string
	Database string
	User     string
	Password string
	Startup  time.Duration
}

// PostgresOption overrides one field of the defaults.
type PostgresOption func(*PostgresOptions)

// WithImage pins the Postgres image, e.g. to match production.
func WithImage(image string) PostgresOption {
	return func(o *PostgresOptions) { o.Image = image }
}

// WithStartupTimeout bounds how long to wait for the server to accept queries.
func WithStartupTimeout(d time.Duration) PostgresOption {
	return func(o *PostgresOptions) { o.Startup = d }
}

func defaultPostgresOptions() PostgresOptions {
	return PostgresOptions{
		Image:    "postgres:16-alpine",
		Database: "scoreboard",
		User:     "scoreboard",
		Password: "scoreboard",
		Startup:  45 * time.Second,
	}
}

// dsn builds a pgx connection URL. TLS is off: pgdriver negotiates it
// otherwise and the container serves plain TCP.
func (o PostgresOptions) dsn(host, port string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(o.User, o.Password),
		Host:     net.JoinHostPort(host, port),
		Path:     "/" + o.Database,
		RawQuery: url.Values{"sslmode": {"disable"}}.Encode(),
	}
	return u.String()
}

// PostgresInstance is a running scoreboard database.
type PostgresInstance struct {
	Container *postgres.PostgresContainer
	DSN       string
}

// Terminate stops and removes the container.
func (p *PostgresInstance) Terminate(ctx context.Context) error {
	if p == nil || p.Container == nil {
		return nil
	}
	return p.Container.Terminate(ctx)
}

// StartPostgres runs a Postgres container and blocks until it answers a
// query over pgx. On failure nothing is left running.
func StartPostgres(ctx context.Context, opts ...PostgresOption) (*PostgresInstance, error) {
	o := defaultPostgresOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ready := wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
		return o.dsn(host, port.Port())
	}).WithStartupTimeout(o.Startup)

	container, err := postgres.Run(ctx, o.Image,
		postgres.WithDatabase(o.Database),
		postgres.WithUsername(o.User),
		postgres.WithPassword(o.Password),
		testcontainers.WithWaitStrategy(ready),
	)
	if err != nil {
		if container != nil {
			err = errors.Join(err, container.Terminate(ctx))
		}
		return nil, fmt.Errorf("start postgres %s: %w", o.Image, err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("postgres host: %w", err), container.Terminate(ctx))
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return nil, errors.Join(fmt.Errorf("postgres port: %w", err), container.Terminate(ctx))
	}

	inst := &PostgresInstance{Container: container, DSN: o.dsn(host, port.Port())}
	slog.InfoContext(ctx, "Postgres container ready", slog.String("image", o.Image), slog.String("host", host), slog.String("port", port.Port()))
	return inst, nil
}
