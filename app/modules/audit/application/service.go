package auditservice

import (
	"context"
	"fmt"
	"log/slog"

	auditdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/audit/domain"
	auditdb "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/audit/infrastructure/repositories"
	authdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/domain"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/clock"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/observability/metrics"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/operation"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/results"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// AuditService implements Service.
type AuditService struct {
	repo      auditdb.Repository
	telemetry operation.Telemetry
	clock     clock.Clock
	db        *bun.DB
}

// NewAuditService creates a new AuditService.
func NewAuditService(
	repo auditdb.Repository,
	logger *slog.Logger,
	metrics metrics.OperationMetrics,
	tracer trace.Tracer,
	clk clock.Clock,
	db *bun.DB,
) *AuditService {
	if logger == nil {
		logger = slog.Default()
	}
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &AuditService{
		repo: repo,
		telemetry: operation.Telemetry{
			Service: "AuditService",
			Logger:  logger,
			Metrics: metrics,
			Tracer:  tracer,
		},
		clock: clk,
		db:    db,
	}
}

// Record appends an entry using db, which is normally the caller's transaction.
// It is not wrapped in telemetry: it runs inside another operation's span.
func (s *AuditService) Record(ctx context.Context, db bun.IDB, entry auditdomain.Entry) error {
	if entry.Action == "" || entry.Entity == "" || entry.Actor == "" {
		return ErrInvalidEntry
	}
	row := &auditdb.Entry{
		UUID:      uuid.New(),
		Action:    entry.Action,
		Entity:    entry.Entity,
		EntityID:  entry.EntityID,
		Actor:     entry.Actor,
		Details:   entry.Details,
		CreatedAt: s.clock.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, db, row); err != nil {
		return fmt.Errorf("failed to record %s: %w", entry.Action, err)
	}
	return nil
}

// List returns the newest audit entries.
func (s *AuditService) List(ctx context.Context, grant authdomain.Grant, limit int) ([]auditdomain.Record, error) {
	if err := grant.Require(authdomain.RoleAdmin); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	result, err := operation.WithTelemetry(ctx, s.telemetry, "ListAudit", grant.Subject,
		func(ctx context.Context) (results.OperationResult[[]auditdomain.Record, error], error) {
			rows, err := s.repo.List(ctx, nil, limit)
			if err != nil {
				return results.OperationResult[[]auditdomain.Record, error]{}, err
			}
			out := make([]auditdomain.Record, 0, len(rows))
			for _, row := range rows {
				out = append(out, toRecord(row))
			}
			return results.SuccessResult[[]auditdomain.Record, error](out), nil
		})
	return operation.Unwrap(result, err)
}

func toRecord(row *auditdb.Entry) auditdomain.Record {
	return auditdomain.Record{
		UUID:      row.UUID,
		Action:    row.Action,
		Entity:    row.Entity,
		EntityID:  row.EntityID,
		Actor:     row.Actor,
		Details:   row.Details,
		CreatedAt: row.CreatedAt,
	}
}

var _ Service = (*AuditService)(nil)
