package scoringservice

import (
	"context"
	"database/sql"
	"log/slog"

	scoringdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/scoring/domain"
	scoringdb "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/scoring/infrastructure/repositories"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/observability/metrics"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/operation"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// ScoringService implements Service.
type ScoringService struct {
	repo      scoringdb.Repository
	logger    *slog.Logger
	telemetry operation.Telemetry
	palette   ChartPalette
	db        *bun.DB
	txOptions *sql.TxOptions
}

// NewScoringService creates a new ScoringService. txOptions configures the
// transaction each snapshot is read in; nil uses the driver default.
func NewScoringService(
	repo scoringdb.Repository,
	logger *slog.Logger,
	metrics metrics.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
	txOptions *sql.TxOptions,
) *ScoringService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScoringService{
		repo:   repo,
		logger: logger,
		telemetry: operation.Telemetry{
			Service: "ScoringService",
			Logger:  logger,
			Metrics: metrics,
			Tracer:  tracer,
		},
		palette:   DefaultPalette,
		db:        db,
		txOptions: txOptions,
	}
}

// snapshot reads every scoring input in a single transaction.
func (s *ScoringService) snapshot(ctx context.Context) (scoringdomain.Snapshot, error) {
	if s.db == nil {
		return s.repo.LoadSnapshot(ctx, nil)
	}

	var snap scoringdomain.Snapshot
	err := s.db.RunInTx(ctx, s.txOptions, func(ctx context.Context, tx bun.Tx) error {
		var err error
		snap, err = s.repo.LoadSnapshot(ctx, tx)
		return err
	})
	return snap, err
}

var _ Service = (*ScoringService)(nil)
