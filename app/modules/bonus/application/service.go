package bonusservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	auditservice "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/audit/application"
	auditdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/audit/domain"
	authdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/domain"
	bonusdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/bonus/domain"
	bonusdb "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/bonus/infrastructure/repositories"
	rosterdb "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/roster/infrastructure/repositories"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/clock"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/observability/attr"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/observability/metrics"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/operation"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/results"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

type (
	awardResult  = results.OperationResult[bonusdomain.Award, error]
	awardsResult = results.OperationResult[[]bonusdomain.Award, error]
)

// BonusService implements Service.
type BonusService struct {
	repo      bonusdb.Repository
	teams     TeamReader
	audit     auditservice.Recorder
	logger    *slog.Logger
	telemetry operation.Telemetry
	clock     clock.Clock
	db        *bun.DB
}

// NewBonusService creates a new BonusService.
func NewBonusService(
	repo bonusdb.Repository,
	teams TeamReader,
	audit auditservice.Recorder,
	logger *slog.Logger,
	metrics metrics.OperationMetrics,
	tracer trace.Tracer,
	clk clock.Clock,
	db *bun.DB,
) *BonusService {
	if logger == nil {
		logger = slog.Default()
	}
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &BonusService{
		repo:   repo,
		teams:  teams,
		audit:  audit,
		logger: logger,
		telemetry: operation.Telemetry{
			Service: "BonusService",
			Logger:  logger,
			Metrics: metrics,
			Tracer:  tracer,
		},
		clock: clk,
		db:    db,
	}
}

// AwardBonus appends an award. Repeated identical awards are separate rows.
func (s *BonusService) AwardBonus(ctx context.Context, grant authdomain.Grant, input AwardInput) (bonusdomain.Award, error) {
	input.TeamName = strings.TrimSpace(input.TeamName)
	input.Reason = strings.TrimSpace(input.Reason)

	result, err := operation.WithTelemetry(ctx, s.telemetry, "AwardBonus", input.TeamName,
		func(ctx context.Context) (awardResult, error) {
			if err := grant.Require(authdomain.RoleAdmin); err != nil {
				return results.FailureResult[bonusdomain.Award](err), nil
			}
			if input.Points == 0 {
				return results.FailureResult[bonusdomain.Award](ErrZeroPoints), nil
			}
			if input.Reason == "" {
				return results.FailureResult[bonusdomain.Award](ErrEmptyReason), nil
			}

			return operation.RunInTx(ctx, s.db, nil, func(ctx context.Context, db bun.IDB) (awardResult, error) {
				team, err := s.teams.GetTeamByName(ctx, db, input.TeamName)
				if err != nil {
					if errors.Is(err, rosterdb.ErrNotFound) {
						return results.FailureResult[bonusdomain.Award](fmt.Errorf("%w: %q", ErrTeamNotFound, input.TeamName)), nil
					}
					return awardResult{}, fmt.Errorf("failed to get team: %w", err)
				}

				row := &bonusdb.BonusPoint{
					TeamID:    team.ID,
					Points:    input.Points,
					Reason:    input.Reason,
					AwardedBy: grant.Subject,
					AwardedAt: s.clock.Now().UTC(),
				}
				if err := s.repo.Insert(ctx, db, row); err != nil {
					if errors.Is(err, bonusdb.ErrTeamNotFound) {
						return results.FailureResult[bonusdomain.Award](fmt.Errorf("%w: %q", ErrTeamNotFound, input.TeamName)), nil
					}
					return awardResult{}, err
				}

				if err := s.audit.Record(ctx, db, auditdomain.Entry{
					Action:   auditdomain.ActionAwardBonus,
					Entity:   "team",
					EntityID: strconv.FormatInt(team.ID, 10),
					Actor:    grant.Subject,
					Details: map[string]any{
						"bonus_id": row.ID,
						"team":     team.Name,
						"points":   row.Points,
						"reason":   row.Reason,
					},
				}); err != nil {
					return awardResult{}, err
				}

				s.logger.InfoContext(ctx, "Bonus awarded",
					attr.String("team", team.Name),
					attr.Int("points", row.Points),
					attr.String("awarded_by", row.AwardedBy),
				)
				return results.SuccessResult[bonusdomain.Award, error](toAward(row, team.Name)), nil
			})
		})
	return operation.Unwrap(result, err)
}

// ListBonuses returns a team's awards in award order.
func (s *BonusService) ListBonuses(ctx context.Context, teamName string) ([]bonusdomain.Award, error) {
	teamName = strings.TrimSpace(teamName)

	result, err := operation.WithTelemetry(ctx, s.telemetry, "ListBonuses", teamName,
		func(ctx context.Context) (awardsResult, error) {
			team, err := s.teams.GetTeamByName(ctx, nil, teamName)
			if err != nil {
				if errors.Is(err, rosterdb.ErrNotFound) {
					return results.FailureResult[[]bonusdomain.Award](fmt.Errorf("%w: %q", ErrTeamNotFound, teamName)), nil
				}
				return awardsResult{}, fmt.Errorf("failed to get team: %w", err)
			}
			rows, err := s.repo.ListByTeam(ctx, nil, team.ID)
			if err != nil {
				return awardsResult{}, err
			}
			awards := make([]bonusdomain.Award, 0, len(rows))
			for _, row := range rows {
				awards = append(awards, toAward(row, team.Name))
			}
			return results.SuccessResult[[]bonusdomain.Award, error](awards), nil
		})
	return operation.Unwrap(result, err)
}

func toAward(row *bonusdb.BonusPoint, teamName string) bonusdomain.Award {
	return bonusdomain.Award{
		ID:        row.ID,
		TeamID:    row.TeamID,
		TeamName:  teamName,
		Points:    row.Points,
		Reason:    row.Reason,
		AwardedBy: row.AwardedBy,
		AwardedAt: row.AwardedAt,
	}
}

var _ Service = (*BonusService)(nil)
