package rosterservice

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
	rosterdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/roster/domain"
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
	teamResult        = results.OperationResult[rosterdomain.Team, error]
	teamsResult       = results.OperationResult[[]rosterdomain.Team, error]
	teamDetailResult  = results.OperationResult[rosterdomain.TeamWithMembers, error]
	coachResult       = results.OperationResult[rosterdomain.Coach, error]
	coachesResult     = results.OperationResult[[]rosterdomain.Coach, error]
	addMemberOpResult = results.OperationResult[AddMemberResult, error]
)

// RosterService implements Service.
type RosterService struct {
	repo      rosterdb.Repository
	audit     auditservice.Recorder
	logger    *slog.Logger
	telemetry operation.Telemetry
	clock     clock.Clock
	db        *bun.DB
}

// NewRosterService creates a new RosterService.
func NewRosterService(
	repo rosterdb.Repository,
	audit auditservice.Recorder,
	logger *slog.Logger,
	metrics metrics.OperationMetrics,
	tracer trace.Tracer,
	clk clock.Clock,
	db *bun.DB,
) *RosterService {
	if logger == nil {
		logger = slog.Default()
	}
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &RosterService{
		repo:   repo,
		audit:  audit,
		logger: logger,
		telemetry: operation.Telemetry{
			Service: "RosterService",
			Logger:  logger,
			Metrics: metrics,
			Tracer:  tracer,
		},
		clock: clk,
		db:    db,
	}
}

// CreateTeam registers a team.
func (s *RosterService) CreateTeam(ctx context.Context, grant authdomain.Grant, input CreateTeamInput) (rosterdomain.Team, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.CoachName = strings.TrimSpace(input.CoachName)

	result, err := operation.WithTelemetry(ctx, s.telemetry, "CreateTeam", input.Name,
		func(ctx context.Context) (teamResult, error) {
			if err := grant.Require(authdomain.RoleEditor); err != nil {
				return results.FailureResult[rosterdomain.Team](err), nil
			}
			return operation.RunInTx(ctx, s.db, nil, func(ctx context.Context, db bun.IDB) (teamResult, error) {
				return s.createTeam(ctx, db, grant, input)
			})
		})
	return operation.Unwrap(result, err)
}

func (s *RosterService) createTeam(ctx context.Context, db bun.IDB, grant authdomain.Grant, input CreateTeamInput) (teamResult, error) {
	if input.Name == "" {
		return results.FailureResult[rosterdomain.Team](ErrInvalidName), nil
	}
	if input.TotalMembers < 0 {
		return results.FailureResult[rosterdomain.Team](ErrInvalidMemberCount), nil
	}

	row := &rosterdb.Team{
		Name:         input.Name,
		TotalMembers: input.TotalMembers,
		CoachName:    input.CoachName,
		Department:   strings.TrimSpace(input.Department),
		IsActive:     true,
		CreatedAt:    s.clock.Now().UTC(),
	}
	if err := s.repo.CreateTeam(ctx, db, row); err != nil {
		if errors.Is(err, rosterdb.ErrDuplicate) {
			return results.FailureResult[rosterdomain.Team](fmt.Errorf("%w: %q", ErrTeamExists, input.Name)), nil
		}
		return teamResult{}, fmt.Errorf("failed to create team: %w", err)
	}

	if err := s.audit.Record(ctx, db, auditdomain.Entry{
		Action:   auditdomain.ActionCreateTeam,
		Entity:   "team",
		EntityID: strconv.FormatInt(row.ID, 10),
		Actor:    grant.Subject,
		Details:  map[string]any{"name": row.Name, "total_members": row.TotalMembers, "coach_name": row.CoachName},
	}); err != nil {
		return teamResult{}, err
	}

	return results.SuccessResult[rosterdomain.Team, error](toTeam(row)), nil
}

// CreateCoach registers a coach.
func (s *RosterService) CreateCoach(ctx context.Context, grant authdomain.Grant, input CreateCoachInput) (rosterdomain.Coach, error) {
	input.Name = strings.TrimSpace(input.Name)

	result, err := operation.WithTelemetry(ctx, s.telemetry, "CreateCoach", input.Name,
		func(ctx context.Context) (coachResult, error) {
			if err := grant.Require(authdomain.RoleEditor); err != nil {
				return results.FailureResult[rosterdomain.Coach](err), nil
			}
			return operation.RunInTx(ctx, s.db, nil, func(ctx context.Context, db bun.IDB) (coachResult, error) {
				if input.Name == "" {
					return results.FailureResult[rosterdomain.Coach](ErrInvalidName), nil
				}
				row := &rosterdb.Coach{
					Name:       input.Name,
					Department: strings.TrimSpace(input.Department),
					IsActive:   true,
					CreatedAt:  s.clock.Now().UTC(),
				}
				if err := s.repo.CreateCoach(ctx, db, row); err != nil {
					if errors.Is(err, rosterdb.ErrDuplicate) {
						return results.FailureResult[rosterdomain.Coach](fmt.Errorf("%w: %q", ErrCoachExists, input.Name)), nil
					}
					return coachResult{}, fmt.Errorf("failed to create coach: %w", err)
				}
				if err := s.audit.Record(ctx, db, auditdomain.Entry{
					Action:   auditdomain.ActionCreateCoach,
					Entity:   "coach",
					EntityID: strconv.FormatInt(row.ID, 10),
					Actor:    grant.Subject,
					Details:  map[string]any{"name": row.Name},
				}); err != nil {
					return coachResult{}, err
				}
				return results.SuccessResult[rosterdomain.Coach, error](toCoach(row, nil)), nil
			})
		})
	return operation.Unwrap(result, err)
}

// AddMember adds a member to a team. A new leader replaces the previous one.
func (s *RosterService) AddMember(ctx context.Context, grant authdomain.Grant, input AddMemberInput) (AddMemberResult, error) {
	input.TeamName = strings.TrimSpace(input.TeamName)
	input.Name = strings.TrimSpace(input.Name)

	result, err := operation.WithTelemetry(ctx, s.telemetry, "AddMember", input.TeamName+"/"+input.Name,
		func(ctx context.Context) (addMemberOpResult, error) {
			if err := grant.Require(authdomain.RoleEditor); err != nil {
				return results.FailureResult[AddMemberResult](err), nil
			}
			return operation.RunInTx(ctx, s.db, nil, func(ctx context.Context, db bun.IDB) (addMemberOpResult, error) {
				return s.addMember(ctx, db, grant, input)
			})
		})
	return operation.Unwrap(result, err)
}

func (s *RosterService) addMember(ctx context.Context, db bun.IDB, grant authdomain.Grant, input AddMemberInput) (addMemberOpResult, error) {
	if input.Name == "" {
		return results.FailureResult[AddMemberResult](ErrInvalidName), nil
	}

	team, err := s.repo.GetTeamByName(ctx, db, input.TeamName)
	if err != nil {
		if errors.Is(err, rosterdb.ErrNotFound) {
			return results.FailureResult[AddMemberResult](fmt.Errorf("%w: %q", ErrTeamNotFound, input.TeamName)), nil
		}
		return addMemberOpResult{}, fmt.Errorf("failed to get team: %w", err)
	}

	row := &rosterdb.Member{
		TeamID:     team.ID,
		Name:       input.Name,
		Department: strings.TrimSpace(input.Department),
		IsLeader:   input.IsLeader,
		IsActive:   true,
		CreatedAt:  s.clock.Now().UTC(),
	}
	if err := s.repo.CreateMember(ctx, db, row); err != nil {
		if errors.Is(err, rosterdb.ErrDuplicate) {
			return results.FailureResult[AddMemberResult](fmt.Errorf("%w: %q in %q", ErrMemberExists, input.Name, team.Name)), nil
		}
		return addMemberOpResult{}, fmt.Errorf("failed to create member: %w", err)
	}

	if row.IsLeader {
		if err := s.repo.ClearLeader(ctx, db, team.ID, row.ID); err != nil {
			return addMemberOpResult{}, err
		}
	}

	var warnings []string
	switch _, err := s.repo.GetCoachByName(ctx, db, row.Name); {
	case err == nil:
		warnings = append(warnings, fmt.Sprintf("%s is also registered as a coach", row.Name))
		s.logger.WarnContext(ctx, "Member is also a coach",
			attr.ExtractCorrelationID(ctx),
			attr.String("member", row.Name),
			attr.String("team", team.Name),
		)
	case errors.Is(err, rosterdb.ErrNotFound):
	default:
		return addMemberOpResult{}, fmt.Errorf("failed to check coach roster: %w", err)
	}

	if err := s.audit.Record(ctx, db, auditdomain.Entry{
		Action:   auditdomain.ActionAddMember,
		Entity:   "member",
		EntityID: strconv.FormatInt(row.ID, 10),
		Actor:    grant.Subject,
		Details:  map[string]any{"team": team.Name, "name": row.Name, "is_leader": row.IsLeader},
	}); err != nil {
		return addMemberOpResult{}, err
	}

	return results.SuccessResult[AddMemberResult, error](AddMemberResult{
		Member:   toMember(row),
		Warnings: warnings,
	}), nil
}

// ListTeams returns every team ordered by name.
func (s *RosterService) ListTeams(ctx context.Context) ([]rosterdomain.Team, error) {
	result, err := operation.WithTelemetry(ctx, s.telemetry, "ListTeams", "",
		func(ctx context.Context) (teamsResult, error) {
			rows, err := s.repo.ListTeams(ctx, nil, false)
			if err != nil {
				return teamsResult{}, err
			}
			teams := make([]rosterdomain.Team, 0, len(rows))
			for _, row := range rows {
				teams = append(teams, toTeam(row))
			}
			return results.SuccessResult[[]rosterdomain.Team, error](teams), nil
		})
	return operation.Unwrap(result, err)
}

// GetTeam returns a team with its members.
func (s *RosterService) GetTeam(ctx context.Context, name string) (rosterdomain.TeamWithMembers, error) {
	name = strings.TrimSpace(name)
	result, err := operation.WithTelemetry(ctx, s.telemetry, "GetTeam", name,
		func(ctx context.Context) (teamDetailResult, error) {
			team, err := s.repo.GetTeamByName(ctx, nil, name)
			if err != nil {
				if errors.Is(err, rosterdb.ErrNotFound) {
					return results.FailureResult[rosterdomain.TeamWithMembers](fmt.Errorf("%w: %q", ErrTeamNotFound, name)), nil
				}
				return teamDetailResult{}, err
			}
			rows, err := s.repo.ListMembers(ctx, nil, team.ID)
			if err != nil {
				return teamDetailResult{}, err
			}
			detail := rosterdomain.TeamWithMembers{Team: toTeam(team), Members: make([]rosterdomain.Member, 0, len(rows))}
			for _, row := range rows {
				detail.Members = append(detail.Members, toMember(row))
			}
			return results.SuccessResult[rosterdomain.TeamWithMembers, error](detail), nil
		})
	return operation.Unwrap(result, err)
}

// ListCoaches returns every coach with the names of the teams they coach.
func (s *RosterService) ListCoaches(ctx context.Context) ([]rosterdomain.Coach, error) {
	result, err := operation.WithTelemetry(ctx, s.telemetry, "ListCoaches", "",
		func(ctx context.Context) (coachesResult, error) {
			rows, err := s.repo.ListCoaches(ctx, nil)
			if err != nil {
				return coachesResult{}, err
			}
			teams, err := s.repo.ListTeams(ctx, nil, false)
			if err != nil {
				return coachesResult{}, err
			}
			byCoach := make(map[string][]string)
			for _, t := range teams {
				if t.CoachName != "" {
					byCoach[t.CoachName] = append(byCoach[t.CoachName], t.Name)
				}
			}
			coaches := make([]rosterdomain.Coach, 0, len(rows))
			for _, row := range rows {
				coaches = append(coaches, toCoach(row, byCoach[row.Name]))
			}
			return results.SuccessResult[[]rosterdomain.Coach, error](coaches), nil
		})
	return operation.Unwrap(result, err)
}

func toTeam(row *rosterdb.Team) rosterdomain.Team {
	return rosterdomain.Team{
		ID:           row.ID,
		Name:         row.Name,
		TotalMembers: row.TotalMembers,
		CoachName:    row.CoachName,
		Department:   row.Department,
		IsActive:     row.IsActive,
		CreatedAt:    row.CreatedAt,
	}
}

func toMember(row *rosterdb.Member) rosterdomain.Member {
	return rosterdomain.Member{
		ID:          row.ID,
		TeamID:      row.TeamID,
		Name:        row.Name,
		DisplayName: rosterdomain.DisplayName(row.Name),
		Department:  row.Department,
		IsLeader:    row.IsLeader,
		IsActive:    row.IsActive,
		CreatedAt:   row.CreatedAt,
	}
}

func toCoach(row *rosterdb.Coach, teams []string) rosterdomain.Coach {
	if teams == nil {
		teams = []string{}
	}
	return rosterdomain.Coach{
		ID:         row.ID,
		Name:       row.Name,
		Department: row.Department,
		IsActive:   row.IsActive,
		CreatedAt:  row.CreatedAt,
		Teams:      teams,
	}
}

var _ Service = (*RosterService)(nil)
