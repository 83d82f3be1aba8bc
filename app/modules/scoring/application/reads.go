package scoringservice

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	authdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/domain"
	scoringdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/scoring/domain"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/observability/attr"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/operation"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/results"
)

type (
	teamScoresResult   = results.OperationResult[[]scoringdomain.TeamScore, error]
	teamDetailResult   = results.OperationResult[TeamDetail, error]
	memberScoresResult = results.OperationResult[[]scoringdomain.MemberScore, error]
	coachScoresResult  = results.OperationResult[[]scoringdomain.CoachScore, error]
	coachDetailResult  = results.OperationResult[CoachDetail, error]
	eventStatsResult   = results.OperationResult[scoringdomain.EventStats, error]
	analyticsResult    = results.OperationResult[[]scoringdomain.EventStats, error]
	integrityResult    = results.OperationResult[scoringdomain.IntegrityReport, error]
)

// Leaderboard ranks the active teams. A positive limit keeps the top rows.
func (s *ScoringService) Leaderboard(ctx context.Context, limit int) ([]scoringdomain.TeamScore, error) {
	result, err := operation.WithTelemetry(ctx, s.telemetry, "Leaderboard", strconv.Itoa(limit),
		func(ctx context.Context) (teamScoresResult, error) {
			snap, err := s.snapshot(ctx)
			if err != nil {
				return teamScoresResult{}, err
			}
			return results.SuccessResult[[]scoringdomain.TeamScore, error](scoringdomain.Leaderboard(snap, limit)), nil
		})
	return operation.Unwrap(result, err)
}

// TeamDetail scores one team by name. Inactive teams are still scored but
// carry rank 0.
func (s *ScoringService) TeamDetail(ctx context.Context, teamName string) (TeamDetail, error) {
	teamName = strings.TrimSpace(teamName)

	result, err := operation.WithTelemetry(ctx, s.telemetry, "TeamDetail", teamName,
		func(ctx context.Context) (teamDetailResult, error) {
			snap, err := s.snapshot(ctx)
			if err != nil {
				return teamDetailResult{}, err
			}
			team, ok := findTeam(snap, teamName)
			if !ok {
				return results.FailureResult[TeamDetail](fmt.Errorf("%w: %q", ErrTeamNotFound, teamName)), nil
			}

			score, _ := scoringdomain.ScoreTeam(snap, team.ID)
			for _, ranked := range scoringdomain.Leaderboard(snap, 0) {
				if ranked.TeamID == team.ID {
					score.Rank = ranked.Rank
				}
			}

			detail := TeamDetail{
				Team:    score,
				Members: scoringdomain.MemberScores(snap, team.ID),
				Bonuses: []BonusEntry{},
			}
			if detail.Members == nil {
				detail.Members = []scoringdomain.MemberScore{}
			}
			if team.CoachName != "" {
				coach := scoringdomain.ScoreCoach(snap, team.CoachName)
				detail.Coach = &coach
			}
			for _, b := range snap.Bonuses {
				if b.TeamID != team.ID {
					continue
				}
				detail.Bonuses = append(detail.Bonuses, BonusEntry{
					ID:        b.ID,
					Points:    b.Points,
					Reason:    b.Reason,
					AwardedBy: b.AwardedBy,
					AwardedAt: b.AwardedAt,
				})
			}
			return results.SuccessResult[TeamDetail, error](detail), nil
		})
	return operation.Unwrap(result, err)
}

// MemberScores lists member scores for a team, or all members when teamName
// is empty.
func (s *ScoringService) MemberScores(ctx context.Context, teamName string) ([]scoringdomain.MemberScore, error) {
	teamName = strings.TrimSpace(teamName)

	result, err := operation.WithTelemetry(ctx, s.telemetry, "MemberScores", teamName,
		func(ctx context.Context) (memberScoresResult, error) {
			snap, err := s.snapshot(ctx)
			if err != nil {
				return memberScoresResult{}, err
			}
			var teamID int64
			if teamName != "" {
				team, ok := findTeam(snap, teamName)
				if !ok {
					return results.FailureResult[[]scoringdomain.MemberScore](fmt.Errorf("%w: %q", ErrTeamNotFound, teamName)), nil
				}
				teamID = team.ID
			}
			scores := scoringdomain.MemberScores(snap, teamID)
			if scores == nil {
				scores = []scoringdomain.MemberScore{}
			}
			return results.SuccessResult[[]scoringdomain.MemberScore, error](scores), nil
		})
	return operation.Unwrap(result, err)
}

// CoachLeaderboard scores every known coach.
func (s *ScoringService) CoachLeaderboard(ctx context.Context) ([]scoringdomain.CoachScore, error) {
	result, err := operation.WithTelemetry(ctx, s.telemetry, "CoachLeaderboard", "all",
		func(ctx context.Context) (coachScoresResult, error) {
			snap, err := s.snapshot(ctx)
			if err != nil {
				return coachScoresResult{}, err
			}
			return results.SuccessResult[[]scoringdomain.CoachScore, error](scoringdomain.CoachScores(snap)), nil
		})
	return operation.Unwrap(result, err)
}

// CoachDetail scores a coach and every team they coach. A name that is
// neither in the coaches table nor on any team is not found.
func (s *ScoringService) CoachDetail(ctx context.Context, coachName string) (CoachDetail, error) {
	coachName = strings.TrimSpace(coachName)

	result, err := operation.WithTelemetry(ctx, s.telemetry, "CoachDetail", coachName,
		func(ctx context.Context) (coachDetailResult, error) {
			snap, err := s.snapshot(ctx)
			if err != nil {
				return coachDetailResult{}, err
			}

			coach := scoringdomain.ScoreCoach(snap, coachName)
			if len(coach.Teams) == 0 && !inCoachesTable(snap, coachName) {
				return results.FailureResult[CoachDetail](fmt.Errorf("%w: %q", ErrCoachNotFound, coachName)), nil
			}

			detail := CoachDetail{Coach: coach, Teams: []scoringdomain.TeamScore{}}
			for _, score := range scoringdomain.Rank(scoringdomain.TeamScores(snap)) {
				if score.CoachName == coachName {
					detail.Teams = append(detail.Teams, score)
				}
			}
			return results.SuccessResult[CoachDetail, error](detail), nil
		})
	return operation.Unwrap(result, err)
}

// EventAnalytics summarizes attendance for every event.
func (s *ScoringService) EventAnalytics(ctx context.Context) ([]scoringdomain.EventStats, error) {
	result, err := operation.WithTelemetry(ctx, s.telemetry, "EventAnalytics", "all",
		func(ctx context.Context) (analyticsResult, error) {
			snap, err := s.snapshot(ctx)
			if err != nil {
				return analyticsResult{}, err
			}
			return results.SuccessResult[[]scoringdomain.EventStats, error](scoringdomain.EventAnalytics(snap)), nil
		})
	return operation.Unwrap(result, err)
}

// EventStats summarizes one event.
func (s *ScoringService) EventStats(ctx context.Context, eventID int64) (scoringdomain.EventStats, error) {
	result, err := operation.WithTelemetry(ctx, s.telemetry, "EventStats", strconv.FormatInt(eventID, 10),
		func(ctx context.Context) (eventStatsResult, error) {
			snap, err := s.snapshot(ctx)
			if err != nil {
				return eventStatsResult{}, err
			}
			stats, ok := scoringdomain.StatsForEvent(snap, eventID)
			if !ok {
				return results.FailureResult[scoringdomain.EventStats](fmt.Errorf("%w: %d", ErrEventNotFound, eventID)), nil
			}
			return results.SuccessResult[scoringdomain.EventStats, error](stats), nil
		})
	return operation.Unwrap(result, err)
}

// IntegrityReport recomputes every score and lists data problems. Admins
// only.
func (s *ScoringService) IntegrityReport(ctx context.Context, grant authdomain.Grant) (scoringdomain.IntegrityReport, error) {
	result, err := operation.WithTelemetry(ctx, s.telemetry, "IntegrityReport", grant.Subject,
		func(ctx context.Context) (integrityResult, error) {
			if err := grant.Require(authdomain.RoleAdmin); err != nil {
				return results.FailureResult[scoringdomain.IntegrityReport](err), nil
			}
			snap, err := s.snapshot(ctx)
			if err != nil {
				return integrityResult{}, err
			}

			report := scoringdomain.CheckIntegrity(snap)
			if !report.Valid {
				s.logger.WarnContext(ctx, "Integrity check found problems",
					attr.Int("member_count_mismatches", len(report.MemberCountMismatches)),
					attr.Int("undefined_rates", len(report.UndefinedRates)),
					attr.Int("orphaned_coach_names", len(report.OrphanedCoachNames)),
					attr.Int("invalid_attendance", len(report.InvalidAttendance)),
				)
			}
			return results.SuccessResult[scoringdomain.IntegrityReport, error](report), nil
		})
	return operation.Unwrap(result, err)
}

func findTeam(snap scoringdomain.Snapshot, name string) (scoringdomain.Team, bool) {
	for _, t := range snap.Teams {
		if t.Name == name {
			return t, true
		}
	}
	return scoringdomain.Team{}, false
}

func inCoachesTable(snap scoringdomain.Snapshot, name string) bool {
	for _, c := range snap.Coaches {
		if c.Name == name {
			return true
		}
	}
	return false
}
