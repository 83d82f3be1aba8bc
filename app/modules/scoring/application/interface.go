package scoringservice

import (
	"context"
	"time"

	authdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/domain"
	scoringdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/scoring/domain"
)

// Service is the read surface over derived scores. Every call loads a fresh
// snapshot; nothing is cached between calls.
type Service interface {
	Leaderboard(ctx context.Context, limit int) ([]scoringdomain.TeamScore, error)
	TeamDetail(ctx context.Context, teamName string) (TeamDetail, error)
	// MemberScores lists member scores for one team, or every team when
	// teamName is empty.
	MemberScores(ctx context.Context, teamName string) ([]scoringdomain.MemberScore, error)
	CoachLeaderboard(ctx context.Context) ([]scoringdomain.CoachScore, error)
	CoachDetail(ctx context.Context, coachName string) (CoachDetail, error)
	EventAnalytics(ctx context.Context) ([]scoringdomain.EventStats, error)
	EventStats(ctx context.Context, eventID int64) (scoringdomain.EventStats, error)
	EventAnalyticsChart(ctx context.Context) ([]byte, error)
	ExportLeaderboard(ctx context.Context) ([]byte, error)
	IntegrityReport(ctx context.Context, grant authdomain.Grant) (scoringdomain.IntegrityReport, error)
}

// TeamDetail is a team's score with its members, coach and bonus history.
type TeamDetail struct {
	Team    scoringdomain.TeamScore     `json:"team"`
	Members []scoringdomain.MemberScore `json:"members"`
	Coach   *scoringdomain.CoachScore   `json:"coach"`
	Bonuses []BonusEntry                `json:"bonuses"`
}

// BonusEntry is one award in a team's bonus history.
type BonusEntry struct {
	ID        int64     `json:"id"`
	Points    int       `json:"points"`
	Reason    string    `json:"reason"`
	AwardedBy string    `json:"awarded_by"`
	AwardedAt time.Time `json:"awarded_at"`
}

// CoachDetail is a coach's aggregate score and the scores of every team
// they coach.
type CoachDetail struct {
	Coach scoringdomain.CoachScore  `json:"coach"`
	Teams []scoringdomain.TeamScore `json:"teams"`
}
