package scoringhandlers

import (
	"context"

	authdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/domain"
	scoringservice "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/scoring/application"
	scoringdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/scoring/domain"
)

// FakeService returns canned values and records the arguments it was
// called with. Err, when set, is returned by every method.
type FakeService struct {
	Err error

	Board     []scoringdomain.TeamScore
	Detail    scoringservice.TeamDetail
	Members   []scoringdomain.MemberScore
	Coaches   []scoringdomain.CoachScore
	Coach     scoringservice.CoachDetail
	Events    []scoringdomain.EventStats
	Event     scoringdomain.EventStats
	Chart     []byte
	Workbook  []byte
	Integrity scoringdomain.IntegrityReport

	GotLimit   int
	GotTeam    string
	GotCoach   string
	GotEventID int64
	GotGrant   authdomain.Grant
}

func (f *FakeService) Leaderboard(ctx context.Context, limit int) ([]scoringdomain.TeamScore, error) {
	f.GotLimit = limit
	return f.Board, f.Err
}

func (f *FakeService) TeamDetail(ctx context.Context, teamName string) (scoringservice.TeamDetail, error) {
	f.GotTeam = teamName
	return f.Detail, f.Err
}

func (f *FakeService) MemberScores(ctx context.Context, teamName string) ([]scoringdomain.MemberScore, error) {
	f.GotTeam = teamName
	return f.Members, f.Err
}

func (f *FakeService) CoachLeaderboard(ctx context.Context) ([]scoringdomain.CoachScore, error) {
	return f.Coaches, f.Err
}

func (f *FakeService) CoachDetail(ctx context.Context, coachName string) (scoringservice.CoachDetail, error) {
	f.GotCoach = coachName
	return f.Coach, f.Err
}

func (f *FakeService) EventAnalytics(ctx context.Context) ([]scoringdomain.EventStats, error) {
	return f.Events, f.Err
}

func (f *FakeService) EventStats(ctx context.Context, eventID int64) (scoringdomain.EventStats, error) {
	f.GotEventID = eventID
	return f.Event, f.Err
}

func (f *FakeService) EventAnalyticsChart(ctx context.Context) ([]byte, error) {
	return f.Chart, f.Err
}

func (f *FakeService) ExportLeaderboard(ctx context.Context) ([]byte, error) {
	return f.Workbook, f.Err
}

func (f *FakeService) IntegrityReport(ctx context.Context, grant authdomain.Grant) (scoringdomain.IntegrityReport, error) {
	f.GotGrant = grant
	return f.Integrity, f.Err
}

var _ scoringservice.Service = (*FakeService)(nil)
