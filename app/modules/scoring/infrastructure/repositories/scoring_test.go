package scoringdb_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bonusdb "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/bonus/infrastructure/repositories"
	bonusmigrations "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/bonus/infrastructure/repositories/migrations"
	eventdb "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/event/infrastructure/repositories"
	eventmigrations "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/event/infrastructure/repositories/migrations"
	rosterdb "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/roster/infrastructure/repositories"
	rostermigrations "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/roster/infrastructure/repositories/migrations"
	scoringdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/scoring/domain"
	scoringdb "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/scoring/infrastructure/repositories"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/testdb"
)

func TestImpl_LoadSnapshot(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t, rostermigrations.Migrations, eventmigrations.Migrations, bonusmigrations.Migrations)
	roster := rosterdb.NewRepository(db)
	events := eventdb.NewRepository(db)
	bonuses := bonusdb.NewRepository(db)
	stamp := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	team := &rosterdb.Team{Name: "Alliance of Just Minds", TotalMembers: 5, CoachName: "Coach Ana", IsActive: true, CreatedAt: stamp}
	require.NoError(t, roster.CreateTeam(ctx, nil, team))
	require.NoError(t, roster.CreateCoach(ctx, nil, &rosterdb.Coach{Name: "Coach Ana", IsActive: true, CreatedAt: stamp}))

	var members []*rosterdb.Member
	for _, name := range []string{"Jovan Reyes", "Anthony Cruz", "Mariel Santos", "Christopher Lim", "Celine Tan"} {
		m := &rosterdb.Member{TeamID: team.ID, Name: name, IsActive: true, CreatedAt: stamp}
		require.NoError(t, roster.CreateMember(ctx, nil, m))
		members = append(members, m)
	}

	eventA := &eventdb.Event{Name: "Event A", EventType: "tech_sharing", EventDate: stamp, MemberPoints: 1, CoachPoints: 2, IsActive: true, CreatedAt: stamp, UpdatedAt: stamp}
	require.NoError(t, events.CreateEvent(ctx, nil, eventA))

	for _, m := range members[:4] {
		id := m.ID
		require.NoError(t, events.UpsertAttendance(ctx, nil, &eventdb.Attendance{
			EventID: eventA.ID, MemberID: &id, Attended: true, PointsEarned: 1, Sessions: 1,
			SessionType: "day", RecordedBy: "ops", RecordedAt: stamp,
		}))
	}
	coach := "Coach Ana"
	require.NoError(t, events.UpsertAttendance(ctx, nil, &eventdb.Attendance{
		EventID: eventA.ID, CoachName: &coach, Attended: true, PointsEarned: 2, Sessions: 1,
		SessionType: "day", RecordedBy: "ops", RecordedAt: stamp,
	}))
	require.NoError(t, bonuses.Insert(ctx, nil, &bonusdb.BonusPoint{TeamID: team.ID, Points: 3, Reason: "demo", AwardedBy: "ops", AwardedAt: stamp}))

	snap, err := scoringdb.NewRepository(db).LoadSnapshot(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, snap.Teams, 1)
	assert.Len(t, snap.Members, 5)
	assert.Len(t, snap.Coaches, 1)
	assert.Len(t, snap.Events, 1)
	assert.Len(t, snap.Attendance, 5)
	assert.Len(t, snap.Bonuses, 1)
	assert.True(t, snap.Events[0].EventDate.Equal(stamp))

	score, ok := scoringdomain.ScoreTeam(snap, team.ID)
	require.True(t, ok)
	assert.Equal(t, 4, score.MemberPoints)
	assert.Equal(t, 2, score.CoachPoints)
	assert.Equal(t, 3, score.BonusPoints)
	assert.Equal(t, 9, score.FinalScore)
	assert.Equal(t, "80%", score.AttendanceRate.String())
}

func TestImpl_LoadSnapshot_Empty(t *testing.T) {
	db := testdb.New(t, rostermigrations.Migrations, eventmigrations.Migrations, bonusmigrations.Migrations)

	snap, err := scoringdb.NewRepository(db).LoadSnapshot(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, snap.Teams)
	assert.NotNil(t, scoringdomain.Leaderboard(snap, 10))
}
