package rosterservice

import (
	"context"

	auditservice "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/audit/application"
	auditdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/audit/domain"
	rosterdb "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/roster/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Roster Repository
// ------------------------

type FakeRosterRepo struct {
	trace []string

	CreateTeamFunc       func(ctx context.Context, db bun.IDB, team *rosterdb.Team) error
	GetTeamByIDFunc      func(ctx context.Context, db bun.IDB, id int64) (*rosterdb.Team, error)
	GetTeamByNameFunc    func(ctx context.Context, db bun.IDB, name string) (*rosterdb.Team, error)
	ListTeamsFunc        func(ctx context.Context, db bun.IDB, activeOnly bool) ([]*rosterdb.Team, error)
	ListTeamsByCoachFunc func(ctx context.Context, db bun.IDB, coachName string) ([]*rosterdb.Team, error)
	CreateMemberFunc     func(ctx context.Context, db bun.IDB, member *rosterdb.Member) error
	GetMemberFunc        func(ctx context.Context, db bun.IDB, id int64) (*rosterdb.Member, error)
	ListMembersFunc      func(ctx context.Context, db bun.IDB, teamID int64) ([]*rosterdb.Member, error)
	ClearLeaderFunc      func(ctx context.Context, db bun.IDB, teamID, keepID int64) error
	CreateCoachFunc      func(ctx context.Context, db bun.IDB, coach *rosterdb.Coach) error
	GetCoachByNameFunc   func(ctx context.Context, db bun.IDB, name string) (*rosterdb.Coach, error)
	ListCoachesFunc      func(ctx context.Context, db bun.IDB) ([]*rosterdb.Coach, error)
}

func NewFakeRosterRepo() *FakeRosterRepo {
	return &FakeRosterRepo{trace: []string{}}
}

func (f *FakeRosterRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeRosterRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeRosterRepo) CreateTeam(ctx context.Context, db bun.IDB, team *rosterdb.Team) error {
	f.record("CreateTeam")
	if f.CreateTeamFunc != nil {
		return f.CreateTeamFunc(ctx, db, team)
	}
	return nil
}

func (f *FakeRosterRepo) GetTeamByID(ctx context.Context, db bun.IDB, id int64) (*rosterdb.Team, error) {
	f.record("GetTeamByID")
	if f.GetTeamByIDFunc != nil {
		return f.GetTeamByIDFunc(ctx, db, id)
	}
	return nil, rosterdb.ErrNotFound
}

func (f *FakeRosterRepo) GetTeamByName(ctx context.Context, db bun.IDB, name string) (*rosterdb.Team, error) {
	f.record("GetTeamByName")
	if f.GetTeamByNameFunc != nil {
		return f.GetTeamByNameFunc(ctx, db, name)
	}
	return nil, rosterdb.ErrNotFound
}

func (f *FakeRosterRepo) ListTeams(ctx context.Context, db bun.IDB, activeOnly bool) ([]*rosterdb.Team, error) {
	f.record("ListTeams")
	if f.ListTeamsFunc != nil {
		return f.ListTeamsFunc(ctx, db, activeOnly)
	}
	return nil, nil
}

func (f *FakeRosterRepo) ListTeamsByCoach(ctx context.Context, db bun.IDB, coachName string) ([]*rosterdb.Team, error) {
	f.record("ListTeamsByCoach")
	if f.ListTeamsByCoachFunc != nil {
		return f.ListTeamsByCoachFunc(ctx, db, coachName)
	}
	return nil, nil
}

func (f *FakeRosterRepo) CreateMember(ctx context.Context, db bun.IDB, member *rosterdb.Member) error {
	f.record("CreateMember")
	if f.CreateMemberFunc != nil {
		return f.CreateMemberFunc(ctx, db, member)
	}
	return nil
}

func (f *FakeRosterRepo) GetMember(ctx context.Context, db bun.IDB, id int64) (*rosterdb.Member, error) {
	f.record("GetMember")
	if f.GetMemberFunc != nil {
		return f.GetMemberFunc(ctx, db, id)
	}
	return nil, rosterdb.ErrNotFound
}

func (f *FakeRosterRepo) ListMembers(ctx context.Context, db bun.IDB, teamID int64) ([]*rosterdb.Member, error) {
	f.record("ListMembers")
	if f.ListMembersFunc != nil {
		return f.ListMembersFunc(ctx, db, teamID)
	}
	return nil, nil
}

func (f *FakeRosterRepo) ClearLeader(ctx context.Context, db bun.IDB, teamID, keepID int64) error {
	f.record("ClearLeader")
	if f.ClearLeaderFunc != nil {
		return f.ClearLeaderFunc(ctx, db, teamID, keepID)
	}
	return nil
}

func (f *FakeRosterRepo) CreateCoach(ctx context.Context, db bun.IDB, coach *rosterdb.Coach) error {
	f.record("CreateCoach")
	if f.CreateCoachFunc != nil {
		return f.CreateCoachFunc(ctx, db, coach)
	}
	return nil
}

func (f *FakeRosterRepo) GetCoachByName(ctx context.Context, db bun.IDB, name string) (*rosterdb.Coach, error) {
	f.record("GetCoachByName")
	if f.GetCoachByNameFunc != nil {
		return f.GetCoachByNameFunc(ctx, db, name)
	}
	return nil, rosterdb.ErrNotFound
}

func (f *FakeRosterRepo) ListCoaches(ctx context.Context, db bun.IDB) ([]*rosterdb.Coach, error) {
	f.record("ListCoaches")
	if f.ListCoachesFunc != nil {
		return f.ListCoachesFunc(ctx, db)
	}
	return nil, nil
}

var _ rosterdb.Repository = (*FakeRosterRepo)(nil)

// ------------------------
// Fake Audit Recorder
// ------------------------

type FakeRecorder struct {
	Entries []auditdomain.Entry
	Err     error
}

func (f *FakeRecorder) Record(ctx context.Context, db bun.IDB, entry auditdomain.Entry) error {
	if f.Err != nil {
		return f.Err
	}
	f.Entries = append(f.Entries, entry)
	return nil
}

var _ auditservice.Recorder = (*FakeRecorder)(nil)
