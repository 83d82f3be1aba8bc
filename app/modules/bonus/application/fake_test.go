package bonusservice

import (
	"context"

	auditservice "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/audit/application"
	auditdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/audit/domain"
	bonusdb "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/bonus/infrastructure/repositories"
	rosterdb "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/roster/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Bonus Repository
// ------------------------

type FakeBonusRepo struct {
	trace []string
	rows  []*bonusdb.BonusPoint

	InsertFunc func(ctx context.Context, db bun.IDB, award *bonusdb.BonusPoint) error
}

func NewFakeBonusRepo() *FakeBonusRepo {
	return &FakeBonusRepo{trace: []string{}}
}

func (f *FakeBonusRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeBonusRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeBonusRepo) Insert(ctx context.Context, db bun.IDB, award *bonusdb.BonusPoint) error {
	f.record("Insert")
	if f.InsertFunc != nil {
		return f.InsertFunc(ctx, db, award)
	}
	award.ID = int64(len(f.rows) + 1)
	stored := *award
	f.rows = append(f.rows, &stored)
	return nil
}

func (f *FakeBonusRepo) ListByTeam(ctx context.Context, db bun.IDB, teamID int64) ([]*bonusdb.BonusPoint, error) {
	f.record("ListByTeam")
	var out []*bonusdb.BonusPoint
	for _, r := range f.rows {
		if r.TeamID == teamID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *FakeBonusRepo) ListAll(ctx context.Context, db bun.IDB) ([]*bonusdb.BonusPoint, error) {
	f.record("ListAll")
	return f.rows, nil
}

var _ bonusdb.Repository = (*FakeBonusRepo)(nil)

// ------------------------
// Fake Team Reader
// ------------------------

type FakeTeamReader struct {
	Teams []*rosterdb.Team
	Err   error
}

func (f *FakeTeamReader) GetTeamByName(ctx context.Context, db bun.IDB, name string) (*rosterdb.Team, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	for _, t := range f.Teams {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, rosterdb.ErrNotFound
}

var _ TeamReader = (*FakeTeamReader)(nil)

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
