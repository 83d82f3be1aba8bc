package scoringservice

import (
	"context"

	scoringdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/scoring/domain"
	scoringdb "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/scoring/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Scoring Repository
// ------------------------

type FakeScoringRepo struct {
	trace    []string
	Snapshot scoringdomain.Snapshot

	LoadSnapshotFunc func(ctx context.Context, db bun.IDB) (scoringdomain.Snapshot, error)
}

func NewFakeScoringRepo(snap scoringdomain.Snapshot) *FakeScoringRepo {
	return &FakeScoringRepo{trace: []string{}, Snapshot: snap}
}

func (f *FakeScoringRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeScoringRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeScoringRepo) LoadSnapshot(ctx context.Context, db bun.IDB) (scoringdomain.Snapshot, error) {
	f.record("LoadSnapshot")
	if f.LoadSnapshotFunc != nil {
		return f.LoadSnapshotFunc(ctx, db)
	}
	return f.Snapshot, nil
}

var _ scoringdb.Repository = (*FakeScoringRepo)(nil)
