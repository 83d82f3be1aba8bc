package auditservice

import (
	"context"

	auditdb "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/audit/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Audit Repository
// ------------------------

type FakeAuditRepo struct {
	trace []string

	InsertFunc func(ctx context.Context, db bun.IDB, entry *auditdb.Entry) error
	ListFunc   func(ctx context.Context, db bun.IDB, limit int) ([]*auditdb.Entry, error)
}

func NewFakeAuditRepo() *FakeAuditRepo {
	return &FakeAuditRepo{trace: []string{}}
}

func (f *FakeAuditRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeAuditRepo) Insert(ctx context.Context, db bun.IDB, entry *auditdb.Entry) error {
	f.record("Insert")
	if f.InsertFunc != nil {
		return f.InsertFunc(ctx, db, entry)
	}
	return nil
}

func (f *FakeAuditRepo) List(ctx context.Context, db bun.IDB, limit int) ([]*auditdb.Entry, error) {
	f.record("List")
	if f.ListFunc != nil {
		return f.ListFunc(ctx, db, limit)
	}
	return nil, nil
}

func (f *FakeAuditRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ auditdb.Repository = (*FakeAuditRepo)(nil)
