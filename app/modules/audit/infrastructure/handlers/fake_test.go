package audithandlers

import (
	"context"

	auditservice "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/audit/application"
	auditdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/audit/domain"
	authdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/domain"
	"github.com/uptrace/bun"
)

type FakeService struct {
	RecordFunc func(ctx context.Context, db bun.IDB, entry auditdomain.Entry) error
	ListFunc   func(ctx context.Context, grant authdomain.Grant, limit int) ([]auditdomain.Record, error)
}

func (f *FakeService) Record(ctx context.Context, db bun.IDB, entry auditdomain.Entry) error {
	if f.RecordFunc != nil {
		return f.RecordFunc(ctx, db, entry)
	}
	return nil
}

func (f *FakeService) List(ctx context.Context, grant authdomain.Grant, limit int) ([]auditdomain.Record, error) {
	if f.ListFunc != nil {
		return f.ListFunc(ctx, grant, limit)
	}
	return []auditdomain.Record{}, nil
}

var _ auditservice.Service = (*FakeService)(nil)
