package auditservice

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	auditdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/audit/domain"
	auditdb "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/audit/infrastructure/repositories"
	authdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/domain"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/clock"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/observability/metrics"
)

var now = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func newTestService(repo auditdb.Repository) *AuditService {
	return NewAuditService(repo, slog.Default(), metrics.NewNoop(), nil, clock.Fixed(now), nil)
}

func grant(role authdomain.Role) authdomain.Grant {
	return authdomain.Grant{Subject: "ops", Role: role, ExpiresAt: now.Add(time.Hour * 24 * 365 * 10)}
}

func TestAuditService_Record(t *testing.T) {
	tests := []struct {
		name      string
		entry     auditdomain.Entry
		setupRepo func(*FakeAuditRepo)
		wantErr   error
		wantTrace []string
	}{
		{
			name:      "stamps uuid and time",
			entry:     auditdomain.Entry{Action: auditdomain.ActionAwardBonus, Entity: "team", EntityID: "3", Actor: "ops"},
			wantTrace: []string{"Insert"},
		},
		{
			name:      "missing actor",
			entry:     auditdomain.Entry{Action: auditdomain.ActionAwardBonus, Entity: "team"},
			wantErr:   ErrInvalidEntry,
			wantTrace: []string{},
		},
		{
			name:  "repository error wrapped",
			entry: auditdomain.Entry{Action: auditdomain.ActionCreateEvent, Entity: "event", Actor: "ops"},
			setupRepo: func(r *FakeAuditRepo) {
				r.InsertFunc = func(ctx context.Context, db bun.IDB, entry *auditdb.Entry) error {
					return errors.New("disk full")
				}
			},
			wantErr:   nil,
			wantTrace: []string{"Insert"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewFakeAuditRepo()
			var inserted *auditdb.Entry
			repo.InsertFunc = func(ctx context.Context, db bun.IDB, entry *auditdb.Entry) error {
				inserted = entry
				return nil
			}
			if tt.setupRepo != nil {
				tt.setupRepo(repo)
			}
			err := newTestService(repo).Record(context.Background(), nil, tt.entry)

			assert.Equal(t, tt.wantTrace, repo.Trace())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			if tt.setupRepo != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "failed to record create_event")
				return
			}
			require.NoError(t, err)
			require.NotNil(t, inserted)
			assert.NotZero(t, inserted.UUID)
			assert.Equal(t, now, inserted.CreatedAt)
			assert.Equal(t, "ops", inserted.Actor)
		})
	}
}

func TestAuditService_List(t *testing.T) {
	rows := []*auditdb.Entry{{Action: "award_bonus", Entity: "team", Actor: "ops", CreatedAt: now}}

	tests := []struct {
		name      string
		grant     authdomain.Grant
		limit     int
		wantLimit int
		wantErr   error
	}{
		{name: "admin default limit", grant: grant(authdomain.RoleAdmin), limit: 0, wantLimit: defaultListLimit},
		{name: "admin capped limit", grant: grant(authdomain.RoleAdmin), limit: 10_000, wantLimit: maxListLimit},
		{name: "editor forbidden", grant: grant(authdomain.RoleEditor), limit: 5, wantErr: authdomain.ErrForbidden},
		{name: "anonymous", grant: authdomain.Grant{}, limit: 5, wantErr: authdomain.ErrUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewFakeAuditRepo()
			var gotLimit int
			repo.ListFunc = func(ctx context.Context, db bun.IDB, limit int) ([]*auditdb.Entry, error) {
				gotLimit = limit
				return rows, nil
			}

			records, err := newTestService(repo).List(context.Background(), tt.grant, tt.limit)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.Trace())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, gotLimit)
			require.Len(t, records, 1)
			assert.Equal(t, "award_bonus", records[0].Action)
		})
	}
}
