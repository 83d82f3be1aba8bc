package eventservice

import (
	"context"
	"sort"

	auditservice "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/audit/application"
	auditdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/audit/domain"
	eventdb "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/event/infrastructure/repositories"
	rosterdb "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/roster/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Event Repository
// ------------------------

// FakeEventRepo keeps events and attendance in memory unless a Func
// override is set.
type FakeEventRepo struct {
	trace []string

	Events     map[int64]*eventdb.Event
	Attendance []*eventdb.Attendance

	CreateEventFunc      func(ctx context.Context, db bun.IDB, event *eventdb.Event) error
	GetEventFunc         func(ctx context.Context, db bun.IDB, id int64) (*eventdb.Event, error)
	UpdateEventFunc      func(ctx context.Context, db bun.IDB, event *eventdb.Event, columns ...string) error
	UpsertAttendanceFunc func(ctx context.Context, db bun.IDB, row *eventdb.Attendance) error
}

func NewFakeEventRepo() *FakeEventRepo {
	return &FakeEventRepo{trace: []string{}, Events: map[int64]*eventdb.Event{}}
}

func (f *FakeEventRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeEventRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeEventRepo) CreateEvent(ctx context.Context, db bun.IDB, event *eventdb.Event) error {
	f.record("CreateEvent")
	if f.CreateEventFunc != nil {
		return f.CreateEventFunc(ctx, db, event)
	}
	event.ID = int64(len(f.Events) + 1)
	stored := *event
	f.Events[event.ID] = &stored
	return nil
}

func (f *FakeEventRepo) GetEvent(ctx context.Context, db bun.IDB, id int64) (*eventdb.Event, error) {
	f.record("GetEvent")
	if f.GetEventFunc != nil {
		return f.GetEventFunc(ctx, db, id)
	}
	e, ok := f.Events[id]
	if !ok {
		return nil, eventdb.ErrNotFound
	}
	out := *e
	return &out, nil
}

func (f *FakeEventRepo) GetEventByName(ctx context.Context, db bun.IDB, name string) (*eventdb.Event, error) {
	f.record("GetEventByName")
	for _, e := range f.Events {
		if e.Name == name {
			out := *e
			return &out, nil
		}
	}
	return nil, eventdb.ErrNotFound
}

func (f *FakeEventRepo) UpdateEvent(ctx context.Context, db bun.IDB, event *eventdb.Event, columns ...string) error {
	f.record("UpdateEvent")
	if f.UpdateEventFunc != nil {
		return f.UpdateEventFunc(ctx, db, event, columns...)
	}
	if _, ok := f.Events[event.ID]; !ok {
		return eventdb.ErrNotFound
	}
	stored := *event
	f.Events[event.ID] = &stored
	return nil
}

func (f *FakeEventRepo) ListEvents(ctx context.Context, db bun.IDB, activeOnly bool) ([]*eventdb.Event, error) {
	f.record("ListEvents")
	var out []*eventdb.Event
	for _, e := range f.Events {
		if activeOnly && !e.IsActive {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *FakeEventRepo) UpsertAttendance(ctx context.Context, db bun.IDB, row *eventdb.Attendance) error {
	f.record("UpsertAttendance")
	if f.UpsertAttendanceFunc != nil {
		return f.UpsertAttendanceFunc(ctx, db, row)
	}
	for i, existing := range f.Attendance {
		if existing.EventID != row.EventID {
			continue
		}
		sameMember := row.MemberID != nil && existing.MemberID != nil && *row.MemberID == *existing.MemberID
		sameCoach := row.CoachName != nil && existing.CoachName != nil && *row.CoachName == *existing.CoachName
		if sameMember || sameCoach {
			row.ID = existing.ID
			stored := *row
			f.Attendance[i] = &stored
			return nil
		}
	}
	row.ID = int64(len(f.Attendance) + 1)
	stored := *row
	f.Attendance = append(f.Attendance, &stored)
	return nil
}

func (f *FakeEventRepo) ListAttendance(ctx context.Context, db bun.IDB, eventID int64) ([]*eventdb.Attendance, error) {
	f.record("ListAttendance")
	var out []*eventdb.Attendance
	for _, a := range f.Attendance {
		if a.EventID == eventID {
			out = append(out, a)
		}
	}
	return out, nil
}

var _ eventdb.Repository = (*FakeEventRepo)(nil)

// ------------------------
// Fake Roster Reader
// ------------------------

type FakeRosterReader struct {
	Teams   []*rosterdb.Team
	Members []*rosterdb.Member
	Coaches []*rosterdb.Coach
}

func (f *FakeRosterReader) GetMember(ctx context.Context, db bun.IDB, id int64) (*rosterdb.Member, error) {
	for _, m := range f.Members {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, rosterdb.ErrNotFound
}

func (f *FakeRosterReader) ListTeams(ctx context.Context, db bun.IDB, activeOnly bool) ([]*rosterdb.Team, error) {
	return f.Teams, nil
}

func (f *FakeRosterReader) ListTeamsByCoach(ctx context.Context, db bun.IDB, coachName string) ([]*rosterdb.Team, error) {
	var out []*rosterdb.Team
	for _, t := range f.Teams {
		if t.CoachName == coachName {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *FakeRosterReader) ListMembers(ctx context.Context, db bun.IDB, teamID int64) ([]*rosterdb.Member, error) {
	var out []*rosterdb.Member
	for _, m := range f.Members {
		if teamID == 0 || m.TeamID == teamID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *FakeRosterReader) GetCoachByName(ctx context.Context, db bun.IDB, name string) (*rosterdb.Coach, error) {
	for _, c := range f.Coaches {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, rosterdb.ErrNotFound
}

func (f *FakeRosterReader) ListCoaches(ctx context.Context, db bun.IDB) ([]*rosterdb.Coach, error) {
	return f.Coaches, nil
}

var _ RosterReader = (*FakeRosterReader)(nil)

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
