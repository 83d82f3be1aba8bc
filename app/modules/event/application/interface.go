package eventservice

import (
	"context"

	authdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/domain"
	eventdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/event/domain"
	rosterdb "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/roster/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// Service defines the event and attendance operations. Writes take the
// caller's grant explicitly.
type Service interface {
	CreateEvent(ctx context.Context, grant authdomain.Grant, input CreateEventInput) (eventdomain.Event, error)
	UpdateEvent(ctx context.Context, grant authdomain.Grant, id int64, patch UpdateEventInput) (eventdomain.Event, error)
	DeactivateEvent(ctx context.Context, grant authdomain.Grant, id int64) error
	ListEvents(ctx context.Context, activeOnly bool) ([]eventdomain.Event, error)
	GetEvent(ctx context.Context, id int64) (eventdomain.EventWithAttendance, error)

	RecordAttendance(ctx context.Context, grant authdomain.Grant, input RecordAttendanceInput) (eventdomain.AttendanceRecord, error)
	RecordMemberAttendance(ctx context.Context, grant authdomain.Grant, eventID int64, attended map[int64]bool) (BatchResult, error)
	RecordCoachAttendance(ctx context.Context, grant authdomain.Grant, eventID int64, sessions map[string]int) (BatchResult, error)
	RecordBatch(ctx context.Context, grant authdomain.Grant, eventID int64, batch BatchInput) (BatchResult, error)
	ImportAttendance(ctx context.Context, grant authdomain.Grant, eventID int64, filename string, data []byte) (ImportReport, error)
}

// RosterReader is the slice of the roster repository attendance needs.
type RosterReader interface {
	GetMember(ctx context.Context, db bun.IDB, id int64) (*rosterdb.Member, error)
	ListTeams(ctx context.Context, db bun.IDB, activeOnly bool) ([]*rosterdb.Team, error)
	ListTeamsByCoach(ctx context.Context, db bun.IDB, coachName string) ([]*rosterdb.Team, error)
	ListMembers(ctx context.Context, db bun.IDB, teamID int64) ([]*rosterdb.Member, error)
	GetCoachByName(ctx context.Context, db bun.IDB, name string) (*rosterdb.Coach, error)
	ListCoaches(ctx context.Context, db bun.IDB) ([]*rosterdb.Coach, error)
}

// Defaults are the point values used when an event does not name its own.
type Defaults struct {
	MemberPoints int
	CoachPoints  int
}

// CreateEventInput describes a new event. Nil point values take the defaults.
// EventDate accepts a date, RFC3339 timestamp or natural language.
type CreateEventInput struct {
	Name         string
	Description  string
	EventType    string
	EventDate    string
	MemberPoints *int
	CoachPoints  *int
}

// UpdateEventInput is an administrative correction. Nil fields are unchanged.
type UpdateEventInput struct {
	Name         *string
	Description  *string
	EventType    *string
	EventDate    *string
	MemberPoints *int
	CoachPoints  *int
}

// RecordAttendanceInput records one attendee at one event.
type RecordAttendanceInput struct {
	EventID     int64
	Attendee    eventdomain.Attendee
	Attended    bool
	Sessions    int
	SessionType string
	Notes       string
}

// BatchInput is a mixed batch for one event: members by id, coaches by
// session count.
type BatchInput struct {
	Members map[int64]bool
	Coaches map[string]int
}

// BatchResult counts the rows a batch wrote.
type BatchResult struct {
	EventID      int64 `json:"event_id"`
	Recorded     int   `json:"recorded"`
	Members      int   `json:"members"`
	Coaches      int   `json:"coaches"`
	PointsEarned int   `json:"points_earned"`
}

// RowError explains why an uploaded row was not recorded.
type RowError struct {
	Line   int    `json:"line"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// ImportReport summarizes a bulk upload. Processed counts data rows read;
// Merged counts rows folded into an earlier row for the same attendee.
type ImportReport struct {
	EventID   int64      `json:"event_id"`
	Processed int        `json:"processed"`
	Recorded  int        `json:"recorded"`
	Merged    int        `json:"merged"`
	Skipped   int        `json:"skipped"`
	Errors    []RowError `json:"errors"`
}
