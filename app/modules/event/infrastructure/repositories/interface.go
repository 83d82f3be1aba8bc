package eventdb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the contract for event and attendance persistence.
type Repository interface {
	CreateEvent(ctx context.Context, db bun.IDB, event *Event) error
	GetEvent(ctx context.Context, db bun.IDB, id int64) (*Event, error)
	GetEventByName(ctx context.Context, db bun.IDB, name string) (*Event, error)
	// UpdateEvent writes the named columns of event, matched by ID.
	UpdateEvent(ctx context.Context, db bun.IDB, event *Event, columns ...string) error
	// ListEvents returns events ordered by date, then id.
	ListEvents(ctx context.Context, db bun.IDB, activeOnly bool) ([]*Event, error)

	// UpsertAttendance inserts a row or replaces the existing row for the same
	// (event, member) or (event, coach).
	UpsertAttendance(ctx context.Context, db bun.IDB, row *Attendance) error
	// ListAttendance returns the event's rows ordered by id.
	ListAttendance(ctx context.Context, db bun.IDB, eventID int64) ([]*Attendance, error)
}
