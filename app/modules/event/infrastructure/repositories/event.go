package eventdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/dberr"
	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new event repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

// resolveDB returns the provided db handle, falling back to the repository's
// default connection if db is nil.
func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// CreateEvent inserts an event and sets its ID.
func (r *Impl) CreateEvent(ctx context.Context, db bun.IDB, event *Event) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(event).Returning("id").Exec(ctx); err != nil {
		if dberr.IsUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

// GetEvent retrieves an event by id.
func (r *Impl) GetEvent(ctx context.Context, db bun.IDB, id int64) (*Event, error) {
	db = r.resolveDB(db)
	event := new(Event)
	if err := db.NewSelect().Model(event).Where("e.id = ?", id).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

// GetEventByName retrieves an event by its unique name.
func (r *Impl) GetEventByName(ctx context.Context, db bun.IDB, name string) (*Event, error) {
	db = r.resolveDB(db)
	event := new(Event)
	if err := db.NewSelect().Model(event).Where("e.name = ?", name).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event by name: %w", err)
	}
	return event, nil
}

// UpdateEvent writes the named columns.
func (r *Impl) UpdateEvent(ctx context.Context, db bun.IDB, event *Event, columns ...string) error {
	db = r.resolveDB(db)
	result, err := db.NewUpdate().
		Model(event).
		Column(columns...).
		WherePK().
		Exec(ctx)
	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to update event: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// ListEvents returns events ordered by date.
func (r *Impl) ListEvents(ctx context.Context, db bun.IDB, activeOnly bool) ([]*Event, error) {
	db = r.resolveDB(db)
	var events []*Event
	q := db.NewSelect().Model(&events).Order("e.event_date ASC", "e.id ASC")
	if activeOnly {
		q = q.Where("e.is_active = ?", true)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// UpsertAttendance inserts or replaces the attendee's row for the event.
func (r *Impl) UpsertAttendance(ctx context.Context, db bun.IDB, row *Attendance) error {
	db = r.resolveDB(db)

	conflict := "CONFLICT (event_id, member_id) DO UPDATE"
	if row.CoachName != nil {
		conflict = "CONFLICT (event_id, coach_name) DO UPDATE"
	}

	_, err := db.NewInsert().
		Model(row).
		On(conflict).
		Set("attended = EXCLUDED.attended").
		Set("points_earned = EXCLUDED.points_earned").
		Set("sessions = EXCLUDED.sessions").
		Set("session_type = EXCLUDED.session_type").
		Set("notes = EXCLUDED.notes").
		Set("recorded_by = EXCLUDED.recorded_by").
		Set("recorded_at = EXCLUDED.recorded_at").
		Returning("id").
		Exec(ctx)
	if err != nil {
		if dberr.IsForeignKeyViolation(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to upsert attendance: %w", err)
	}
	return nil
}

// ListAttendance returns the event's attendance rows.
func (r *Impl) ListAttendance(ctx context.Context, db bun.IDB, eventID int64) ([]*Attendance, error) {
	db = r.resolveDB(db)
	var rows []*Attendance
	err := db.NewSelect().
		Model(&rows).
		Where("a.event_id = ?", eventID).
		Order("a.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return rows, nil
}
