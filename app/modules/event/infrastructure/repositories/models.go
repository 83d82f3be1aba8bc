package eventdb

import (
	"time"

	"github.com/uptrace/bun"
)

// Event is the events table.
type Event struct {
	bun.BaseModel `bun:"table:events,alias:e"`

	ID           int64     `bun:"id,pk,autoincrement"`
	Name         string    `bun:"name,notnull,unique"`
	Description  string    `bun:"description"`
	EventType    string    `bun:"event_type,notnull,default:'tech_sharing'"`
	EventDate    time.Time `bun:"event_date,notnull"`
	MemberPoints int       `bun:"member_points,notnull,default:1"`
	CoachPoints  int       `bun:"coach_points,notnull,default:2"`
	IsActive     bool      `bun:"is_active,notnull"`
	CreatedAt    time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt    time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// Attendance is the attendance table. Exactly one of MemberID and CoachName
// is set. PointsEarned is stamped at record time and never recomputed.
type Attendance struct {
	bun.BaseModel `bun:"table:attendance,alias:a"`

	ID           int64     `bun:"id,pk,autoincrement"`
	EventID      int64     `bun:"event_id,notnull"`
	MemberID     *int64    `bun:"member_id"`
	CoachName    *string   `bun:"coach_name"`
	Attended     bool      `bun:"attended,notnull"`
	PointsEarned int       `bun:"points_earned,notnull,default:0"`
	Sessions     int       `bun:"sessions,notnull,default:1"`
	SessionType  string    `bun:"session_type,notnull,default:'day'"`
	Notes        string    `bun:"notes"`
	RecordedBy   string    `bun:"recorded_by,notnull"`
	RecordedAt   time.Time `bun:"recorded_at,notnull"`
}
