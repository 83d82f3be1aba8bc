// Package eventdomain holds events, attendance records and the point
// snapshot rule applied when attendance is recorded.
package eventdomain

import (
	"errors"
	"strings"
	"time"
)

// Event types offered to administrators.
const (
	TypeTechSharing  = "tech_sharing"
	TypeWorkshop     = "workshop"
	TypeHackathon    = "hackathon"
	TypePresentation = "presentation"
)

// DefaultSessionType is stamped on attendance rows that name none.
const DefaultSessionType = "day"

// ErrInvalidAttendee is returned when an attendee names both or neither of a
// member and a coach.
var ErrInvalidAttendee = errors.New("attendee must be exactly one of member or coach")

// ValidType reports whether t is a known event type.
func ValidType(t string) bool {
	switch t {
	case TypeTechSharing, TypeWorkshop, TypeHackathon, TypePresentation:
		return true
	}
	return false
}

// Event is a scored hackathon session.
type Event struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	EventType    string    `json:"event_type"`
	EventDate    time.Time `json:"event_date"`
	MemberPoints int       `json:"member_points"`
	CoachPoints  int       `json:"coach_points"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Attendee identifies who attended: a member by id or a coach by name.
type Attendee struct {
	MemberID  int64  `json:"member_id,omitempty"`
	CoachName string `json:"coach_name,omitempty"`
}

// IsCoach reports whether the attendee is a coach.
func (a Attendee) IsCoach() bool { return a.CoachName != "" }

// Validate enforces that exactly one of member and coach is set.
func (a Attendee) Validate() error {
	hasMember := a.MemberID > 0
	hasCoach := strings.TrimSpace(a.CoachName) != ""
	if hasMember == hasCoach {
		return ErrInvalidAttendee
	}
	if a.MemberID < 0 {
		return ErrInvalidAttendee
	}
	return nil
}

// PointsFor returns the points an attendance row earns at record time. Members
// earn the event's member points once; coaches earn coach points per session.
// Absent attendees earn nothing.
func PointsFor(e Event, a Attendee, attended bool, sessions int) int {
	if !attended {
		return 0
	}
	if a.IsCoach() {
		return NormalizeSessions(sessions) * e.CoachPoints
	}
	return e.MemberPoints
}

// NormalizeSessions treats a missing session count as a single session.
func NormalizeSessions(sessions int) int {
	if sessions < 1 {
		return 1
	}
	return sessions
}

// AttendanceRecord is a stored attendance row.
type AttendanceRecord struct {
	ID           int64     `json:"id"`
	EventID      int64     `json:"event_id"`
	MemberID     *int64    `json:"member_id,omitempty"`
	CoachName    *string   `json:"coach_name,omitempty"`
	Attended     bool      `json:"attended"`
	PointsEarned int       `json:"points_earned"`
	Sessions     int       `json:"sessions"`
	SessionType  string    `json:"session_type"`
	Notes        string    `json:"notes,omitempty"`
	RecordedBy   string    `json:"recorded_by"`
	RecordedAt   time.Time `json:"recorded_at"`
}

// EventWithAttendance is an event and every attendance row recorded for it.
type EventWithAttendance struct {
	Event
	Attendance []AttendanceRecord `json:"attendance"`
}
