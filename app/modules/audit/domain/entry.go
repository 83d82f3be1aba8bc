// Package auditdomain holds the append-only audit trail types.
package auditdomain

import (
	"time"

	"github.com/google/uuid"
)

// Action names recorded by the write paths.
const (
	ActionCreateEvent      = "create_event"
	ActionUpdateEvent      = "update_event"
	ActionDeactivateEvent  = "deactivate_event"
	ActionRecordAttendance = "record_attendance"
	ActionImportAttendance = "import_attendance"
	ActionAwardBonus       = "award_bonus"
	ActionCreateTeam       = "create_team"
	ActionCreateCoach      = "create_coach"
	ActionAddMember        = "add_member"
)

// Entry is what a write path hands to the recorder.
type Entry struct {
	Action   string
	Entity   string
	EntityID string
	Actor    string
	Details  map[string]any
}

// Record is a stored audit entry.
type Record struct {
	UUID      uuid.UUID      `json:"uuid"`
	Action    string         `json:"action"`
	Entity    string         `json:"entity"`
	EntityID  string         `json:"entity_id"`
	Actor     string         `json:"actor"`
	Details   map[string]any `json:"details,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
