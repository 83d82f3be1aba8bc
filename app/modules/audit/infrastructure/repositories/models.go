package auditdb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Entry is one row of the audit log. Rows are only ever inserted.
type Entry struct {
	bun.BaseModel `bun:"table:audit_log,alias:al"`

	ID        int64          `bun:"id,pk,autoincrement"`
	UUID      uuid.UUID      `bun:"uuid,type:uuid,notnull,unique"`
	Action    string         `bun:"action,notnull"`
	Entity    string         `bun:"entity,notnull"`
	EntityID  string         `bun:"entity_id"`
	Actor     string         `bun:"actor,notnull"`
	Details   map[string]any `bun:"details,type:jsonb"`
	CreatedAt time.Time      `bun:"created_at,notnull"`
}
