package auditdb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the contract for audit log persistence. There is no
// update or delete path.
type Repository interface {
	// Insert appends an entry.
	Insert(ctx context.Context, db bun.IDB, entry *Entry) error

	// List returns the newest entries first, at most limit of them.
	List(ctx context.Context, db bun.IDB, limit int) ([]*Entry, error)
}
