package bonusdb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository is append-only: there is no update or delete.
type Repository interface {
	Insert(ctx context.Context, db bun.IDB, award *BonusPoint) error
	// ListByTeam returns the team's awards in award order.
	ListByTeam(ctx context.Context, db bun.IDB, teamID int64) ([]*BonusPoint, error)
	// ListAll returns every award in award order.
	ListAll(ctx context.Context, db bun.IDB) ([]*BonusPoint, error)
}
