package bonusdb

import (
	"context"
	"fmt"

	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/dberr"
	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new bonus repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// Insert appends an award and sets its ID.
func (r *Impl) Insert(ctx context.Context, db bun.IDB, award *BonusPoint) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(award).Returning("id").Exec(ctx); err != nil {
		if dberr.IsForeignKeyViolation(err) {
			return ErrTeamNotFound
		}
		return fmt.Errorf("failed to insert bonus points: %w", err)
	}
	return nil
}

// ListByTeam returns the team's awards ordered by award time, then id.
func (r *Impl) ListByTeam(ctx context.Context, db bun.IDB, teamID int64) ([]*BonusPoint, error) {
	db = r.resolveDB(db)
	var awards []*BonusPoint
	if err := db.NewSelect().
		Model(&awards).
		Where("b.team_id = ?", teamID).
		Order("b.awarded_at ASC", "b.id ASC").
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list bonus points: %w", err)
	}
	return awards, nil
}

// ListAll returns every award ordered by award time, then id.
func (r *Impl) ListAll(ctx context.Context, db bun.IDB) ([]*BonusPoint, error) {
	db = r.resolveDB(db)
	var awards []*BonusPoint
	if err := db.NewSelect().
		Model(&awards).
		Order("b.awarded_at ASC", "b.id ASC").
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list bonus points: %w", err)
	}
	return awards, nil
}
