package bonusdb

import (
	"time"

	"github.com/uptrace/bun"
)

// BonusPoint is the bonus_points table. Rows are only ever inserted.
type BonusPoint struct {
	bun.BaseModel `bun:"table:bonus_points,alias:b"`

	ID        int64     `bun:"id,pk,autoincrement"`
	TeamID    int64     `bun:"team_id,notnull"`
	Points    int       `bun:"points,notnull"`
	Reason    string    `bun:"reason,notnull"`
	AwardedBy string    `bun:"awarded_by,notnull"`
	AwardedAt time.Time `bun:"awarded_at,notnull"`
}
