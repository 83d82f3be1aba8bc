package scoringdb

import (
	"context"

	scoringdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/scoring/domain"
	"github.com/uptrace/bun"
)

// Repository loads the rows scoring reads. Run LoadSnapshot inside one
// transaction to get a consistent view.
type Repository interface {
	LoadSnapshot(ctx context.Context, db bun.IDB) (scoringdomain.Snapshot, error)
}
