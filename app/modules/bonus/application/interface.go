package bonusservice

import (
	"context"

	authdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/domain"
	bonusdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/bonus/domain"
	rosterdb "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/roster/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// Service awards and lists bonus points.
type Service interface {
	AwardBonus(ctx context.Context, grant authdomain.Grant, input AwardInput) (bonusdomain.Award, error)
	ListBonuses(ctx context.Context, teamName string) ([]bonusdomain.Award, error)
}

// TeamReader resolves team names.
type TeamReader interface {
	GetTeamByName(ctx context.Context, db bun.IDB, name string) (*rosterdb.Team, error)
}

// AwardInput describes one award. Negative points record a correction.
type AwardInput struct {
	TeamName string
	Points   int
	Reason   string
}
