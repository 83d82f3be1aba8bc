package rosterdb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the contract for team, member and coach persistence.
type Repository interface {
	CreateTeam(ctx context.Context, db bun.IDB, team *Team) error
	GetTeamByID(ctx context.Context, db bun.IDB, id int64) (*Team, error)
	GetTeamByName(ctx context.Context, db bun.IDB, name string) (*Team, error)
	// ListTeams returns teams ordered by name.
	ListTeams(ctx context.Context, db bun.IDB, activeOnly bool) ([]*Team, error)
	// ListTeamsByCoach returns the teams whose coach_name equals coachName.
	ListTeamsByCoach(ctx context.Context, db bun.IDB, coachName string) ([]*Team, error)

	CreateMember(ctx context.Context, db bun.IDB, member *Member) error
	GetMember(ctx context.Context, db bun.IDB, id int64) (*Member, error)
	// ListMembers returns members ordered by name. teamID 0 lists every team.
	ListMembers(ctx context.Context, db bun.IDB, teamID int64) ([]*Member, error)
	// ClearLeader unsets is_leader on every member of the team except keepID.
	ClearLeader(ctx context.Context, db bun.IDB, teamID, keepID int64) error

	CreateCoach(ctx context.Context, db bun.IDB, coach *Coach) error
	GetCoachByName(ctx context.Context, db bun.IDB, name string) (*Coach, error)
	ListCoaches(ctx context.Context, db bun.IDB) ([]*Coach, error)
}
