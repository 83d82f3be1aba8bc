package rosterservice

import (
	"context"

	authdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/domain"
	rosterdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/roster/domain"
)

// Service defines the roster module's operations. Writes take the caller's
// grant explicitly.
type Service interface {
	CreateTeam(ctx context.Context, grant authdomain.Grant, input CreateTeamInput) (rosterdomain.Team, error)
	CreateCoach(ctx context.Context, grant authdomain.Grant, input CreateCoachInput) (rosterdomain.Coach, error)
	AddMember(ctx context.Context, grant authdomain.Grant, input AddMemberInput) (AddMemberResult, error)

	ListTeams(ctx context.Context) ([]rosterdomain.Team, error)
	GetTeam(ctx context.Context, name string) (rosterdomain.TeamWithMembers, error)
	ListCoaches(ctx context.Context) ([]rosterdomain.Coach, error)
}

// CreateTeamInput describes a new team.
type CreateTeamInput struct {
	Name         string
	TotalMembers int
	CoachName    string
	Department   string
}

// CreateCoachInput describes a new coach.
type CreateCoachInput struct {
	Name       string
	Department string
}

// AddMemberInput describes a member joining a team.
type AddMemberInput struct {
	TeamName   string
	Name       string
	Department string
	IsLeader   bool
}

// AddMemberResult is the stored member plus non-fatal warnings.
type AddMemberResult struct {
	Member   rosterdomain.Member `json:"member"`
	Warnings []string            `json:"warnings,omitempty"`
}
