package rosterhandlers

import (
	"context"

	authdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/domain"
	rosterservice "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/roster/application"
	rosterdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/roster/domain"
)

type FakeService struct {
	CreateTeamFunc  func(ctx context.Context, grant authdomain.Grant, input rosterservice.CreateTeamInput) (rosterdomain.Team, error)
	CreateCoachFunc func(ctx context.Context, grant authdomain.Grant, input rosterservice.CreateCoachInput) (rosterdomain.Coach, error)
	AddMemberFunc   func(ctx context.Context, grant authdomain.Grant, input rosterservice.AddMemberInput) (rosterservice.AddMemberResult, error)
	ListTeamsFunc   func(ctx context.Context) ([]rosterdomain.Team, error)
	GetTeamFunc     func(ctx context.Context, name string) (rosterdomain.TeamWithMembers, error)
	ListCoachesFunc func(ctx context.Context) ([]rosterdomain.Coach, error)
}

func (f *FakeService) CreateTeam(ctx context.Context, grant authdomain.Grant, input rosterservice.CreateTeamInput) (rosterdomain.Team, error) {
	if f.CreateTeamFunc != nil {
		return f.CreateTeamFunc(ctx, grant, input)
	}
	return rosterdomain.Team{}, nil
}

func (f *FakeService) CreateCoach(ctx context.Context, grant authdomain.Grant, input rosterservice.CreateCoachInput) (rosterdomain.Coach, error) {
	if f.CreateCoachFunc != nil {
		return f.CreateCoachFunc(ctx, grant, input)
	}
	return rosterdomain.Coach{}, nil
}

func (f *FakeService) AddMember(ctx context.Context, grant authdomain.Grant, input rosterservice.AddMemberInput) (rosterservice.AddMemberResult, error) {
	if f.AddMemberFunc != nil {
		return f.AddMemberFunc(ctx, grant, input)
	}
	return rosterservice.AddMemberResult{}, nil
}

func (f *FakeService) ListTeams(ctx context.Context) ([]rosterdomain.Team, error) {
	if f.ListTeamsFunc != nil {
		return f.ListTeamsFunc(ctx)
	}
	return []rosterdomain.Team{}, nil
}

func (f *FakeService) GetTeam(ctx context.Context, name string) (rosterdomain.TeamWithMembers, error) {
	if f.GetTeamFunc != nil {
		return f.GetTeamFunc(ctx, name)
	}
	return rosterdomain.TeamWithMembers{}, nil
}

func (f *FakeService) ListCoaches(ctx context.Context) ([]rosterdomain.Coach, error) {
	if f.ListCoachesFunc != nil {
		return f.ListCoachesFunc(ctx)
	}
	return []rosterdomain.Coach{}, nil
}

var _ rosterservice.Service = (*FakeService)(nil)
