package authhandlers

import (
	"context"

	authservice "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/application"
	authdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/domain"
)

// ------------------------
// Fake Service
// ------------------------

type FakeService struct {
	LoginFunc     func(ctx context.Context, username, password string) (*authservice.LoginResponse, error)
	AuthorizeFunc func(ctx context.Context, tokenString string) (authdomain.Grant, error)
}

func (f *FakeService) Login(ctx context.Context, username, password string) (*authservice.LoginResponse, error) {
	if f.LoginFunc != nil {
		return f.LoginFunc(ctx, username, password)
	}
	return nil, authservice.ErrInvalidCredentials
}

func (f *FakeService) Authorize(ctx context.Context, tokenString string) (authdomain.Grant, error) {
	if f.AuthorizeFunc != nil {
		return f.AuthorizeFunc(ctx, tokenString)
	}
	return authdomain.Grant{}, authservice.ErrMissingToken
}

var _ authservice.Service = (*FakeService)(nil)
