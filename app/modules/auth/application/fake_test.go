package authservice

import (
	"time"

	authdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/domain"
	authjwt "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/infrastructure/jwt"
)

// ------------------------
// Fake JWT Provider
// ------------------------

type FakeProvider struct {
	trace []string

	GenerateTokenFunc func(subject string, role authdomain.Role, ttl time.Duration) (string, error)
	ValidateTokenFunc func(tokenString string) (*authdomain.Claims, error)
}

func NewFakeProvider() *FakeProvider {
	return &FakeProvider{trace: []string{}}
}

func (f *FakeProvider) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeProvider) GenerateToken(subject string, role authdomain.Role, ttl time.Duration) (string, error) {
	f.record("GenerateToken")
	if f.GenerateTokenFunc != nil {
		return f.GenerateTokenFunc(subject, role, ttl)
	}
	return "token-" + subject, nil
}

func (f *FakeProvider) ValidateToken(tokenString string) (*authdomain.Claims, error) {
	f.record("ValidateToken")
	if f.ValidateTokenFunc != nil {
		return f.ValidateTokenFunc(tokenString)
	}
	return nil, authjwt.ErrInvalidToken
}

func (f *FakeProvider) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ authjwt.Provider = (*FakeProvider)(nil)
