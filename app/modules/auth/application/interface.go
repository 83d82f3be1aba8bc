package authservice

import (
	"context"
	"time"

	authdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/domain"
)

// Service defines the admin authentication service interface.
type Service interface {
	// Login checks an admin's password and issues a signed token.
	Login(ctx context.Context, username, password string) (*LoginResponse, error)

	// Authorize validates a token and returns the grant to pass into
	// administrative operations.
	Authorize(ctx context.Context, tokenString string) (authdomain.Grant, error)
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Token     string          `json:"token"`
	Role      authdomain.Role `json:"role"`
	ExpiresAt time.Time       `json:"expires_at"`
}
