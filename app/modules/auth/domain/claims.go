package authdomain

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrUnauthenticated is returned when a grant carries no valid identity.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden is returned when a grant's role is insufficient.
	ErrForbidden = errors.New("insufficient role for this action")
)

// Claims represents the domain model for a validated admin token.
type Claims struct {
	TokenID   string
	Subject   string
	Role      Role
	ExpiresAt time.Time
	IssuedAt  time.Time
}

// IsExpired checks if the claims have expired.
func (c *Claims) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}

// Grant is the authorization passed explicitly into every administrative
// operation. The zero Grant authorizes nothing.
type Grant struct {
	Subject   string
	Role      Role
	ExpiresAt time.Time
}

// GrantFromClaims builds the grant for validated claims.
func GrantFromClaims(c *Claims) Grant {
	if c == nil {
		return Grant{}
	}
	return Grant{Subject: c.Subject, Role: c.Role, ExpiresAt: c.ExpiresAt}
}

// Require returns nil when the grant is live and its role allows required.
func (g Grant) Require(required Role) error {
	if g.Subject == "" || !g.Role.IsValid() {
		return ErrUnauthenticated
	}
	if !g.ExpiresAt.IsZero() && time.Now().After(g.ExpiresAt) {
		return ErrUnauthenticated
	}
	if !g.Role.Allows(required) {
		return ErrForbidden
	}
	return nil
}

type grantKey struct{}

// WithGrant stores g on ctx for the HTTP layer to hand to services.
func WithGrant(ctx context.Context, g Grant) context.Context {
	return context.WithValue(ctx, grantKey{}, g)
}

// GrantFromContext returns the grant stored by WithGrant.
func GrantFromContext(ctx context.Context) (Grant, bool) {
	g, ok := ctx.Value(grantKey{}).(Grant)
	return g, ok
}
