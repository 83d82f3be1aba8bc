package auth

import (
	"context"
	"net/http"

	authservice "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/application"
	authdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/domain"
	authhandlers "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/infrastructure/handlers"
	authjwt "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/infrastructure/jwt"
	authrouter "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/infrastructure/router"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/observability"
	"github.com/Black-And-White-Club/cirqit-scoreboard/config"
	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"
)

// Module represents the auth module.
type Module struct {
	Service  authservice.Service
	handlers authhandlers.Handlers
	limiter  *authhandlers.IPRateLimiter
}

// NewAuthModule creates the auth module from the admin accounts in cfg.
func NewAuthModule(ctx context.Context, cfg config.AuthConfig, obs observability.Observability) *Module {
	logger := obs.Provider.Logger
	tracer := obs.Registry.Tracer

	logger.InfoContext(ctx, "auth.NewAuthModule initializing", "admins", len(cfg.Admins))

	accounts := make([]authservice.Account, 0, len(cfg.Admins))
	for _, a := range cfg.Admins {
		accounts = append(accounts, authservice.Account{
			Username:     a.Username,
			PasswordHash: a.PasswordHash,
			Role:         authdomain.Role(a.Role),
		})
	}

	provider := authjwt.NewProvider(cfg.JWTSecret, cfg.Issuer)
	service := authservice.NewService(provider, authservice.Config{
		Accounts: accounts,
		TokenTTL: cfg.TokenTTL,
	}, logger, tracer)

	return &Module{
		Service:  service,
		handlers: authhandlers.NewAuthHandlers(service, logger, tracer),
		limiter:  authhandlers.NewIPRateLimiter(rate.Limit(cfg.LoginRateLimit), cfg.LoginBurst),
	}
}

// Mount registers the login route.
func (m *Module) Mount(api chi.Router) {
	authrouter.Configure(api, m.handlers, m.limiter)
}

// RequireRole returns middleware that admits only grants holding role.
func (m *Module) RequireRole(role authdomain.Role) func(http.Handler) http.Handler {
	return m.handlers.RequireRole(role)
}
