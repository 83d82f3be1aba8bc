package authhandlers

import (
	"log/slog"
	"net/http"

	authservice "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/application"
	authdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/domain"
	"go.opentelemetry.io/otel/trace"
)

// Handlers exposes the HTTP surface of the auth module.
type Handlers interface {
	HandleLogin(w http.ResponseWriter, r *http.Request)
	RequireRole(role authdomain.Role) func(http.Handler) http.Handler
}

// AuthHandlers implements Handlers.
type AuthHandlers struct {
	service authservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewAuthHandlers creates a new AuthHandlers instance.
func NewAuthHandlers(service authservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &AuthHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}
