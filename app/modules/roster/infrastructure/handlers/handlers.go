package rosterhandlers

import (
	"errors"
	"log/slog"
	"net/http"

	authdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/domain"
	rosterservice "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/roster/application"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/httputil"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/observability/attr"
	"go.opentelemetry.io/otel/trace"
)

// Handlers exposes the HTTP surface of the roster module.
type Handlers interface {
	HandleListTeams(w http.ResponseWriter, r *http.Request)
	HandleGetTeam(w http.ResponseWriter, r *http.Request)
	HandleListCoaches(w http.ResponseWriter, r *http.Request)

	HandleCreateTeam(w http.ResponseWriter, r *http.Request)
	HandleAddMember(w http.ResponseWriter, r *http.Request)
	HandleCreateCoach(w http.ResponseWriter, r *http.Request)
}

// RosterHandlers implements Handlers.
type RosterHandlers struct {
	service rosterservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewRosterHandlers creates a new RosterHandlers instance.
func NewRosterHandlers(service rosterservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &RosterHandlers{service: service, logger: logger, tracer: tracer}
}

// writeServiceError maps service errors onto HTTP statuses.
func (h *RosterHandlers) writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case errors.Is(err, authdomain.ErrUnauthenticated):
		httputil.WriteError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, authdomain.ErrForbidden):
		httputil.WriteError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, rosterservice.ErrTeamNotFound),
		errors.Is(err, rosterservice.ErrCoachNotFound):
		httputil.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, rosterservice.ErrTeamExists),
		errors.Is(err, rosterservice.ErrMemberExists),
		errors.Is(err, rosterservice.ErrCoachExists):
		httputil.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, rosterservice.ErrInvalidName),
		errors.Is(err, rosterservice.ErrInvalidMemberCount):
		httputil.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), msg, attr.ExtractCorrelationID(r.Context()), attr.Error(err))
		httputil.WriteError(w, http.StatusInternalServerError, msg)
	}
}
