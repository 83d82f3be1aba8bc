package bonushandlers

import (
	"errors"
	"log/slog"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"

	authdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/domain"
	bonusservice "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/bonus/application"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/httputil"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/observability/attr"
	"go.opentelemetry.io/otel/trace"
)

// Handlers exposes the HTTP surface of the bonus module.
type Handlers interface {
	HandleAwardBonus(w http.ResponseWriter, r *http.Request)
	HandleListBonuses(w http.ResponseWriter, r *http.Request)
}

// BonusHandlers implements Handlers.
type BonusHandlers struct {
	service bonusservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewBonusHandlers creates a new BonusHandlers instance.
func NewBonusHandlers(service bonusservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &BonusHandlers{service: service, logger: logger, tracer: tracer}
}

// AwardBonusRequest is the body of POST /api/admin/bonus.
type AwardBonusRequest struct {
	TeamName string `json:"team_name"`
	Points   int    `json:"points"`
	Reason   string `json:"reason"`
}

func (r AwardBonusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.TeamName, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Points, validation.Required),
		validation.Field(&r.Reason, validation.Required, validation.Length(1, 500)),
	)
}

// HandleAwardBonus serves POST /api/admin/bonus.
func (h *BonusHandlers) HandleAwardBonus(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "BonusHandlers.HandleAwardBonus")
	defer span.End()

	grant, _ := authdomain.GrantFromContext(ctx)

	var req AwardBonusRequest
	if err := httputil.ReadJSON(w, r, &req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	award, err := h.service.AwardBonus(ctx, grant, bonusservice.AwardInput{
		TeamName: req.TeamName,
		Points:   req.Points,
		Reason:   req.Reason,
	})
	if err != nil {
		h.writeServiceError(w, r, err, "failed to award bonus")
		return
	}
	_ = httputil.WriteJSON(w, http.StatusCreated, award)
}

// HandleListBonuses serves GET /api/teams/{name}/bonuses.
func (h *BonusHandlers) HandleListBonuses(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "BonusHandlers.HandleListBonuses")
	defer span.End()

	name, ok := httputil.NameParam(w, r)
	if !ok {
		return
	}
	awards, err := h.service.ListBonuses(ctx, name)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to list bonuses")
		return
	}
	_ = httputil.WriteJSON(w, http.StatusOK, awards)
}

func (h *BonusHandlers) writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case errors.Is(err, authdomain.ErrUnauthenticated):
		httputil.WriteError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, authdomain.ErrForbidden):
		httputil.WriteError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, bonusservice.ErrTeamNotFound):
		httputil.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, bonusservice.ErrZeroPoints),
		errors.Is(err, bonusservice.ErrEmptyReason):
		httputil.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), msg, attr.ExtractCorrelationID(r.Context()), attr.Error(err))
		httputil.WriteError(w, http.StatusInternalServerError, msg)
	}
}
