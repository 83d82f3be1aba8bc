package scoringhandlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	authdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/domain"
	scoringservice "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/scoring/application"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/httputil"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/observability/attr"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Handlers exposes the HTTP surface of the scoring module.
type Handlers interface {
	HandleLeaderboard(w http.ResponseWriter, r *http.Request)
	HandleExportLeaderboard(w http.ResponseWriter, r *http.Request)
	HandleTeamDetail(w http.ResponseWriter, r *http.Request)
	HandleMemberScores(w http.ResponseWriter, r *http.Request)
	HandleCoachLeaderboard(w http.ResponseWriter, r *http.Request)
	HandleCoachDetail(w http.ResponseWriter, r *http.Request)
	HandleEventAnalytics(w http.ResponseWriter, r *http.Request)
	HandleEventStats(w http.ResponseWriter, r *http.Request)
	HandleEventChart(w http.ResponseWriter, r *http.Request)
	HandleIntegrityReport(w http.ResponseWriter, r *http.Request)
}

// ScoringHandlers implements Handlers.
type ScoringHandlers struct {
	service scoringservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewScoringHandlers creates a new ScoringHandlers instance.
func NewScoringHandlers(service scoringservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &ScoringHandlers{service: service, logger: logger, tracer: tracer}
}

// HandleLeaderboard serves GET /api/leaderboard?limit=n.
func (h *ScoringHandlers) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ScoringHandlers.HandleLeaderboard")
	defer span.End()

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			httputil.WriteError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	board, err := h.service.Leaderboard(ctx, limit)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to load leaderboard")
		return
	}
	_ = httputil.WriteJSON(w, http.StatusOK, board)
}

// HandleExportLeaderboard serves GET /api/leaderboard/export.xlsx.
func (h *ScoringHandlers) HandleExportLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ScoringHandlers.HandleExportLeaderboard")
	defer span.End()

	data, err := h.service.ExportLeaderboard(ctx)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to export leaderboard")
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="leaderboard.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// HandleTeamDetail serves GET /api/teams/{name}.
func (h *ScoringHandlers) HandleTeamDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ScoringHandlers.HandleTeamDetail")
	defer span.End()

	name, ok := httputil.NameParam(w, r)
	if !ok {
		return
	}
	detail, err := h.service.TeamDetail(ctx, name)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to load team")
		return
	}
	_ = httputil.WriteJSON(w, http.StatusOK, detail)
}

// HandleMemberScores serves GET /api/teams/{name}/members and
// GET /api/members?team=name.
func (h *ScoringHandlers) HandleMemberScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ScoringHandlers.HandleMemberScores")
	defer span.End()

	team, ok := httputil.NameParam(w, r)
	if !ok {
		return
	}
	if team == "" {
		team = r.URL.Query().Get("team")
	}

	scores, err := h.service.MemberScores(ctx, team)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to load member scores")
		return
	}
	_ = httputil.WriteJSON(w, http.StatusOK, scores)
}

// HandleCoachLeaderboard serves GET /api/leaderboard/coaches.
func (h *ScoringHandlers) HandleCoachLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ScoringHandlers.HandleCoachLeaderboard")
	defer span.End()

	coaches, err := h.service.CoachLeaderboard(ctx)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to load coach leaderboard")
		return
	}
	_ = httputil.WriteJSON(w, http.StatusOK, coaches)
}

// HandleCoachDetail serves GET /api/coaches/{name}.
func (h *ScoringHandlers) HandleCoachDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ScoringHandlers.HandleCoachDetail")
	defer span.End()

	name, ok := httputil.NameParam(w, r)
	if !ok {
		return
	}
	detail, err := h.service.CoachDetail(ctx, name)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to load coach")
		return
	}
	_ = httputil.WriteJSON(w, http.StatusOK, detail)
}

// HandleEventAnalytics serves GET /api/analytics/events.
func (h *ScoringHandlers) HandleEventAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ScoringHandlers.HandleEventAnalytics")
	defer span.End()

	stats, err := h.service.EventAnalytics(ctx)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to load event analytics")
		return
	}
	_ = httputil.WriteJSON(w, http.StatusOK, stats)
}

// HandleEventStats serves GET /api/analytics/events/{id}.
func (h *ScoringHandlers) HandleEventStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ScoringHandlers.HandleEventStats")
	defer span.End()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httputil.WriteError(w, http.StatusBadRequest, "event id must be a positive integer")
		return
	}

	stats, err := h.service.EventStats(ctx, id)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to load event stats")
		return
	}
	_ = httputil.WriteJSON(w, http.StatusOK, stats)
}

// HandleEventChart serves GET /api/analytics/events/chart.png.
func (h *ScoringHandlers) HandleEventChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ScoringHandlers.HandleEventChart")
	defer span.End()

	png, err := h.service.EventAnalyticsChart(ctx)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to render chart")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

// HandleIntegrityReport serves GET /api/admin/integrity.
func (h *ScoringHandlers) HandleIntegrityReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ScoringHandlers.HandleIntegrityReport")
	defer span.End()

	grant, _ := authdomain.GrantFromContext(ctx)
	report, err := h.service.IntegrityReport(ctx, grant)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to build integrity report")
		return
	}
	_ = httputil.WriteJSON(w, http.StatusOK, report)
}

func (h *ScoringHandlers) writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case errors.Is(err, authdomain.ErrUnauthenticated):
		httputil.WriteError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, authdomain.ErrForbidden):
		httputil.WriteError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, scoringservice.ErrTeamNotFound),
		errors.Is(err, scoringservice.ErrCoachNotFound),
		errors.Is(err, scoringservice.ErrEventNotFound):
		httputil.WriteError(w, http.StatusNotFound, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), msg, attr.ExtractCorrelationID(r.Context()), attr.Error(err))
		httputil.WriteError(w, http.StatusInternalServerError, msg)
	}
}
