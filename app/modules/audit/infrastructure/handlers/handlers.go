package audithandlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	auditservice "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/audit/application"
	authdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/domain"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/httputil"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/observability/attr"
	"go.opentelemetry.io/otel/trace"
)

// Handlers exposes the HTTP surface of the audit module.
type Handlers interface {
	HandleList(w http.ResponseWriter, r *http.Request)
}

// AuditHandlers implements Handlers.
type AuditHandlers struct {
	service auditservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewAuditHandlers creates a new AuditHandlers instance.
func NewAuditHandlers(service auditservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &AuditHandlers{service: service, logger: logger, tracer: tracer}
}

// HandleList serves GET /api/admin/audit?limit=N.
func (h *AuditHandlers) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "AuditHandlers.HandleList")
	defer span.End()

	grant, ok := authdomain.GrantFromContext(ctx)
	if !ok {
		httputil.WriteError(w, http.StatusUnauthorized, authdomain.ErrUnauthenticated.Error())
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			httputil.WriteError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	records, err := h.service.List(ctx, grant, limit)
	switch {
	case err == nil:
	case errors.Is(err, authdomain.ErrForbidden):
		httputil.WriteError(w, http.StatusForbidden, err.Error())
		return
	case errors.Is(err, authdomain.ErrUnauthenticated):
		httputil.WriteError(w, http.StatusUnauthorized, err.Error())
		return
	default:
		h.logger.ErrorContext(ctx, "Failed to list audit log", attr.ExtractCorrelationID(ctx), attr.Error(err))
		httputil.WriteError(w, http.StatusInternalServerError, "failed to list audit log")
		return
	}

	_ = httputil.WriteJSON(w, http.StatusOK, records)
}
