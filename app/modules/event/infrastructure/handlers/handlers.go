package eventhandlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation"

	authdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/domain"
	eventservice "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/event/application"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/httputil"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/observability/attr"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

// maxUploadBytes caps attendance uploads.
const maxUploadBytes = 10 << 20

// Handlers exposes the HTTP surface of the event module.
type Handlers interface {
	HandleListEvents(w http.ResponseWriter, r *http.Request)
	HandleGetEvent(w http.ResponseWriter, r *http.Request)

	HandleCreateEvent(w http.ResponseWriter, r *http.Request)
	HandleUpdateEvent(w http.ResponseWriter, r *http.Request)
	HandleDeactivateEvent(w http.ResponseWriter, r *http.Request)
	HandleRecordAttendance(w http.ResponseWriter, r *http.Request)
	HandleRecordBatch(w http.ResponseWriter, r *http.Request)
	HandleImportAttendance(w http.ResponseWriter, r *http.Request)
}

// EventHandlers implements Handlers.
type EventHandlers struct {
	service eventservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewEventHandlers creates a new EventHandlers instance.
func NewEventHandlers(service eventservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &EventHandlers{service: service, logger: logger, tracer: tracer}
}

func (h *EventHandlers) writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case errors.Is(err, authdomain.ErrUnauthenticated):
		httputil.WriteError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, authdomain.ErrForbidden):
		httputil.WriteError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, eventservice.ErrEventNotFound),
		errors.Is(err, eventservice.ErrMemberNotFound),
		errors.Is(err, eventservice.ErrCoachNotFound):
		httputil.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, eventservice.ErrEventExists):
		httputil.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, eventservice.ErrInvalidEventName),
		errors.Is(err, eventservice.ErrInvalidPoints),
		errors.Is(err, eventservice.ErrInvalidEventType),
		errors.Is(err, eventservice.ErrInvalidDate),
		errors.Is(err, eventservice.ErrInvalidAttendee),
		errors.Is(err, eventservice.ErrEventInactive),
		errors.Is(err, eventservice.ErrEmptyPatch),
		errors.Is(err, eventservice.ErrEmptyBatch),
		errors.Is(err, eventservice.ErrInvalidUpload):
		httputil.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), msg, attr.ExtractCorrelationID(r.Context()), attr.Error(err))
		httputil.WriteError(w, http.StatusInternalServerError, msg)
	}
}

// eventID reads the {id} path parameter, writing a 400 when it is malformed.
func eventID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httputil.WriteError(w, http.StatusBadRequest, fmt.Sprintf("invalid event id %q", chi.URLParam(r, "id")))
		return 0, false
	}
	return id, true
}

func decode(w http.ResponseWriter, r *http.Request, req validation.Validatable) bool {
	if err := httputil.ReadJSON(w, r, req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, err.Error())
		return false
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}
