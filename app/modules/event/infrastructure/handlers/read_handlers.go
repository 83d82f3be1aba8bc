package eventhandlers

import (
	"net/http"

	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/httputil"
)

// HandleListEvents serves GET /api/events. ?active=false includes
// deactivated events.
func (h *EventHandlers) HandleListEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "EventHandlers.HandleListEvents")
	defer span.End()

	activeOnly := r.URL.Query().Get("active") != "false"

	events, err := h.service.ListEvents(ctx, activeOnly)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to list events")
		return
	}
	_ = httputil.WriteJSON(w, http.StatusOK, events)
}

// HandleGetEvent serves GET /api/events/{id}.
func (h *EventHandlers) HandleGetEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "EventHandlers.HandleGetEvent")
	defer span.End()

	id, ok := eventID(w, r)
	if !ok {
		return
	}

	event, err := h.service.GetEvent(ctx, id)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to get event")
		return
	}
	_ = httputil.WriteJSON(w, http.StatusOK, event)
}
