package rosterhandlers

import (
	"net/http"

	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/httputil"
)

// HandleListTeams serves GET /api/teams.
func (h *RosterHandlers) HandleListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RosterHandlers.HandleListTeams")
	defer span.End()

	teams, err := h.service.ListTeams(ctx)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to list teams")
		return
	}
	_ = httputil.WriteJSON(w, http.StatusOK, teams)
}

// HandleGetTeam serves GET /api/roster/teams/{name}.
func (h *RosterHandlers) HandleGetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RosterHandlers.HandleGetTeam")
	defer span.End()

	name, ok := httputil.NameParam(w, r)
	if !ok {
		return
	}
	team, err := h.service.GetTeam(ctx, name)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to get team")
		return
	}
	_ = httputil.WriteJSON(w, http.StatusOK, team)
}

// HandleListCoaches serves GET /api/coaches.
func (h *RosterHandlers) HandleListCoaches(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RosterHandlers.HandleListCoaches")
	defer span.End()

	coaches, err := h.service.ListCoaches(ctx)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to list coaches")
		return
	}
	_ = httputil.WriteJSON(w, http.StatusOK, coaches)
}
