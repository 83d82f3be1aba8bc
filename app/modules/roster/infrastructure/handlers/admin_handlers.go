package rosterhandlers

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"

	authdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/domain"
	rosterservice "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/roster/application"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/httputil"
)

// CreateTeamRequest is the body of POST /api/admin/teams.
type CreateTeamRequest struct {
	Name         string `json:"name"`
	TotalMembers int    `json:"total_members"`
	CoachName    string `json:"coach_name"`
	Department   string `json:"department"`
}

func (r CreateTeamRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.TotalMembers, validation.Min(0)),
		validation.Field(&r.CoachName, validation.Length(0, 200)),
	)
}

// AddMemberRequest is the body of POST /api/admin/teams/{name}/members.
type AddMemberRequest struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	IsLeader   bool   `json:"is_leader"`
}

func (r AddMemberRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
	)
}

// CreateCoachRequest is the body of POST /api/admin/coaches.
type CreateCoachRequest struct {
	Name       string `json:"name"`
	Department string `json:"department"`
}

func (r CreateCoachRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
	)
}

// HandleCreateTeam serves POST /api/admin/teams.
func (h *RosterHandlers) HandleCreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RosterHandlers.HandleCreateTeam")
	defer span.End()

	grant, _ := authdomain.GrantFromContext(ctx)

	var req CreateTeamRequest
	if !decode(w, r, &req) {
		return
	}

	team, err := h.service.CreateTeam(ctx, grant, rosterservice.CreateTeamInput{
		Name:         req.Name,
		TotalMembers: req.TotalMembers,
		CoachName:    req.CoachName,
		Department:   req.Department,
	})
	if err != nil {
		h.writeServiceError(w, r, err, "failed to create team")
		return
	}
	_ = httputil.WriteJSON(w, http.StatusCreated, team)
}

// HandleAddMember serves POST /api/admin/teams/{name}/members.
func (h *RosterHandlers) HandleAddMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RosterHandlers.HandleAddMember")
	defer span.End()

	grant, _ := authdomain.GrantFromContext(ctx)

	team, ok := httputil.NameParam(w, r)
	if !ok {
		return
	}
	var req AddMemberRequest
	if !decode(w, r, &req) {
		return
	}

	res, err := h.service.AddMember(ctx, grant, rosterservice.AddMemberInput{
		TeamName:   team,
		Name:       req.Name,
		Department: req.Department,
		IsLeader:   req.IsLeader,
	})
	if err != nil {
		h.writeServiceError(w, r, err, "failed to add member")
		return
	}
	_ = httputil.WriteJSON(w, http.StatusCreated, res)
}

// HandleCreateCoach serves POST /api/admin/coaches.
func (h *RosterHandlers) HandleCreateCoach(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RosterHandlers.HandleCreateCoach")
	defer span.End()

	grant, _ := authdomain.GrantFromContext(ctx)

	var req CreateCoachRequest
	if !decode(w, r, &req) {
		return
	}

	coach, err := h.service.CreateCoach(ctx, grant, rosterservice.CreateCoachInput{Name: req.Name, Department: req.Department})
	if err != nil {
		h.writeServiceError(w, r, err, "failed to create coach")
		return
	}
	_ = httputil.WriteJSON(w, http.StatusCreated, coach)
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
