package eventhandlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation"

	authdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/domain"
	eventservice "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/event/application"
	eventdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/event/domain"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/httputil"
)

var eventTypes = []any{
	eventdomain.TypeTechSharing,
	eventdomain.TypeWorkshop,
	eventdomain.TypeHackathon,
	eventdomain.TypePresentation,
}

// CreateEventRequest is the body of POST /api/admin/events.
type CreateEventRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	EventType    string `json:"event_type"`
	EventDate    string `json:"event_date"`
	MemberPoints *int   `json:"member_points"`
	CoachPoints  *int   `json:"coach_points"`
}

func (r CreateEventRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.EventType, validation.In(eventTypes...)),
		validation.Field(&r.MemberPoints, validation.Min(0)),
		validation.Field(&r.CoachPoints, validation.Min(0)),
	)
}

// UpdateEventRequest is the body of PATCH /api/admin/events/{id}.
type UpdateEventRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	EventType    *string `json:"event_type"`
	EventDate    *string `json:"event_date"`
	MemberPoints *int    `json:"member_points"`
	CoachPoints  *int    `json:"coach_points"`
}

func (r UpdateEventRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&r.EventType, validation.In(eventTypes...)),
		validation.Field(&r.MemberPoints, validation.Min(0)),
		validation.Field(&r.CoachPoints, validation.Min(0)),
	)
}

// RecordAttendanceRequest is the body of POST /api/admin/events/{id}/attendance.
type RecordAttendanceRequest struct {
	MemberID    int64  `json:"member_id"`
	CoachName   string `json:"coach_name"`
	Attended    bool   `json:"attended"`
	Sessions    int    `json:"sessions"`
	SessionType string `json:"session_type"`
	Notes       string `json:"notes"`
}

func (r RecordAttendanceRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.MemberID, validation.Min(int64(0))),
		validation.Field(&r.CoachName, validation.Length(0, 200)),
		validation.Field(&r.Sessions, validation.Min(0)),
		validation.Field(&r.Notes, validation.Length(0, 500)),
	)
}

// BatchAttendanceRequest is the body of POST
// /api/admin/events/{id}/attendance/batch. Member keys are member ids.
type BatchAttendanceRequest struct {
	Members map[string]bool `json:"members"`
	Coaches map[string]int  `json:"coaches"`
}

func (r BatchAttendanceRequest) Validate() error {
	if len(r.Members) == 0 && len(r.Coaches) == 0 {
		return errors.New("members or coaches is required")
	}
	if _, err := r.memberIDs(); err != nil {
		return err
	}
	for name, n := range r.Coaches {
		if n < 0 {
			return fmt.Errorf("coaches: negative sessions for %q", name)
		}
	}
	return nil
}

// memberIDs parses the member keys. Keys that spell the same id ("7" and
// "07") are rejected rather than one silently replacing the other.
func (r BatchAttendanceRequest) memberIDs() (map[int64]bool, error) {
	out := make(map[int64]bool, len(r.Members))
	keys := make(map[int64]string, len(r.Members))
	for k, v := range r.Members {
		id, err := strconv.ParseInt(k, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("members: invalid member id %q", k)
		}
		if prev, ok := keys[id]; ok {
			return nil, fmt.Errorf("members: %q and %q name the same member", prev, k)
		}
		keys[id] = k
		out[id] = v
	}
	return out, nil
}

// HandleCreateEvent serves POST /api/admin/events.
func (h *EventHandlers) HandleCreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "EventHandlers.HandleCreateEvent")
	defer span.End()

	grant, _ := authdomain.GrantFromContext(ctx)

	var req CreateEventRequest
	if !decode(w, r, &req) {
		return
	}

	event, err := h.service.CreateEvent(ctx, grant, eventservice.CreateEventInput{
		Name:         req.Name,
		Description:  req.Description,
		EventType:    req.EventType,
		EventDate:    req.EventDate,
		MemberPoints: req.MemberPoints,
		CoachPoints:  req.CoachPoints,
	})
	if err != nil {
		h.writeServiceError(w, r, err, "failed to create event")
		return
	}
	_ = httputil.WriteJSON(w, http.StatusCreated, event)
}

// HandleUpdateEvent serves PATCH /api/admin/events/{id}.
func (h *EventHandlers) HandleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "EventHandlers.HandleUpdateEvent")
	defer span.End()

	grant, _ := authdomain.GrantFromContext(ctx)

	id, ok := eventID(w, r)
	if !ok {
		return
	}
	var req UpdateEventRequest
	if !decode(w, r, &req) {
		return
	}

	event, err := h.service.UpdateEvent(ctx, grant, id, eventservice.UpdateEventInput{
		Name:         req.Name,
		Description:  req.Description,
		EventType:    req.EventType,
		EventDate:    req.EventDate,
		MemberPoints: req.MemberPoints,
		CoachPoints:  req.CoachPoints,
	})
	if err != nil {
		h.writeServiceError(w, r, err, "failed to update event")
		return
	}
	_ = httputil.WriteJSON(w, http.StatusOK, event)
}

// HandleDeactivateEvent serves DELETE /api/admin/events/{id}.
func (h *EventHandlers) HandleDeactivateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "EventHandlers.HandleDeactivateEvent")
	defer span.End()

	grant, _ := authdomain.GrantFromContext(ctx)

	id, ok := eventID(w, r)
	if !ok {
		return
	}
	if err := h.service.DeactivateEvent(ctx, grant, id); err != nil {
		h.writeServiceError(w, r, err, "failed to deactivate event")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleRecordAttendance serves POST /api/admin/events/{id}/attendance.
func (h *EventHandlers) HandleRecordAttendance(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "EventHandlers.HandleRecordAttendance")
	defer span.End()

	grant, _ := authdomain.GrantFromContext(ctx)

	id, ok := eventID(w, r)
	if !ok {
		return
	}
	var req RecordAttendanceRequest
	if !decode(w, r, &req) {
		return
	}

	rec, err := h.service.RecordAttendance(ctx, grant, eventservice.RecordAttendanceInput{
		EventID:     id,
		Attendee:    eventdomain.Attendee{MemberID: req.MemberID, CoachName: req.CoachName},
		Attended:    req.Attended,
		Sessions:    req.Sessions,
		SessionType: req.SessionType,
		Notes:       req.Notes,
	})
	if err != nil {
		h.writeServiceError(w, r, err, "failed to record attendance")
		return
	}
	_ = httputil.WriteJSON(w, http.StatusCreated, rec)
}

// HandleRecordBatch serves POST /api/admin/events/{id}/attendance/batch.
// Members and coaches are written in one transaction.
func (h *EventHandlers) HandleRecordBatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "EventHandlers.HandleRecordBatch")
	defer span.End()

	grant, _ := authdomain.GrantFromContext(ctx)

	id, ok := eventID(w, r)
	if !ok {
		return
	}
	var req BatchAttendanceRequest
	if !decode(w, r, &req) {
		return
	}
	members, err := req.memberIDs()
	if err != nil {
		httputil.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.service.RecordBatch(ctx, grant, id, eventservice.BatchInput{Members: members, Coaches: req.Coaches})
	if err != nil {
		h.writeServiceError(w, r, err, "failed to record attendance batch")
		return
	}
	_ = httputil.WriteJSON(w, http.StatusCreated, res)
}

// HandleImportAttendance serves POST /api/admin/events/{id}/import with the
// spreadsheet in the multipart field "file".
func (h *EventHandlers) HandleImportAttendance(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "EventHandlers.HandleImportAttendance")
	defer span.End()

	grant, _ := authdomain.GrantFromContext(ctx)

	id, ok := eventID(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid multipart upload")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		httputil.WriteError(w, http.StatusBadRequest, `missing multipart field "file"`)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	report, err := h.service.ImportAttendance(ctx, grant, id, header.Filename, data)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to import attendance")
		return
	}
	_ = httputil.WriteJSON(w, http.StatusOK, report)
}
