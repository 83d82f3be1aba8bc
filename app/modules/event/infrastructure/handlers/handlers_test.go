package eventhandlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	authdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/domain"
	eventservice "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/event/application"
	eventdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/event/domain"
)

var editor = authdomain.Grant{Subject: "ed", Role: authdomain.RoleEditor}

func newRouter(svc eventservice.Service) http.Handler {
	h := NewEventHandlers(svc, slog.New(slog.NewTextHandler(io.Discard, nil)), noop.NewTracerProvider().Tracer("test"))
	r := chi.NewRouter()
	r.Get("/api/events", h.HandleListEvents)
	r.Get("/api/events/{id}", h.HandleGetEvent)
	r.Group(func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				next.ServeHTTP(w, req.WithContext(authdomain.WithGrant(req.Context(), editor)))
			})
		})
		r.Post("/api/admin/events", h.HandleCreateEvent)
		r.Patch("/api/admin/events/{id}", h.HandleUpdateEvent)
		r.Delete("/api/admin/events/{id}", h.HandleDeactivateEvent)
		r.Post("/api/admin/events/{id}/attendance", h.HandleRecordAttendance)
		r.Post("/api/admin/events/{id}/attendance/batch", h.HandleRecordBatch)
		r.Post("/api/admin/events/{id}/import", h.HandleImportAttendance)
	})
	return r
}

func TestEventHandlers_HandleCreateEvent(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{name: "created", body: `{"name":"Event A","event_date":"2026-03-20","member_points":1,"coach_points":2}`, wantStatus: http.StatusCreated},
		{name: "missing name", body: `{"event_date":"2026-03-20"}`, wantStatus: http.StatusBadRequest},
		{name: "negative points", body: `{"name":"Event A","member_points":-1}`, wantStatus: http.StatusBadRequest},
		{name: "unknown type", body: `{"name":"Event A","event_type":"party"}`, wantStatus: http.StatusBadRequest},
		{name: "bad date", body: `{"name":"Event A","event_date":"soonish"}`, serviceErr: eventservice.ErrInvalidDate, wantStatus: http.StatusBadRequest},
		{name: "duplicate", body: `{"name":"Event A"}`, serviceErr: eventservice.ErrEventExists, wantStatus: http.StatusConflict},
		{name: "unauthenticated", body: `{"name":"Event A"}`, serviceErr: authdomain.ErrUnauthenticated, wantStatus: http.StatusUnauthorized},
		{name: "internal", body: `{"name":"Event A"}`, serviceErr: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got eventservice.CreateEventInput
			svc := &FakeService{
				CreateEventFunc: func(ctx context.Context, grant authdomain.Grant, input eventservice.CreateEventInput) (eventdomain.Event, error) {
					got = input
					if tt.serviceErr != nil {
						return eventdomain.Event{}, tt.serviceErr
					}
					return eventdomain.Event{ID: 3, Name: input.Name, MemberPoints: *input.MemberPoints, CoachPoints: *input.CoachPoints}, nil
				},
			}

			rec := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/admin/events", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusCreated {
				var event eventdomain.Event
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&event))
				assert.Equal(t, int64(3), event.ID)
				assert.Equal(t, "2026-03-20", got.EventDate)
			}
		})
	}
}

func TestEventHandlers_HandleUpdateEvent(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{name: "updated", path: "/api/admin/events/3", body: `{"member_points":5}`, wantStatus: http.StatusOK},
		{name: "bad id", path: "/api/admin/events/abc", body: `{"member_points":5}`, wantStatus: http.StatusBadRequest},
		{name: "blank name", path: "/api/admin/events/3", body: `{"name":""}`, wantStatus: http.StatusBadRequest},
		{name: "not found", path: "/api/admin/events/3", body: `{"member_points":5}`, serviceErr: eventservice.ErrEventNotFound, wantStatus: http.StatusNotFound},
		{name: "empty patch", path: "/api/admin/events/3", body: `{}`, serviceErr: eventservice.ErrEmptyPatch, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &FakeService{
				UpdateEventFunc: func(ctx context.Context, grant authdomain.Grant, id int64, patch eventservice.UpdateEventInput) (eventdomain.Event, error) {
					if tt.serviceErr != nil {
						return eventdomain.Event{}, tt.serviceErr
					}
					return eventdomain.Event{ID: id, MemberPoints: *patch.MemberPoints}, nil
				},
			}

			rec := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, tt.path, strings.NewReader(tt.body)))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestEventHandlers_HandleDeactivateEvent(t *testing.T) {
	var gotID int64
	svc := &FakeService{
		DeactivateEventFunc: func(ctx context.Context, grant authdomain.Grant, id int64) error {
			gotID = id
			return nil
		},
	}

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/admin/events/8", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(8), gotID)
}

func TestEventHandlers_HandleRecordAttendance(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{name: "member", body: `{"member_id":4,"attended":true}`, wantStatus: http.StatusCreated},
		{name: "coach", body: `{"coach_name":"Coach Ana","attended":true,"sessions":2}`, wantStatus: http.StatusCreated},
		{name: "negative sessions", body: `{"coach_name":"Coach Ana","sessions":-1}`, wantStatus: http.StatusBadRequest},
		{name: "ambiguous", body: `{"member_id":4,"coach_name":"Coach Ana"}`, serviceErr: eventservice.ErrInvalidAttendee, wantStatus: http.StatusBadRequest},
		{name: "unknown member", body: `{"member_id":99}`, serviceErr: eventservice.ErrMemberNotFound, wantStatus: http.StatusNotFound},
		{name: "unknown coach", body: `{"coach_name":"Zed"}`, serviceErr: eventservice.ErrCoachNotFound, wantStatus: http.StatusNotFound},
		{name: "inactive event", body: `{"member_id":4}`, serviceErr: eventservice.ErrEventInactive, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got eventservice.RecordAttendanceInput
			svc := &FakeService{
				RecordAttendanceFunc: func(ctx context.Context, grant authdomain.Grant, input eventservice.RecordAttendanceInput) (eventdomain.AttendanceRecord, error) {
					got = input
					if tt.serviceErr != nil {
						return eventdomain.AttendanceRecord{}, tt.serviceErr
					}
					return eventdomain.AttendanceRecord{EventID: input.EventID, Attended: input.Attended}, nil
				},
			}

			rec := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/admin/events/2/attendance", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, int64(2), got.EventID)
			}
		})
	}
}

func TestEventHandlers_HandleRecordBatch(t *testing.T) {
	var got eventservice.BatchInput
	calls := 0
	svc := &FakeService{
		RecordBatchFunc: func(ctx context.Context, grant authdomain.Grant, eventID int64, batch eventservice.BatchInput) (eventservice.BatchResult, error) {
			calls++
			got = batch
			return eventservice.BatchResult{
				EventID:      eventID,
				Recorded:     len(batch.Members) + len(batch.Coaches),
				Members:      len(batch.Members),
				Coaches:      len(batch.Coaches),
				PointsEarned: 5,
			}, nil
		},
	}

	body := `{"members":{"12":true,"13":false},"coaches":{"Coach Ana":2}}`
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/admin/events/5/attendance/batch", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, calls)
	assert.Equal(t, map[int64]bool{12: true, 13: false}, got.Members)
	assert.Equal(t, map[string]int{"Coach Ana": 2}, got.Coaches)

	var resp eventservice.BatchResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, eventservice.BatchResult{EventID: 5, Recorded: 3, Members: 2, Coaches: 1, PointsEarned: 5}, resp)

	tests := []struct {
		name string
		body string
	}{
		{name: "empty", body: `{}`},
		{name: "non numeric member", body: `{"members":{"abc":true}}`},
		{name: "negative sessions", body: `{"coaches":{"Coach Ana":-1}}`},
		{name: "same member twice", body: `{"members":{"1":true,"01":false}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls = 0
			rec := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/admin/events/5/attendance/batch", strings.NewReader(tt.body)))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Zero(t, calls)
		})
	}
}

func TestEventHandlers_HandleRecordBatch_Rejected(t *testing.T) {
	svc := &FakeService{
		RecordBatchFunc: func(ctx context.Context, grant authdomain.Grant, eventID int64, batch eventservice.BatchInput) (eventservice.BatchResult, error) {
			return eventservice.BatchResult{}, fmt.Errorf("%w: %q", eventservice.ErrCoachNotFound, "Coach Nobody")
		},
	}

	body := `{"members":{"1":true},"coaches":{"Coach Nobody":1}}`
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/admin/events/5/attendance/batch", strings.NewReader(body)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Coach Nobody")
}

func multipartUpload(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = io.WriteString(fw, content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestEventHandlers_HandleImportAttendance(t *testing.T) {
	tests := []struct {
		name       string
		field      string
		serviceErr error
		wantStatus int
	}{
		{name: "imported", field: "file", wantStatus: http.StatusOK},
		{name: "wrong field", field: "upload", wantStatus: http.StatusBadRequest},
		{name: "unsupported", field: "file", serviceErr: fmt.Errorf("%w: unsupported file type", eventservice.ErrInvalidUpload), wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotName string
			var gotData []byte
			svc := &FakeService{
				ImportAttendanceFunc: func(ctx context.Context, grant authdomain.Grant, eventID int64, filename string, data []byte) (eventservice.ImportReport, error) {
					gotName, gotData = filename, data
					if tt.serviceErr != nil {
						return eventservice.ImportReport{}, tt.serviceErr
					}
					return eventservice.ImportReport{EventID: eventID, Processed: 1, Recorded: 1, Errors: []eventservice.RowError{}}, nil
				},
			}

			body, contentType := multipartUpload(t, tt.field, "attendance.csv", "member_name\nJovan Reyes\n")
			req := httptest.NewRequest(http.MethodPost, "/api/admin/events/4/import", body)
			req.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "attendance.csv", gotName)
				assert.Equal(t, "member_name\nJovan Reyes\n", string(gotData))
				var report eventservice.ImportReport
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&report))
				assert.Equal(t, int64(4), report.EventID)
			}
		})
	}
}

func TestEventHandlers_Reads(t *testing.T) {
	var gotActive bool
	svc := &FakeService{
		ListEventsFunc: func(ctx context.Context, activeOnly bool) ([]eventdomain.Event, error) {
			gotActive = activeOnly
			return []eventdomain.Event{{ID: 1, Name: "Event A"}}, nil
		},
		GetEventFunc: func(ctx context.Context, id int64) (eventdomain.EventWithAttendance, error) {
			if id != 1 {
				return eventdomain.EventWithAttendance{}, eventservice.ErrEventNotFound
			}
			return eventdomain.EventWithAttendance{Event: eventdomain.Event{ID: 1}}, nil
		},
	}
	router := newRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/events", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gotActive)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/events?active=false", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, gotActive)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/events/1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/events/2", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/events/0", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
