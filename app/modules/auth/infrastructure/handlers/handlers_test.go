package authhandlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	authservice "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/application"
	authdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestAuthHandlers_HandleLogin(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tracer := noop.NewTracerProvider().Tracer("test")

	tests := []struct {
		name         string
		body         string
		setupService func(*FakeService)
		wantStatus   int
		wantToken    string
	}{
		{
			name: "success",
			body: `{"username":"organizer","password":"hunter22"}`,
			setupService: func(s *FakeService) {
				s.LoginFunc = func(ctx context.Context, username, password string) (*authservice.LoginResponse, error) {
					return &authservice.LoginResponse{Token: "signed", Role: authdomain.RoleAdmin, ExpiresAt: time.Now()}, nil
				}
			},
			wantStatus: http.StatusOK,
			wantToken:  "signed",
		},
		{
			name:       "wrong credentials",
			body:       `{"username":"organizer","password":"nope"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing password",
			body:       `{"username":"organizer"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown field",
			body:       `{"username":"organizer","password":"x","admin":true}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "service failure",
			body: `{"username":"organizer","password":"hunter22"}`,
			setupService: func(s *FakeService) {
				s.LoginFunc = func(ctx context.Context, username, password string) (*authservice.LoginResponse, error) {
					return nil, errors.New("boom")
				}
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &FakeService{}
			if tt.setupService != nil {
				tt.setupService(svc)
			}
			h := NewAuthHandlers(svc, logger, tracer)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			h.HandleLogin(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantToken != "" {
				var body map[string]any
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				assert.Equal(t, tt.wantToken, body["token"])
				assert.Equal(t, "admin", body["role"])
			}
		})
	}
}

func TestAuthHandlers_RequireRole(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tracer := noop.NewTracerProvider().Tracer("test")

	editor := authdomain.Grant{Subject: "desk", Role: authdomain.RoleEditor, ExpiresAt: time.Now().Add(time.Hour)}
	admin := authdomain.Grant{Subject: "organizer", Role: authdomain.RoleAdmin, ExpiresAt: time.Now().Add(time.Hour)}

	tests := []struct {
		name       string
		header     string
		required   authdomain.Role
		authorize  func(ctx context.Context, token string) (authdomain.Grant, error)
		wantStatus int
		wantGrant  *authdomain.Grant
	}{
		{
			name:     "admin passes admin route",
			header:   "Bearer good",
			required: authdomain.RoleAdmin,
			authorize: func(ctx context.Context, token string) (authdomain.Grant, error) {
				assert.Equal(t, "good", token)
				return admin, nil
			},
			wantStatus: http.StatusNoContent,
			wantGrant:  &admin,
		},
		{
			name:     "editor blocked from admin route",
			header:   "Bearer good",
			required: authdomain.RoleAdmin,
			authorize: func(ctx context.Context, token string) (authdomain.Grant, error) {
				return editor, nil
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:     "lowercase scheme accepted",
			header:   "bearer good",
			required: authdomain.RoleEditor,
			authorize: func(ctx context.Context, token string) (authdomain.Grant, error) {
				return editor, nil
			},
			wantStatus: http.StatusNoContent,
			wantGrant:  &editor,
		},
		{
			name:       "no header",
			required:   authdomain.RoleEditor,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:     "expired token",
			header:   "Bearer old",
			required: authdomain.RoleEditor,
			authorize: func(ctx context.Context, token string) (authdomain.Grant, error) {
				return authdomain.Grant{}, authservice.ErrExpiredToken
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &FakeService{AuthorizeFunc: tt.authorize}
			h := NewAuthHandlers(svc, logger, tracer)

			var seen *authdomain.Grant
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if g, ok := authdomain.GrantFromContext(r.Context()); ok {
					seen = &g
				}
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/admin/bonus", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.RequireRole(tt.required)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantGrant, seen)
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter := NewIPRateLimiter(0, 2)
	handler := RateLimitMiddleware(limiter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = "10.0.0.7:5555"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	other := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	other.RemoteAddr = "10.0.0.8:5555"
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, other)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestIPRateLimiter_PrunesIdleEntries(t *testing.T) {
	limiter := NewIPRateLimiter(1, 1)
	for i := 0; i <= cleanupThreshold; i++ {
		limiter.GetLimiter(fmt.Sprintf("10.1.%d.%d", i/256, i%256))
	}
	for _, e := range limiter.ips {
		e.lastSeen = time.Now().Add(-2 * maxIdleAge)
	}
	limiter.GetLimiter("fresh")

	assert.Len(t, limiter.ips, 1)
}
