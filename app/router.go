package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	authdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/domain"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/httputil"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/observability/attr"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router builds the HTTP handler. Public reads live under /api, writes
// under /api/admin behind a bearer token holding at least the editor role.
func (a *App) Router() http.Handler {
	logger := a.Observability.Provider.Logger

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   a.Config.HTTP.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", a.handleHealth)
	if a.Config.Observability.MetricsEnabled {
		r.Handle("/metrics", promhttp.HandlerFor(a.Observability.Registry.Prometheus, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(api chi.Router) {
		a.Auth.Mount(api)
		a.Roster.Mount(api)
		a.Event.Mount(api)
		a.Bonus.Mount(api)
		a.Scoring.Mount(api)

		api.Route("/admin", func(admin chi.Router) {
			admin.Use(a.Auth.RequireRole(authdomain.RoleEditor))
			a.Roster.MountAdmin(admin)
			a.Event.MountAdmin(admin)
			a.Bonus.MountAdmin(admin)
			a.Scoring.MountAdmin(admin)
			a.Audit.MountAdmin(admin)
		})
	})

	return r
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := a.DB.PingContext(ctx); err != nil {
		a.Observability.Provider.Logger.WarnContext(ctx, "Health check failed", attr.Error(err))
		httputil.WriteError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	_ = httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.DebugContext(r.Context(), "HTTP request",
				attr.ExtractCorrelationID(r.Context()),
				attr.String("method", r.Method),
				attr.String("path", r.URL.Path),
				attr.Int("status", ww.Status()),
				attr.Duration("duration", time.Since(start)),
			)
		})
	}
}
