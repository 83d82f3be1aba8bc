package authrouter

import (
	authhandlers "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/infrastructure/handlers"
	"github.com/go-chi/chi/v5"
)

// Configure mounts the login endpoint behind the per-IP rate limiter.
func Configure(api chi.Router, handlers authhandlers.Handlers, limiter *authhandlers.IPRateLimiter) {
	api.Route("/auth", func(r chi.Router) {
		r.Use(authhandlers.RateLimitMiddleware(limiter))
		r.Post("/login", handlers.HandleLogin)
	})
}
