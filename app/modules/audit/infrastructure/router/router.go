package auditrouter

import (
	audithandlers "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/audit/infrastructure/handlers"
	"github.com/go-chi/chi/v5"
)

// Configure mounts the audit routes on an already authenticated admin router.
func Configure(admin chi.Router, handlers audithandlers.Handlers) {
	admin.Get("/audit", handlers.HandleList)
}
