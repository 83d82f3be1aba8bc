package eventrouter

import (
	eventhandlers "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/event/infrastructure/handlers"
	"github.com/go-chi/chi/v5"
)

// Configure mounts the public event reads.
func Configure(api chi.Router, handlers eventhandlers.Handlers) {
	api.Get("/events", handlers.HandleListEvents)
	api.Get("/events/{id}", handlers.HandleGetEvent)
}

// ConfigureAdmin mounts event and attendance writes on an already
// authenticated router.
func ConfigureAdmin(admin chi.Router, handlers eventhandlers.Handlers) {
	admin.Route("/events", func(r chi.Router) {
		r.Post("/", handlers.HandleCreateEvent)
		r.Patch("/{id}", handlers.HandleUpdateEvent)
		r.Delete("/{id}", handlers.HandleDeactivateEvent)
		r.Post("/{id}/attendance", handlers.HandleRecordAttendance)
		r.Post("/{id}/attendance/batch", handlers.HandleRecordBatch)
		r.Post("/{id}/import", handlers.HandleImportAttendance)
	})
}
