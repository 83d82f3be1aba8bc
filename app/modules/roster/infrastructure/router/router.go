package rosterrouter

import (
	rosterhandlers "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/roster/infrastructure/handlers"
	"github.com/go-chi/chi/v5"
)

// Configure mounts the public roster reads.
func Configure(api chi.Router, handlers rosterhandlers.Handlers) {
	api.Get("/teams", handlers.HandleListTeams)
	api.Get("/roster/teams/{name}", handlers.HandleGetTeam)
	api.Get("/coaches", handlers.HandleListCoaches)
}

// ConfigureAdmin mounts roster writes on an already authenticated router.
func ConfigureAdmin(admin chi.Router, handlers rosterhandlers.Handlers) {
	admin.Post("/teams", handlers.HandleCreateTeam)
	admin.Post("/teams/{name}/members", handlers.HandleAddMember)
	admin.Post("/coaches", handlers.HandleCreateCoach)
}
