package bonusrouter

import (
	bonushandlers "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/bonus/infrastructure/handlers"
	"github.com/go-chi/chi/v5"
)

// Configure mounts the public bonus history.
func Configure(api chi.Router, handlers bonushandlers.Handlers) {
	api.Get("/teams/{name}/bonuses", handlers.HandleListBonuses)
}

// ConfigureAdmin mounts bonus awards on an already authenticated router.
func ConfigureAdmin(admin chi.Router, handlers bonushandlers.Handlers) {
	admin.Post("/bonus", handlers.HandleAwardBonus)
}
