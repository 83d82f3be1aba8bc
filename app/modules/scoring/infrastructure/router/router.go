package scoringrouter

import (
	scoringhandlers "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/scoring/infrastructure/handlers"
	"github.com/go-chi/chi/v5"
)

// Configure mounts the public score reads.
func Configure(api chi.Router, handlers scoringhandlers.Handlers) {
	api.Route("/leaderboard", func(r chi.Router) {
		r.Get("/", handlers.HandleLeaderboard)
		r.Get("/coaches", handlers.HandleCoachLeaderboard)
		r.Get("/export.xlsx", handlers.HandleExportLeaderboard)
	})
	api.Get("/teams/{name}", handlers.HandleTeamDetail)
	api.Get("/teams/{name}/members", handlers.HandleMemberScores)
	api.Get("/members", handlers.HandleMemberScores)
	api.Get("/coaches/{name}", handlers.HandleCoachDetail)
	api.Route("/analytics/events", func(r chi.Router) {
		r.Get("/", handlers.HandleEventAnalytics)
		r.Get("/chart.png", handlers.HandleEventChart)
		r.Get("/{id}", handlers.HandleEventStats)
	})
}

// ConfigureAdmin mounts the integrity report on an already authenticated
// router.
func ConfigureAdmin(admin chi.Router, handlers scoringhandlers.Handlers) {
	admin.Get("/integrity", handlers.HandleIntegrityReport)
}
