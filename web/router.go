package web

import (
	"time"

	"github.com/EyalPasha/Redzone-Companion-My-Players/controller"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/", rootHandler(ctrl, render))

	r.Route("/api", func(r chi.Router) {
		r.Get("/week", weekHandler(ctrl, render))

		r.Route("/lineups", func(r chi.Router) {
			r.Get("/", getLineupsHandler(ctrl, render))
			r.Post("/refresh", refreshLineupsHandler(ctrl, render))
		})

		r.Route("/games", func(r chi.Router) {
			r.Get("/", getGamesHandler(ctrl, render))
			r.Post("/refresh", refreshGamesHandler(ctrl, render))
			r.Post("/window", windowVisibilityHandler(ctrl, render))
			r.Post("/{gameID}/config", saveGameConfigHandler(ctrl, render))
		})

		r.Route("/leagues", func(r chi.Router) {
			r.Get("/", listLeaguesHandler(ctrl, render))
			r.Post("/", addLeagueHandler(ctrl, render))
			r.Get("/discover", discoverLeaguesHandler(ctrl, render))

			r.Route("/{leagueID:[0-9]+}", func(r chi.Router) {
				r.Post("/rename", renameLeagueHandler(ctrl, render))
				r.Post("/hidden", setLeagueHiddenHandler(ctrl, render))
				r.Delete("/", removeLeagueHandler(ctrl, render))
			})
		})

		r.Get("/view", getViewHandler(ctrl, render))
		r.Post("/view", setViewHandler(ctrl, render))

		r.Post("/players/refresh", refreshPlayersHandler(ctrl, render))
		r.Post("/cache/clear", clearCacheHandler(ctrl, render))
	})

	return r
}
