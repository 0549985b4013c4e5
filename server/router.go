package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"ticktock/config"
	"ticktock/handlers"
	"ticktock/middleware"
	"ticktock/repository"
	"ticktock/service"
)

// NewRouter wires the JSON API over store.
func NewRouter(cfg *config.Config, store repository.Store) http.Handler {
	auth := middleware.NewAuth(cfg.JWTSecret, store)
	timesheets := service.NewTimesheets(store)

	authHandler := handlers.NewAuthHandler(cfg, store, auth)
	timesheetHandler := handlers.NewTimesheetHandler(timesheets)

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)
	router.NotFound(handlers.NotFound)
	router.MethodNotAllowed(handlers.MethodNotAllowed)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	router.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/logout", authHandler.Logout)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(auth.Require)

			r.Get("/auth/session", authHandler.Session)
			r.Get("/projects", timesheetHandler.Projects)

			r.Get("/timesheets", timesheetHandler.List)
			r.Get("/timesheets/export", timesheetHandler.Export)
			r.Get("/timesheets/{id}", timesheetHandler.Detail)

			r.Get("/timesheets/{id}/entries", timesheetHandler.Entries)
			r.Post("/timesheets/{id}/entries", timesheetHandler.Entries)
			r.Put("/timesheets/{id}/entries", timesheetHandler.Entries)
			r.Delete("/timesheets/{id}/entries", timesheetHandler.Entries)
		})
	})

	return router
}
