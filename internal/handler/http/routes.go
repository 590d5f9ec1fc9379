package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.sessions.Manager().LoadAndSave)

	// public routes
	router.Group(func(r chi.Router) {
		r.Post("/api/inquiry", h.submitInquiry)
		r.Post("/login", h.login)
		r.Get("/logout", h.logout)
		r.Post("/logout", h.logout)
	})

	// routes behind an authenticated session
	router.Group(func(r chi.Router) {
		r.Use(h.withAuth)
		r.Get("/dashboard", h.dashboard)
	})

	return router
}
