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
	router.Use(withGZip)
	router.Use(h.withTimeout)

	router.Get("/api/version/", h.getServerVersion)

	// routes without authorization
	router.Route("/api/auth", func(r chi.Router) {
		r.Post("/signup", h.signUp)
		r.Post("/params", h.keyParams)
		r.Post("/login", h.login)
	})

	router.Route("/api/vault", func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/", h.createEntry)
		r.Get("/", h.listEntries)
		r.Put("/{id}", h.updateEntry)
		r.Delete("/{id}", h.deleteEntry)
	})

	router.NotFound(notFound)
	// registered last so mounted subrouters inherit it
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
