package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestID)
	router.Use(h.withLogging)

	router.Route("/api/items", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/note", h.createNote)
		r.Post("/file", h.createFile)
		r.Put("/note/{id}", h.updateNote)
		r.Delete("/{id}", h.deleteItem)
		r.Post("/{id}/reveal", h.reveal)
		r.Post("/{id}/conceal", h.conceal)
		r.Get("/{id}/export", h.export)
		r.Get("/{id}/preview", h.preview)
	})

	return router
}
