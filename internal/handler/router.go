package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	mw "github.com/tinyapp/tinylinks/internal/middleware"
)

func (h *Handler) SetupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(mw.Logger(h.logger))

	r.Route("/api", func(r chi.Router) {
		r.Use(mw.GzipMiddleware)

		r.Post("/register", h.RegisterHandler)
		r.Post("/login", h.LoginHandler)
		r.Post("/logout", h.LogoutHandler)

		r.Group(func(r chi.Router) {
			r.Use(h.auth.Require)

			r.Post("/links", h.CreateLinkHandler)
			r.Get("/links", h.UserLinksHandler)
			r.Route("/links/{shortCode}", func(r chi.Router) {
				r.Get("/", h.LinkDetailsHandler)
				r.Put("/", h.UpdateLinkHandler)
				r.Delete("/", h.DeleteLinkHandler)
			})
		})
	})

	// Redirect stays public: anyone may traverse a short link.
	r.Get("/{shortCode}", h.RedirectHandler)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})

	return r
}
