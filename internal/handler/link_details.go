package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tinyapp/tinylinks/internal/middleware"
	"github.com/tinyapp/tinylinks/internal/models"
	"github.com/tinyapp/tinylinks/internal/service"
)

// LinkDetailsHandler returns one link with its full visit history. Only
// the owner may view the details page.
func (h *Handler) LinkDetailsHandler(rw http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok || userID == "" {
		http.Error(rw, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	shortCode := chi.URLParam(r, "shortCode")

	record, err := h.registry.Get(shortCode)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.Error(rw, "Short link not found", http.StatusNotFound)
			return
		}
		http.Error(rw, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if record.OwnerID != userID {
		http.Error(rw, "Your user permissions do not allow you to access this link", http.StatusForbidden)
		return
	}

	h.writeJSON(rw, http.StatusOK, models.LinkDetailsResponse{
		ShortCode:    record.ShortCode,
		ShortURL:     h.shortURL(record.ShortCode),
		LongURL:      record.LongURL,
		TotalVisits:  record.TotalVisits,
		UniqueVisits: record.UniqueVisits,
		VisitHistory: record.VisitHistory,
	})
}
