package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tinyapp/tinylinks/internal/middleware"
	"github.com/tinyapp/tinylinks/internal/models"
	"github.com/tinyapp/tinylinks/internal/service"
)

func (h *Handler) UpdateLinkHandler(rw http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok || userID == "" {
		http.Error(rw, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	shortCode := chi.URLParam(r, "shortCode")

	var req models.UpdateLinkRequest
	if !decodeJSON(rw, r, &req) {
		return
	}

	record, err := h.registry.Update(shortCode, req.LongURL, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyURL):
			http.Error(rw, "URL cannot be empty", http.StatusBadRequest)
		case errors.Is(err, service.ErrNotFound):
			http.Error(rw, "Short link not found", http.StatusNotFound)
		case errors.Is(err, service.ErrUnauthorized):
			http.Error(rw, "Unauthorized Permissions - Request not complete", http.StatusForbidden)
		default:
			http.Error(rw, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	h.writeJSON(rw, http.StatusOK, h.linkResponse(record))
}
