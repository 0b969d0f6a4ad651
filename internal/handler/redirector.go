package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tinyapp/tinylinks/internal/service"
	"go.uber.org/zap"
)

// RedirectHandler resolves a short code and forwards the visitor to the
// target URL, counting the visit against the visitor's session cookie.
func (h *Handler) RedirectHandler(rw http.ResponseWriter, r *http.Request) {
	shortCode := chi.URLParam(r, "shortCode")
	if shortCode == "" {
		http.Error(rw, "Empty short code", http.StatusBadRequest)
		return
	}

	session := h.visitors.FromRequest(r)

	record, session, err := h.registry.RecordVisit(shortCode, session)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.Error(rw, "Short link not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to record visit",
			zap.String("shortCode", shortCode),
			zap.Error(err))
		http.Error(rw, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.visitors.Save(rw, session)

	rw.Header().Set("Location", record.LongURL)
	rw.WriteHeader(http.StatusTemporaryRedirect)
}
