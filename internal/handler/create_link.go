package handler

import (
	"errors"
	"net/http"

	"github.com/tinyapp/tinylinks/internal/middleware"
	"github.com/tinyapp/tinylinks/internal/models"
	"github.com/tinyapp/tinylinks/internal/service"
	"go.uber.org/zap"
)

func (h *Handler) CreateLinkHandler(rw http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok || userID == "" {
		http.Error(rw, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.CreateLinkRequest
	if !decodeJSON(rw, r, &req) {
		return
	}

	record, err := h.registry.Create(req.LongURL, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyURL):
			http.Error(rw, "URL cannot be empty", http.StatusBadRequest)
		default:
			h.logger.Error("Failed to create link",
				zap.String("userID", userID),
				zap.Error(err))
			http.Error(rw, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	h.writeJSON(rw, http.StatusCreated, h.linkResponse(record))
}
