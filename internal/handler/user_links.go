package handler

import (
	"net/http"

	"github.com/tinyapp/tinylinks/internal/middleware"
	"github.com/tinyapp/tinylinks/internal/models"
)

// UserLinksHandler lists the links owned by the requesting user, oldest
// first.
func (h *Handler) UserLinksHandler(rw http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok || userID == "" {
		http.Error(rw, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	records := h.registry.ListByOwner(userID)

	response := make([]models.LinkResponse, 0, len(records))
	for _, record := range records {
		response = append(response, h.linkResponse(record))
	}

	h.writeJSON(rw, http.StatusOK, response)
}
