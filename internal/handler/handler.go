package handler

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/tinyapp/tinylinks/internal/middleware"
	"github.com/tinyapp/tinylinks/internal/models"
	"github.com/tinyapp/tinylinks/internal/service"
	"go.uber.org/zap"
)

type Handler struct {
	registry *service.Registry
	users    *service.Users
	auth     *middleware.AuthMiddleware
	visitors *middleware.VisitorSessions
	baseURL  string
	logger   *zap.Logger
}

func NewHandler(
	registry *service.Registry,
	users *service.Users,
	auth *middleware.AuthMiddleware,
	visitors *middleware.VisitorSessions,
	baseURL string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		registry: registry,
		users:    users,
		auth:     auth,
		visitors: visitors,
		baseURL:  baseURL,
		logger:   logger,
	}
}

func (h *Handler) shortURL(shortCode string) string {
	full, _ := url.JoinPath(h.baseURL, shortCode)
	return full
}

func (h *Handler) linkResponse(record models.LinkRecord) models.LinkResponse {
	return models.LinkResponse{
		ShortCode:    record.ShortCode,
		ShortURL:     h.shortURL(record.ShortCode),
		LongURL:      record.LongURL,
		TotalVisits:  record.TotalVisits,
		UniqueVisits: record.UniqueVisits,
	}
}

func (h *Handler) writeJSON(rw http.ResponseWriter, statusCode int, payload any) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(statusCode)

	encoder := json.NewEncoder(rw)
	if err := encoder.Encode(payload); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

// decodeJSON rejects non-JSON content types and unknown fields the way all
// API handlers do.
func decodeJSON(rw http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(rw, "Content-Type must be application/json", http.StatusBadRequest)
		return false
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		http.Error(rw, "Invalid JSON", http.StatusBadRequest)
		return false
	}

	return true
}
