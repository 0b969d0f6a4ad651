package handler

import (
	"errors"
	"net/http"

	"github.com/tinyapp/tinylinks/internal/models"
	"github.com/tinyapp/tinylinks/internal/service"
	"go.uber.org/zap"
)

func (h *Handler) RegisterHandler(rw http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !decodeJSON(rw, r, &req) {
		return
	}

	user, err := h.users.Register(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCredentials):
			http.Error(rw, "Please enter a valid email and password", http.StatusBadRequest)
		case errors.Is(err, service.ErrEmailTaken):
			http.Error(rw, "This account already exists, please log in instead", http.StatusConflict)
		default:
			h.logger.Error("Failed to register user", zap.Error(err))
			http.Error(rw, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	h.auth.SetUserCookie(rw, user.ID)

	h.writeJSON(rw, http.StatusCreated, models.UserResponse{
		ID:    user.ID,
		Email: user.Email,
	})
}
