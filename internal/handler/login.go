package handler

import (
	"errors"
	"net/http"

	"github.com/tinyapp/tinylinks/internal/models"
	"github.com/tinyapp/tinylinks/internal/service"
)

func (h *Handler) LoginHandler(rw http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeJSON(rw, r, &req) {
		return
	}

	user, err := h.users.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCredentials):
			http.Error(rw, "Please enter a valid email and password", http.StatusBadRequest)
		case errors.Is(err, service.ErrInvalidCredentials):
			http.Error(rw, "Invalid email or password", http.StatusForbidden)
		default:
			http.Error(rw, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	h.auth.SetUserCookie(rw, user.ID)

	h.writeJSON(rw, http.StatusOK, models.UserResponse{
		ID:    user.ID,
		Email: user.Email,
	})
}

func (h *Handler) LogoutHandler(rw http.ResponseWriter, r *http.Request) {
	h.auth.ClearUserCookie(rw)
	rw.WriteHeader(http.StatusNoContent)
}
