package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tinyapp/tinylinks/internal/middleware"
	"github.com/tinyapp/tinylinks/internal/service"
	"go.uber.org/zap"
)

const testSecret = "test-secret-key"

type testEnv struct {
	registry *service.Registry
	users    *service.Users
	router   *chi.Mux
}

func newTestEnv() *testEnv {
	logger := zap.NewNop()

	registry := service.NewRegistry(logger)
	users := service.NewUsers(logger)
	auth := middleware.NewAuthMiddleware(testSecret, logger)
	visitors := middleware.NewVisitorSessions(testSecret, logger)

	h := NewHandler(registry, users, auth, visitors, "http://localhost:8080", logger)

	return &testEnv{
		registry: registry,
		users:    users,
		router:   h.SetupRouter(),
	}
}

func createTestCookie(userID string) *http.Cookie {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write([]byte(userID))
	signature := mac.Sum(nil)
	signedValue := userID + "." + hex.EncodeToString(signature)

	return &http.Cookie{
		Name:  "user_id",
		Value: signedValue,
	}
}
