package main

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/tinyapp/tinylinks/internal/config"
	"github.com/tinyapp/tinylinks/internal/handler"
	"github.com/tinyapp/tinylinks/internal/middleware"
	"github.com/tinyapp/tinylinks/internal/service"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	sugar := logger.Sugar()

	sugar.Infow("Starting tinylinks service")

	cfg, err := config.ParseFlags()
	if err != nil {
		sugar.Fatalw("Configuration error",
			"error", err.Error())
	}

	sugar.Infow(
		"Configuration loaded",
		"server_address", cfg.ServerAddress,
		"base_url", cfg.BaseURL,
	)

	registry := service.NewRegistry(logger)
	users := service.NewUsers(logger)

	auth := middleware.NewAuthMiddleware(cfg.AuthSecret, logger)
	visitors := middleware.NewVisitorSessions(cfg.AuthSecret, logger)

	h := handler.NewHandler(registry, users, auth, visitors, cfg.BaseURL, logger)

	r := h.SetupRouter()

	sugar.Infow(
		"Server starting",
		"address", cfg.ServerAddress,
	)

	if err := http.ListenAndServe(cfg.ServerAddress, r); err != nil {
		sugar.Fatalw(err.Error(), "event", "start server")
	}
}
