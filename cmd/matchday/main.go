package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/matchday/matchday-go/docs"
	"github.com/matchday/matchday-go/internal/app"
	"github.com/matchday/matchday-go/internal/config"
)

// @title Matchday API
// @version 1.0
// @description Ticket browsing and mock checkout flow for IPL matches.
// @host localhost:8080
// @BasePath /
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.New()
	if err != nil {
		logger.Error("failed to load config", "error", err)
	}

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("failed to create application", "error", err)
	}

	if err := application.Run(context.Background()); err != nil {
		logger.Error("application finished with error", "error", err)
	}
}
