package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"weathrly.app/internal/app"
)

func main() {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found or error loading it")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.NewApplication(ctx)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	cfg := application.Config()
	slog.Info("Configuration loaded successfully",
		"port", cfg.Server.Port,
		"catalog", cfg.Catalog.Type.String(),
		"liveData", cfg.Weather.HasCredential())

	slog.Info("Starting Weathrly...")
	startErr := application.Start(ctx)

	if err := application.Shutdown(); err != nil {
		slog.Error("Error during graceful shutdown", "error", err)
	}

	if startErr != nil {
		slog.Error("Application stopped with error", "error", startErr)
		os.Exit(1)
	}
}
