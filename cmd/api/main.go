package main

//go:generate go run github.com/swaggo/swag/cmd/swag@latest init -g docs.go -o ../../docs --parseDependency

import (
	"log"
	"log/slog"

	"idconsole/internal/config"

	_ "idconsole/docs" // Import generated docs
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := cfg.NewLogger()
	slog.SetDefault(logger) // Set as default logger for the application

	// Create app
	app, err := NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	// Start server
	logger.Info("starting server",
		"service", serviceName,
		"addr", cfg.GetServerAddr(),
		"max_attempts", cfg.Resolver.MaxAttempts,
		"attempt_timeout", cfg.Resolver.AttemptTimeout,
		"nominatim_url", cfg.Providers.NominatimURL,
		"randomuser_url", cfg.Providers.RandomUserURL,
		"timezones", cfg.App.Timezones,
	)
	if err := app.Run(cfg.GetServerAddr()); err != nil {
		logger.Error("server failed", "error", err)
		log.Fatal(err)
	}
}
