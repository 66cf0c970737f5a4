package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"

	"idconsole/internal/config"
	"idconsole/internal/identity"
	"idconsole/internal/location"
	"idconsole/internal/person"
	"idconsole/internal/timezone"
	"idconsole/internal/types"
)

// IdentityAssembler builds one identity per request
type IdentityAssembler interface {
	Assemble(ctx context.Context, req identity.Request) types.Identity
}

// App encapsulates application dependencies
type App struct {
	router    *gin.Engine
	logger    *slog.Logger
	assembler IdentityAssembler
	cfg       *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	var opts []identity.Option
	if cfg.App.Timezones {
		tzSvc, err := timezone.NewService()
		if err != nil {
			return nil, fmt.Errorf("failed to create timezone service: %w", err)
		}
		opts = append(opts, identity.WithTimezones(tzSvc))
	}

	assembler := identity.NewAssembler(
		logger,
		location.NewLocationService(logger, location.Options{
			MaxAttempts:    cfg.Resolver.MaxAttempts,
			AttemptTimeout: cfg.Resolver.AttemptTimeout,
			BaseURL:        cfg.Providers.NominatimURL,
			UserAgent:      cfg.Resolver.UserAgent,
		}),
		person.NewPersonService(logger, cfg.Providers.RandomUserURL, cfg.Resolver.UserAgent),
		opts...,
	)

	return newApp(cfg, logger, assembler), nil
}

func newApp(cfg *config.Config, logger *slog.Logger, assembler IdentityAssembler) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery(), requestID(), requestLogger(logger))

	app := &App{
		router:    router,
		logger:    logger,
		assembler: assembler,
		cfg:       cfg,
	}

	logger.Info("application initialized")

	// Register routes
	app.registerRoutes()

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
