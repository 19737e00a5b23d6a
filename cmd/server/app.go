package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/restaurant-api/internal/config"
	"github.com/phrazzld/restaurant-api/internal/service"
	"github.com/phrazzld/restaurant-api/internal/service/auth"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	stores *appStores

	jwtService        auth.JWTService
	restaurantService service.RestaurantService
}

// newApplication creates a new application instance with all dependencies initialized.
// The stores must already be connected.
func newApplication(cfg *config.Config, logger *slog.Logger, stores *appStores) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		stores: stores,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized")

	app.restaurantService, err = service.NewRestaurantService(stores.restaurants, stores.menuItems, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create restaurant service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup(ctx context.Context) {
	if app.stores != nil {
		if err := app.stores.Close(ctx); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
