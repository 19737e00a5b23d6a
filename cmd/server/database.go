package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/restaurant-api/internal/config"
	"github.com/phrazzld/restaurant-api/internal/platform/logger"
	"github.com/phrazzld/restaurant-api/internal/platform/mongodb"
	"github.com/phrazzld/restaurant-api/internal/platform/sqlstore"
	"github.com/phrazzld/restaurant-api/internal/store"
)

// appStores holds the stores of the configured backend and releases its
// connections on Close.
type appStores struct {
	restaurants store.RestaurantStore
	menuItems   store.MenuItemStore
	close       func(ctx context.Context) error
}

// Close releases the backend's connections.
func (s *appStores) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// setupAppDatabase connects to the configured backend and builds its stores.
// SQL backends are migrated to the latest schema first.
func setupAppDatabase(ctx context.Context, cfg *config.Config, log *slog.Logger) (*appStores, error) {
	switch cfg.Database.Driver {
	case "mongo":
		return setupMongoStores(ctx, cfg.Database, log)
	default:
		return setupSQLStores(ctx, cfg.Database, log)
	}
}

func setupMongoStores(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*appStores, error) {
	client, err := mongodb.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	db := client.Database(cfg.Name)
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	log.Info("Database connection established",
		slog.String("driver", cfg.Driver),
		slog.String("database", cfg.Name))

	return &appStores{
		restaurants: mongodb.NewRestaurantStore(db.Collection(mongodb.RestaurantsCollection), log),
		menuItems:   mongodb.NewMenuItemStore(db.Collection(mongodb.MenuItemsCollection), log),
		close:       client.Disconnect,
	}, nil
}

func setupSQLStores(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*appStores, error) {
	dialect, err := sqlstore.ParseDialect(cfg.Driver)
	if err != nil {
		return nil, err
	}

	db, err := sqlstore.Open(ctx, dialect, cfg.URL)
	if err != nil {
		return nil, err
	}

	if err := sqlstore.Migrate(logger.WithLogger(ctx, log), db, dialect); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database connection established", slog.String("driver", cfg.Driver))

	return &appStores{
		restaurants: sqlstore.NewRestaurantStore(db, dialect, log),
		menuItems:   sqlstore.NewMenuItemStore(db, dialect, log),
		close: func(context.Context) error {
			return db.Close()
		},
	}, nil
}
