package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/phrazzld/restaurant-api/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names.
const (
	RestaurantsCollection = "restaurants"
	MenuItemsCollection   = "menuitems"
)

// connectTimeout bounds the initial connection and ping.
const connectTimeout = 10 * time.Second

// Connect opens a client for cfg.URL and verifies the deployment is reachable.
// The caller owns the client and must Disconnect it.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return client, nil
}

// EnsureIndexes creates the index menu listing and cascade delete rely on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(MenuItemsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "restaurant_id", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create menu item index: %w", err)
	}
	return nil
}
