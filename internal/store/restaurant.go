package store

import (
	"context"

	"github.com/phrazzld/restaurant-api/internal/domain"
)

//go:generate mockgen -source=restaurant.go -destination=../mocks/restaurant_store_mock.go -package=mocks

// RestaurantStore defines the interface for restaurant data persistence.
type RestaurantStore interface {
	// List returns every restaurant. Returns an empty slice when there are none.
	List(ctx context.Context) ([]*domain.Restaurant, error)

	// GetByID retrieves a restaurant by its ID.
	// Returns ErrRestaurantNotFound if the restaurant does not exist.
	GetByID(ctx context.Context, id string) (*domain.Restaurant, error)

	// Create saves a new restaurant and sets its ID.
	Create(ctx context.Context, restaurant *domain.Restaurant) error

	// Update applies the non-nil fields of patch and returns the stored record.
	// Returns ErrRestaurantNotFound if the restaurant does not exist.
	Update(ctx context.Context, id string, patch domain.RestaurantPatch) (*domain.Restaurant, error)

	// Delete removes a restaurant. Menu items are not touched.
	// Returns ErrRestaurantNotFound if the restaurant does not exist.
	Delete(ctx context.Context, id string) error
}
