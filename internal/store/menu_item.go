package store

import (
	"context"

	"github.com/phrazzld/restaurant-api/internal/domain"
)

//go:generate mockgen -source=menu_item.go -destination=../mocks/menu_item_store_mock.go -package=mocks

// MenuItemStore defines the interface for menu item data persistence.
type MenuItemStore interface {
	// Create saves a new menu item and sets its ID. The parent restaurant
	// is not checked for existence.
	// Returns domain.ErrInvalidID if the restaurant ID cannot be stored by the backend.
	Create(ctx context.Context, item *domain.MenuItem) error

	// ListByRestaurant returns the items whose restaurant ID matches.
	// Returns an empty slice when there are none.
	ListByRestaurant(ctx context.Context, restaurantID string) ([]*domain.MenuItem, error)

	// GetByID retrieves a menu item by its ID.
	// Returns ErrMenuItemNotFound if the item does not exist.
	GetByID(ctx context.Context, id string) (*domain.MenuItem, error)

	// Update applies the non-nil fields of patch and returns the stored record.
	// Returns ErrMenuItemNotFound if the item does not exist.
	Update(ctx context.Context, id string, patch domain.MenuItemPatch) (*domain.MenuItem, error)

	// Delete removes a menu item.
	// Returns ErrMenuItemNotFound if the item does not exist.
	Delete(ctx context.Context, id string) error

	// DeleteByRestaurant removes every item of a restaurant and reports how
	// many were removed. Zero is not an error.
	DeleteByRestaurant(ctx context.Context, restaurantID string) (int64, error)
}
