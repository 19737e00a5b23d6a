package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/restaurant-api/internal/domain"
	"github.com/phrazzld/restaurant-api/internal/platform/logger"
	"github.com/phrazzld/restaurant-api/internal/redact"
	"github.com/phrazzld/restaurant-api/internal/store"
)

// RestaurantService provides restaurant and menu item operations.
type RestaurantService interface {
	// ListRestaurants returns every restaurant.
	ListRestaurants(ctx context.Context) ([]*domain.Restaurant, error)

	// GetRestaurant returns the restaurant or ErrRestaurantNotFound.
	GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error)

	// CreateRestaurant validates and stores a new restaurant.
	CreateRestaurant(ctx context.Context, name, address, hours string) (*domain.Restaurant, error)

	// UpdateRestaurant applies a partial update and returns the stored record.
	UpdateRestaurant(ctx context.Context, id string, patch domain.RestaurantPatch) (*domain.Restaurant, error)

	// DeleteRestaurant removes the restaurant and then its menu items.
	// Returns ErrRestaurantNotFound, or *CascadeDeleteError when only the
	// first step succeeded.
	DeleteRestaurant(ctx context.Context, id string) error

	// CreateMenuItem validates and stores a new item for restaurantID.
	// The restaurant is not required to exist. A nil availability defaults to true.
	CreateMenuItem(
		ctx context.Context,
		restaurantID, name, description string,
		price float64,
		availability *bool,
	) (*domain.MenuItem, error)

	// ListMenuItems returns the items of a restaurant, possibly none.
	ListMenuItems(ctx context.Context, restaurantID string) ([]*domain.MenuItem, error)

	// UpdateMenuItem applies a partial update to the item with itemID,
	// regardless of which restaurant it belongs to.
	UpdateMenuItem(ctx context.Context, itemID string, patch domain.MenuItemPatch) (*domain.MenuItem, error)

	// DeleteMenuItem removes the item with itemID, regardless of which
	// restaurant it belongs to.
	DeleteMenuItem(ctx context.Context, itemID string) error
}

// restaurantServiceImpl implements the RestaurantService interface
type restaurantServiceImpl struct {
	restaurants store.RestaurantStore
	menuItems   store.MenuItemStore
	logger      *slog.Logger
}

// NewRestaurantService creates a new RestaurantService.
// It returns an error if any of the required dependencies are nil.
func NewRestaurantService(
	restaurants store.RestaurantStore,
	menuItems store.MenuItemStore,
	logger *slog.Logger,
) (RestaurantService, error) {
	if restaurants == nil {
		return nil, &RestaurantServiceError{
			Operation: "create_service",
			Message:   "restaurant store cannot be nil",
		}
	}
	if menuItems == nil {
		return nil, &RestaurantServiceError{
			Operation: "create_service",
			Message:   "menu item store cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &restaurantServiceImpl{
		restaurants: restaurants,
		menuItems:   menuItems,
		logger:      logger.With("component", "restaurant_service"),
	}, nil
}

// ListRestaurants implements RestaurantService.ListRestaurants
func (s *restaurantServiceImpl) ListRestaurants(ctx context.Context) ([]*domain.Restaurant, error) {
	restaurants, err := s.restaurants.List(ctx)
	if err != nil {
		return nil, NewRestaurantServiceError("list_restaurants", "failed to list restaurants", err)
	}
	return restaurants, nil
}

// GetRestaurant implements RestaurantService.GetRestaurant
func (s *restaurantServiceImpl) GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error) {
	restaurant, err := s.restaurants.GetByID(ctx, id)
	if err != nil {
		return nil, NewRestaurantServiceError("get_restaurant", "failed to get restaurant", err)
	}
	return restaurant, nil
}

// CreateRestaurant implements RestaurantService.CreateRestaurant
func (s *restaurantServiceImpl) CreateRestaurant(
	ctx context.Context,
	name, address, hours string,
) (*domain.Restaurant, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	restaurant, err := domain.NewRestaurant(name, address, hours)
	if err != nil {
		log.Debug("invalid restaurant", "error", err)
		return nil, NewRestaurantServiceError("create_restaurant", "invalid restaurant", err)
	}

	if err := s.restaurants.Create(ctx, restaurant); err != nil {
		return nil, NewRestaurantServiceError("create_restaurant", "failed to save restaurant", err)
	}
	return restaurant, nil
}

// UpdateRestaurant implements RestaurantService.UpdateRestaurant
func (s *restaurantServiceImpl) UpdateRestaurant(
	ctx context.Context,
	id string,
	patch domain.RestaurantPatch,
) (*domain.Restaurant, error) {
	if err := patch.Validate(); err != nil {
		return nil, NewRestaurantServiceError("update_restaurant", "invalid restaurant update", err)
	}

	restaurant, err := s.restaurants.Update(ctx, id, patch)
	if err != nil {
		return nil, NewRestaurantServiceError("update_restaurant", "failed to update restaurant", err)
	}
	return restaurant, nil
}

// DeleteRestaurant implements RestaurantService.DeleteRestaurant
// The two steps are independent store calls; if the second fails the
// restaurant stays deleted and its items remain until removed by hand.
func (s *restaurantServiceImpl) DeleteRestaurant(ctx context.Context, id string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.restaurants.Delete(ctx, id); err != nil {
		return NewRestaurantServiceError("delete_restaurant", "failed to delete restaurant", err)
	}

	deleted, err := s.menuItems.DeleteByRestaurant(ctx, id)
	if err != nil {
		log.Error("restaurant deleted but menu item cleanup failed, orphaned items remain",
			"restaurant_id", id,
			"error", redact.Error(err))
		return &CascadeDeleteError{RestaurantID: id, Err: err}
	}

	log.Info("restaurant and menu items deleted",
		"restaurant_id", id,
		"menu_items_deleted", deleted)
	return nil
}

// CreateMenuItem implements RestaurantService.CreateMenuItem
func (s *restaurantServiceImpl) CreateMenuItem(
	ctx context.Context,
	restaurantID, name, description string,
	price float64,
	availability *bool,
) (*domain.MenuItem, error) {
	item, err := domain.NewMenuItem(restaurantID, name, description, price, availability)
	if err != nil {
		return nil, NewRestaurantServiceError("create_menu_item", "invalid menu item", err)
	}

	if err := s.menuItems.Create(ctx, item); err != nil {
		return nil, NewRestaurantServiceError("create_menu_item", "failed to save menu item", err)
	}
	return item, nil
}

// ListMenuItems implements RestaurantService.ListMenuItems
func (s *restaurantServiceImpl) ListMenuItems(ctx context.Context, restaurantID string) ([]*domain.MenuItem, error) {
	items, err := s.menuItems.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, NewRestaurantServiceError("list_menu_items", "failed to list menu items", err)
	}
	return items, nil
}

// UpdateMenuItem implements RestaurantService.UpdateMenuItem
func (s *restaurantServiceImpl) UpdateMenuItem(
	ctx context.Context,
	itemID string,
	patch domain.MenuItemPatch,
) (*domain.MenuItem, error) {
	if err := patch.Validate(); err != nil {
		return nil, NewRestaurantServiceError("update_menu_item", "invalid menu item update", err)
	}

	item, err := s.menuItems.Update(ctx, itemID, patch)
	if err != nil {
		return nil, NewRestaurantServiceError("update_menu_item", "failed to update menu item", err)
	}
	return item, nil
}

// DeleteMenuItem implements RestaurantService.DeleteMenuItem
func (s *restaurantServiceImpl) DeleteMenuItem(ctx context.Context, itemID string) error {
	if err := s.menuItems.Delete(ctx, itemID); err != nil {
		return NewRestaurantServiceError("delete_menu_item", "failed to delete menu item", err)
	}
	return nil
}
