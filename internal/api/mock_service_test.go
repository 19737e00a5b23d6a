package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/restaurant-api/internal/domain"
	"github.com/phrazzld/restaurant-api/internal/service"
)

var errUnexpectedCall = errors.New("unexpected call")

// MockRestaurantService is a mock implementation of service.RestaurantService for testing
type MockRestaurantService struct {
	ListRestaurantsFn  func(ctx context.Context) ([]*domain.Restaurant, error)
	GetRestaurantFn    func(ctx context.Context, id string) (*domain.Restaurant, error)
	CreateRestaurantFn func(ctx context.Context, name, address, hours string) (*domain.Restaurant, error)
	UpdateRestaurantFn func(ctx context.Context, id string, patch domain.RestaurantPatch) (*domain.Restaurant, error)
	DeleteRestaurantFn func(ctx context.Context, id string) error
	CreateMenuItemFn   func(
		ctx context.Context,
		restaurantID, name, description string,
		price float64,
		availability *bool,
	) (*domain.MenuItem, error)
	ListMenuItemsFn  func(ctx context.Context, restaurantID string) ([]*domain.MenuItem, error)
	UpdateMenuItemFn func(ctx context.Context, itemID string, patch domain.MenuItemPatch) (*domain.MenuItem, error)
	DeleteMenuItemFn func(ctx context.Context, itemID string) error
}

var _ service.RestaurantService = (*MockRestaurantService)(nil)

// ListRestaurants implements service.RestaurantService
func (m *MockRestaurantService) ListRestaurants(ctx context.Context) ([]*domain.Restaurant, error) {
	if m.ListRestaurantsFn != nil {
		return m.ListRestaurantsFn(ctx)
	}
	return nil, errUnexpectedCall
}

// GetRestaurant implements service.RestaurantService
func (m *MockRestaurantService) GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error) {
	if m.GetRestaurantFn != nil {
		return m.GetRestaurantFn(ctx, id)
	}
	return nil, errUnexpectedCall
}

// CreateRestaurant implements service.RestaurantService
func (m *MockRestaurantService) CreateRestaurant(
	ctx context.Context,
	name, address, hours string,
) (*domain.Restaurant, error) {
	if m.CreateRestaurantFn != nil {
		return m.CreateRestaurantFn(ctx, name, address, hours)
	}
	return nil, errUnexpectedCall
}

// UpdateRestaurant implements service.RestaurantService
func (m *MockRestaurantService) UpdateRestaurant(
	ctx context.Context,
	id string,
	patch domain.RestaurantPatch,
) (*domain.Restaurant, error) {
	if m.UpdateRestaurantFn != nil {
		return m.UpdateRestaurantFn(ctx, id, patch)
	}
	return nil, errUnexpectedCall
}

// DeleteRestaurant implements service.RestaurantService
func (m *MockRestaurantService) DeleteRestaurant(ctx context.Context, id string) error {
	if m.DeleteRestaurantFn != nil {
		return m.DeleteRestaurantFn(ctx, id)
	}
	return errUnexpectedCall
}

// CreateMenuItem implements service.RestaurantService
func (m *MockRestaurantService) CreateMenuItem(
	ctx context.Context,
	restaurantID, name, description string,
	price float64,
	availability *bool,
) (*domain.MenuItem, error) {
	if m.CreateMenuItemFn != nil {
		return m.CreateMenuItemFn(ctx, restaurantID, name, description, price, availability)
	}
	return nil, errUnexpectedCall
}

// ListMenuItems implements service.RestaurantService
func (m *MockRestaurantService) ListMenuItems(ctx context.Context, restaurantID string) ([]*domain.MenuItem, error) {
	if m.ListMenuItemsFn != nil {
		return m.ListMenuItemsFn(ctx, restaurantID)
	}
	return nil, errUnexpectedCall
}

// UpdateMenuItem implements service.RestaurantService
func (m *MockRestaurantService) UpdateMenuItem(
	ctx context.Context,
	itemID string,
	patch domain.MenuItemPatch,
) (*domain.MenuItem, error) {
	if m.UpdateMenuItemFn != nil {
		return m.UpdateMenuItemFn(ctx, itemID, patch)
	}
	return nil, errUnexpectedCall
}

// DeleteMenuItem implements service.RestaurantService
func (m *MockRestaurantService) DeleteMenuItem(ctx context.Context, itemID string) error {
	if m.DeleteMenuItemFn != nil {
		return m.DeleteMenuItemFn(ctx, itemID)
	}
	return errUnexpectedCall
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestRouter mounts the handlers on the same paths the server uses, without auth.
func newTestRouter(svc service.RestaurantService) http.Handler {
	restaurants := NewRestaurantHandler(svc, testLogger())
	menu := NewMenuHandler(svc, testLogger())

	r := chi.NewRouter()
	r.Route("/restaurants", func(r chi.Router) {
		r.Get("/", restaurants.ListRestaurants)
		r.Post("/", restaurants.CreateRestaurant)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", restaurants.GetRestaurant)
			r.Put("/", restaurants.UpdateRestaurant)
			r.Delete("/", restaurants.DeleteRestaurant)
			r.Post("/menu", menu.CreateMenuItem)
			r.Get("/menu", menu.ListMenuItems)
			r.Put("/menu/{item_id}", menu.UpdateMenuItem)
			r.Delete("/menu/{item_id}", menu.DeleteMenuItem)
		})
	})
	return r
}

func doRequest(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}
