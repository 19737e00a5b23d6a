package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/restaurant-api/internal/api/shared"
	"github.com/phrazzld/restaurant-api/internal/domain"
	"github.com/phrazzld/restaurant-api/internal/platform/logger"
	"github.com/phrazzld/restaurant-api/internal/service"
)

// RestaurantHandler handles restaurant-related HTTP requests
type RestaurantHandler struct {
	restaurantService service.RestaurantService
	logger            *slog.Logger
}

// NewRestaurantHandler creates a new RestaurantHandler
func NewRestaurantHandler(restaurantService service.RestaurantService, logger *slog.Logger) *RestaurantHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for RestaurantHandler")
	}

	return &RestaurantHandler{
		restaurantService: restaurantService,
		logger:            logger.With(slog.String("component", "restaurant_handler")),
	}
}

// ListRestaurants handles GET /restaurants requests
func (h *RestaurantHandler) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.restaurantService.ListRestaurants(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if restaurants == nil {
		restaurants = []*domain.Restaurant{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, restaurants)
}

// GetRestaurant handles GET /restaurants/{id} requests
func (h *RestaurantHandler) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, restaurantIDParam)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	restaurant, err := h.restaurantService.GetRestaurant(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, restaurant)
}

// CreateRestaurant handles POST /restaurants requests
func (h *RestaurantHandler) CreateRestaurant(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateRestaurantRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	restaurant, err := h.restaurantService.CreateRestaurant(r.Context(), req.Name, req.Address, req.Hours)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("restaurant created", slog.String("restaurant_id", restaurant.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, restaurant)
}

// UpdateRestaurant handles PUT /restaurants/{id} requests
func (h *RestaurantHandler) UpdateRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, restaurantIDParam)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateRestaurantRequest
	if !decodePatch(w, r, &req) {
		return
	}

	restaurant, err := h.restaurantService.UpdateRestaurant(r.Context(), id, req.Patch())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, restaurant)
}

// DeleteRestaurant handles DELETE /restaurants/{id} requests.
// The restaurant's menu items are removed with it.
func (h *RestaurantHandler) DeleteRestaurant(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, restaurantIDParam)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.restaurantService.DeleteRestaurant(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("restaurant deleted", slog.String("restaurant_id", id))
	shared.RespondWithMessage(w, r, http.StatusOK, MsgRestaurantDeleted)
}
