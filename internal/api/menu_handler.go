package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/restaurant-api/internal/api/shared"
	"github.com/phrazzld/restaurant-api/internal/platform/logger"
	"github.com/phrazzld/restaurant-api/internal/service"
)

// MenuHandler handles menu item HTTP requests nested under a restaurant
type MenuHandler struct {
	restaurantService service.RestaurantService
	logger            *slog.Logger
}

// NewMenuHandler creates a new MenuHandler
func NewMenuHandler(restaurantService service.RestaurantService, logger *slog.Logger) *MenuHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for MenuHandler")
	}

	return &MenuHandler{
		restaurantService: restaurantService,
		logger:            logger.With(slog.String("component", "menu_handler")),
	}
}

// CreateMenuItem handles POST /restaurants/{id}/menu requests.
// The restaurant is not looked up first.
func (h *MenuHandler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	restaurantID, err := getPathID(r, restaurantIDParam)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req CreateMenuItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	item, err := h.restaurantService.CreateMenuItem(
		r.Context(),
		restaurantID,
		req.Name,
		req.Description,
		*req.Price,
		req.Availability,
	)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("menu item created",
		slog.String("restaurant_id", restaurantID),
		slog.String("menu_item_id", item.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, item)
}

// ListMenuItems handles GET /restaurants/{id}/menu requests.
// A restaurant without items, existing or not, gets a 404.
func (h *MenuHandler) ListMenuItems(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := getPathID(r, restaurantIDParam)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	items, err := h.restaurantService.ListMenuItems(r.Context(), restaurantID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if len(items) == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, MsgNoMenuItems)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, items)
}

// UpdateMenuItem handles PUT /restaurants/{id}/menu/{item_id} requests.
// The item is addressed by its own id; the restaurant id in the path is not checked.
func (h *MenuHandler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := getPathID(r, menuItemIDParam)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateMenuItemRequest
	if !decodePatch(w, r, &req) {
		return
	}

	item, err := h.restaurantService.UpdateMenuItem(r.Context(), itemID, req.Patch())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, item)
}

// DeleteMenuItem handles DELETE /restaurants/{id}/menu/{item_id} requests
func (h *MenuHandler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := getPathID(r, menuItemIDParam)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.restaurantService.DeleteMenuItem(r.Context(), itemID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithMessage(w, r, http.StatusOK, MsgMenuItemDeleted)
}
