package api

import (
	"github.com/phrazzld/restaurant-api/internal/domain"
)

// CreateRestaurantRequest defines the payload for POST /restaurants.
type CreateRestaurantRequest struct {
	Name    string `json:"name"    validate:"required"`
	Address string `json:"address" validate:"required"`
	Hours   string `json:"hours"   validate:"required"`
}

// UpdateRestaurantRequest defines the payload for PUT /restaurants/{id}.
// Only the fields present in the body are changed.
type UpdateRestaurantRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Hours   *string `json:"hours"`
}

// Patch converts the request into a domain patch.
func (r UpdateRestaurantRequest) Patch() domain.RestaurantPatch {
	return domain.RestaurantPatch{
		Name:    r.Name,
		Address: r.Address,
		Hours:   r.Hours,
	}
}

// Validate rejects provided fields that are empty.
func (r UpdateRestaurantRequest) Validate() error {
	return r.Patch().Validate()
}

// CreateMenuItemRequest defines the payload for POST /restaurants/{id}/menu.
// Price is a pointer so that a missing price is told apart from zero.
type CreateMenuItemRequest struct {
	Name         string   `json:"name"         validate:"required"`
	Description  string   `json:"description"  validate:"required"`
	Price        *float64 `json:"price"        validate:"required,gte=0"`
	Availability *bool    `json:"availability"`
}

// UpdateMenuItemRequest defines the payload for PUT /restaurants/{id}/menu/{item_id}.
type UpdateMenuItemRequest struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price"`
	Availability *bool    `json:"availability"`
}

// Patch converts the request into a domain patch.
func (r UpdateMenuItemRequest) Patch() domain.MenuItemPatch {
	return domain.MenuItemPatch{
		Name:         r.Name,
		Description:  r.Description,
		Price:        r.Price,
		Availability: r.Availability,
	}
}

// Validate rejects provided fields that are not acceptable values.
func (r UpdateMenuItemRequest) Validate() error {
	return r.Patch().Validate()
}
