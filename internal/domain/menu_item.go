package domain

import "math"

// MenuItem is a dish or drink offered by a restaurant.
//
// RestaurantID refers to a Restaurant but is not checked for existence when
// the item is written; only restaurant deletion keeps the two in step.
type MenuItem struct {
	ID           string  `json:"id"`
	RestaurantID string  `json:"restaurant_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Availability bool    `json:"availability"`
}

// NewMenuItem creates an unsaved MenuItem for restaurantID and validates it.
// A nil availability defaults to true.
func NewMenuItem(
	restaurantID, name, description string,
	price float64,
	availability *bool,
) (*MenuItem, error) {
	item := &MenuItem{
		RestaurantID: restaurantID,
		Name:         name,
		Description:  description,
		Price:        price,
		Availability: true,
	}
	if availability != nil {
		item.Availability = *availability
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks the required fields and the price.
func (m *MenuItem) Validate() error {
	if isBlank(m.RestaurantID) {
		return NewValidationError("restaurant_id", "is required", ErrValidation)
	}
	if isBlank(m.Name) {
		return NewValidationError("name", "is required", ErrValidation)
	}
	if isBlank(m.Description) {
		return NewValidationError("description", "is required", ErrValidation)
	}
	if !validPrice(m.Price) {
		return NewValidationError("price", "must be a non-negative number", ErrValidation)
	}
	return nil
}

// MenuItemPatch is a partial update of a menu item. Nil fields are left
// untouched. The owning restaurant cannot be changed through a patch.
type MenuItemPatch struct {
	Name         *string
	Description  *string
	Price        *float64
	Availability *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p MenuItemPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil && p.Availability == nil
}

// Validate rejects provided fields that are not acceptable values.
func (p MenuItemPatch) Validate() error {
	if p.Name != nil && isBlank(*p.Name) {
		return NewValidationError("name", "cannot be empty", ErrValidation)
	}
	if p.Description != nil && isBlank(*p.Description) {
		return NewValidationError("description", "cannot be empty", ErrValidation)
	}
	if p.Price != nil && !validPrice(*p.Price) {
		return NewValidationError("price", "must be a non-negative number", ErrValidation)
	}
	return nil
}

func validPrice(price float64) bool {
	return price >= 0 && !math.IsInf(price, 0) && !math.IsNaN(price)
}
