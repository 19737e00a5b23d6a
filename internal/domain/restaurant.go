package domain

import "strings"

// Restaurant is a venue whose menu is managed through the API.
// ID is assigned by the store on creation.
type Restaurant struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Hours   string `json:"hours"`
}

// NewRestaurant creates an unsaved Restaurant and validates it.
func NewRestaurant(name, address, hours string) (*Restaurant, error) {
	r := &Restaurant{
		Name:    name,
		Address: address,
		Hours:   hours,
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate checks that every required field is present.
// The ID is not checked because it is absent until the restaurant is stored.
func (r *Restaurant) Validate() error {
	if isBlank(r.Name) {
		return NewValidationError("name", "is required", ErrValidation)
	}
	if isBlank(r.Address) {
		return NewValidationError("address", "is required", ErrValidation)
	}
	if isBlank(r.Hours) {
		return NewValidationError("hours", "is required", ErrValidation)
	}
	return nil
}

// RestaurantPatch is a partial update. Nil fields are left untouched.
type RestaurantPatch struct {
	Name    *string
	Address *string
	Hours   *string
}

// IsEmpty reports whether the patch changes nothing.
func (p RestaurantPatch) IsEmpty() bool {
	return p.Name == nil && p.Address == nil && p.Hours == nil
}

// Validate rejects provided fields that would blank out a required value.
func (p RestaurantPatch) Validate() error {
	if p.Name != nil && isBlank(*p.Name) {
		return NewValidationError("name", "cannot be empty", ErrValidation)
	}
	if p.Address != nil && isBlank(*p.Address) {
		return NewValidationError("address", "cannot be empty", ErrValidation)
	}
	if p.Hours != nil && isBlank(*p.Hours) {
		return NewValidationError("hours", "cannot be empty", ErrValidation)
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
