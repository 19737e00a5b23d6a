package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/restaurant-api/internal/domain"
	"github.com/phrazzld/restaurant-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestNewRestaurantServiceError(t *testing.T) {
	assert.Nil(t, NewRestaurantServiceError("op", "msg", nil))

	assert.Equal(t, ErrRestaurantNotFound,
		NewRestaurantServiceError("get_restaurant", "failed", fmt.Errorf("wrapped: %w", store.ErrRestaurantNotFound)))
	assert.Equal(t, ErrMenuItemNotFound,
		NewRestaurantServiceError("delete_menu_item", "failed", store.ErrMenuItemNotFound))

	vErr := domain.NewValidationError("name", "is required", domain.ErrValidation)
	assert.Same(t, vErr, NewRestaurantServiceError("create_restaurant", "invalid", vErr))

	cause := errors.New("boom")
	err := NewRestaurantServiceError("list_restaurants", "failed to list restaurants", cause)
	assert.EqualError(t, err, "restaurant service list_restaurants failed: failed to list restaurants: boom")
	assert.ErrorIs(t, err, cause)
}

func TestCascadeDeleteError(t *testing.T) {
	cause := errors.New("timeout")
	err := &CascadeDeleteError{RestaurantID: "r-1", Err: cause}

	assert.Contains(t, err.Error(), "r-1")
	assert.ErrorIs(t, err, cause)
}
