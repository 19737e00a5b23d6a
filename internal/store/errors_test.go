package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "generic error", err: errors.New("some error"), expected: false},
		{name: "ErrNotFound", err: ErrNotFound, expected: true},
		{name: "ErrRestaurantNotFound", err: ErrRestaurantNotFound, expected: true},
		{name: "ErrMenuItemNotFound", err: ErrMenuItemNotFound, expected: true},
		{
			name:     "wrapped ErrMenuItemNotFound",
			err:      fmt.Errorf("failed to update menu item: %w", ErrMenuItemNotFound),
			expected: true,
		},
		{
			name:     "StoreError wrapping not found",
			err:      NewStoreError("restaurant", "get", "lookup failed", ErrRestaurantNotFound),
			expected: true,
		},
		{name: "ErrDuplicate", err: ErrDuplicate, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNotFoundError(tt.err))
		})
	}
}

func TestEntityNotFoundErrorsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrRestaurantNotFound, ErrMenuItemNotFound))
	assert.False(t, errors.Is(ErrMenuItemNotFound, ErrRestaurantNotFound))
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(ErrDuplicate))
	assert.True(t, IsDuplicateError(fmt.Errorf("insert: %w", ErrDuplicate)))
	assert.False(t, IsDuplicateError(ErrNotFound))
	assert.False(t, IsDuplicateError(nil))
}

func TestStoreError(t *testing.T) {
	originalErr := errors.New("connection refused")
	storeErr := NewStoreError("restaurant", "create", "database error", originalErr)

	assert.Equal(t,
		"create operation on restaurant failed: database error: connection refused",
		storeErr.Error())
	assert.ErrorIs(t, storeErr, originalErr)

	bare := NewStoreError("menu_item", "delete", "no rows affected", nil)
	assert.Equal(t, "delete operation on menu_item failed: no rows affected", bare.Error())
	assert.Nil(t, bare.Unwrap())
}
