package domain

import (
	"errors"
	"math"
	"testing"
)

func TestNewMenuItem(t *testing.T) {
	t.Parallel()

	item, err := NewMenuItem("r-1", "Margherita", "Tomato and mozzarella", 9.5, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !item.Availability {
		t.Error("Expected availability to default to true")
	}
	if item.RestaurantID != "r-1" {
		t.Errorf("Expected restaurant ID r-1, got %q", item.RestaurantID)
	}

	unavailable := false
	item, err = NewMenuItem("r-1", "Margherita", "Tomato and mozzarella", 0, &unavailable)
	if err != nil {
		t.Fatalf("Expected free item to be valid, got %v", err)
	}
	if item.Availability {
		t.Error("Expected explicit availability=false to be kept")
	}
}

func TestMenuItemValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		item  MenuItem
		field string
	}{
		{"missing restaurant", MenuItem{Name: "a", Description: "b", Price: 1}, "restaurant_id"},
		{"missing name", MenuItem{RestaurantID: "r", Description: "b", Price: 1}, "name"},
		{"missing description", MenuItem{RestaurantID: "r", Name: "a", Price: 1}, "description"},
		{"negative price", MenuItem{RestaurantID: "r", Name: "a", Description: "b", Price: -1}, "price"},
		{"NaN price", MenuItem{RestaurantID: "r", Name: "a", Description: "b", Price: math.NaN()}, "price"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.item.Validate()
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("Expected ValidationError, got %v", err)
			}
			if vErr.Field != tc.field {
				t.Errorf("Expected field %q, got %q", tc.field, vErr.Field)
			}
		})
	}
}

func TestMenuItemPatch(t *testing.T) {
	t.Parallel()

	if !(MenuItemPatch{}).IsEmpty() {
		t.Error("Expected zero patch to be empty")
	}

	available := false
	if (MenuItemPatch{Availability: &available}).IsEmpty() {
		t.Error("Expected availability-only patch to be non-empty")
	}

	price := -3.0
	if err := (MenuItemPatch{Price: &price}).Validate(); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected ErrValidation for negative price, got %v", err)
	}
}
