package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/restaurant-api/internal/domain"
	"github.com/phrazzld/restaurant-api/internal/store"
)

// Common service errors - sentinel errors used across service implementations.
// These errors represent common conditions that callers may want to check for with errors.Is().
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Unexpected errors are wrapped in service-specific error types
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrRestaurantNotFound indicates that the restaurant does not exist.
	// API layer should map this to HTTP 404 Not Found.
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrMenuItemNotFound indicates that the menu item does not exist.
	// API layer should map this to HTTP 404 Not Found.
	ErrMenuItemNotFound = errors.New("menu item not found")
)

// RestaurantServiceError wraps errors from the restaurant service with context.
type RestaurantServiceError struct {
	// Operation is the operation that failed (e.g., "create_restaurant", "update_menu_item")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for RestaurantServiceError.
func (e *RestaurantServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("restaurant service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("restaurant service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *RestaurantServiceError) Unwrap() error {
	return e.Err
}

// NewRestaurantServiceError creates a new RestaurantServiceError.
// Not-found conditions become the service sentinels and validation errors
// are returned unwrapped so the API layer can report the offending field.
func NewRestaurantServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrRestaurantNotFound), errors.Is(err, store.ErrRestaurantNotFound):
		return ErrRestaurantNotFound
	case errors.Is(err, ErrMenuItemNotFound), errors.Is(err, store.ErrMenuItemNotFound):
		return ErrMenuItemNotFound
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return &RestaurantServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// CascadeDeleteError reports that a restaurant was deleted but removing its
// menu items failed, leaving orphaned items behind.
type CascadeDeleteError struct {
	RestaurantID string
	Err          error
}

// Error implements the error interface for CascadeDeleteError.
func (e *CascadeDeleteError) Error() string {
	return fmt.Sprintf("restaurant %s deleted but its menu items were not: %v", e.RestaurantID, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *CascadeDeleteError) Unwrap() error {
	return e.Err
}
