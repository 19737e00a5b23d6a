package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/restaurant-api/internal/api/shared"
	"github.com/phrazzld/restaurant-api/internal/domain"
	"github.com/phrazzld/restaurant-api/internal/service"
	"github.com/phrazzld/restaurant-api/internal/store"
)

// Messages returned to clients.
const (
	MsgServerError          = "Server error"
	MsgInvalidRequest       = "Invalid request format"
	MsgRestaurantNotFound   = "Restaurant not found"
	MsgMenuItemNotFound     = "Menu item not found"
	MsgNoMenuItems          = "No menu items found for this restaurant"
	MsgRestaurantDeleted    = "Restaurant deleted successfully"
	MsgMenuItemDeleted      = "Menu item deleted successfully"
	msgValidationFailed     = "Validation failed"
	msgInvalidEntity        = "Invalid entity data"
	validationRequiredField = "required field"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var cascadeErr *service.CascadeDeleteError
	var validationErrs validator.ValidationErrors

	switch {
	// A half-finished delete is a server failure whatever the cause
	case errors.As(err, &cascadeErr):
		return http.StatusInternalServerError

	// Not found errors
	case errors.Is(err, service.ErrRestaurantNotFound),
		errors.Is(err, service.ErrMenuItemNotFound),
		errors.Is(err, store.ErrRestaurantNotFound),
		errors.Is(err, store.ErrMenuItemNotFound):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		var fieldErr *domain.ValidationError
		if errors.As(err, &fieldErr) {
			return http.StatusBadRequest
		}
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return MsgServerError
	}

	var cascadeErr *service.CascadeDeleteError
	if errors.As(err, &cascadeErr) {
		return MsgServerError
	}

	var fieldErr *domain.ValidationError
	if errors.As(err, &fieldErr) {
		return fmt.Sprintf("Invalid %s: %s", fieldErr.Field, fieldMessage(fieldErr.Message))
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return SanitizeValidationError(err)
	}

	switch {
	case errors.Is(err, service.ErrRestaurantNotFound),
		errors.Is(err, store.ErrRestaurantNotFound):
		return MsgRestaurantNotFound

	case errors.Is(err, service.ErrMenuItemNotFound),
		errors.Is(err, store.ErrMenuItemNotFound):
		return MsgMenuItemNotFound

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid ID"

	case errors.Is(err, domain.ErrValidation):
		return msgValidationFailed

	case errors.Is(err, store.ErrInvalidEntity):
		return msgInvalidEntity

	default:
		return MsgServerError
	}
}

// SanitizeValidationError turns validator output into a message naming the
// first offending field, e.g. "Invalid name: required field".
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return msgValidationFailed
	}

	first := validationErrs[0]
	return fmt.Sprintf("Invalid %s: %s", first.Field(), getValidationTagMessage(first.Tag()))
}

// HandleAPIError writes the status and safe message for err and logs the
// redacted details. defaultMsg replaces the generic message on 500 responses
// when it is not empty.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && defaultMsg != "" {
		message = defaultMsg
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return validationRequiredField
	case "gte", "min":
		return "must be a non-negative number"
	default:
		return "validation failed"
	}
}

// fieldMessage rewords domain validation messages for clients.
func fieldMessage(message string) string {
	if message == "is required" {
		return validationRequiredField
	}
	return message
}
