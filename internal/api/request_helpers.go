package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/restaurant-api/internal/api/shared"
	"github.com/phrazzld/restaurant-api/internal/domain"
)

// Path parameter names used by the router.
const (
	restaurantIDParam = "id"
	menuItemIDParam   = "item_id"
)

// getPathID extracts a non-empty identifier from the URL path parameters.
// The format of the identifier belongs to the store, so it is not parsed here.
func getPathID(r *http.Request, paramName string) (string, error) {
	id := chi.URLParam(r, paramName)
	if id == "" {
		return "", domain.NewValidationError(paramName, "is required", domain.ErrInvalidID)
	}
	return id, nil
}

// decodeAndValidate decodes the JSON body into req and validates it,
// writing a 400 response and returning false on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	return decodeBody(w, r, req, false)
}

// decodePatch is decodeAndValidate for partial updates. A request without
// a body is read as an empty patch.
func decodePatch(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	return decodeBody(w, r, req, true)
}

func decodeBody(w http.ResponseWriter, r *http.Request, req interface{}, allowEmpty bool) bool {
	err := shared.DecodeJSON(r, req)
	if allowEmpty && errors.Is(err, shared.ErrEmptyBody) {
		err = nil
	}
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
		return false
	}
	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, err, "")
		return false
	}
	return true
}
