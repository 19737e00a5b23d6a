package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/phrazzld/restaurant-api/internal/api/shared"
	"github.com/phrazzld/restaurant-api/internal/service/auth"
)

// Messages sent with 403 responses.
const (
	MsgForbidden    = "Forbidden"
	MsgAccessDenied = "Access denied"
)

var (
	errMissingToken        = errors.New("no bearer token in authorization header")
	errMalformedAuthHeader = errors.New("authorization header is not of the form 'Bearer <token>'")
)

// AuthMiddleware provides JWT authentication and the owner gate for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate validates the bearer token from the Authorization header and
// adds the caller's identity to the request context.
//
// A request that carries no credential gets a 401 with an empty body. A
// credential that is present but unusable, or a token that fails
// verification for any reason, gets a 403.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := bearerToken(r.Header.Get("Authorization"))
		if errors.Is(err, errMissingToken) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusForbidden, MsgForbidden, err,
				shared.WithElevatedLogLevel())
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusForbidden, MsgForbidden, err,
				shared.WithElevatedLogLevel())
			return
		}

		ctx := shared.WithIdentity(r.Context(), claims.Identity())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireOwner lets the request through only when the authenticated identity
// holds a privileged role. It must run after Authenticate.
func (m *AuthMiddleware) RequireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := shared.IdentityFromContext(r.Context())
		if !ok || !identity.CanManageRestaurants() {
			shared.RespondWithError(w, r, http.StatusForbidden, MsgAccessDenied)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// bearerToken extracts the token from an Authorization header value.
// An empty header, or a bare scheme with nothing after it, carries no
// credential and yields errMissingToken.
func bearerToken(header string) (string, error) {
	parts := strings.Fields(header)
	switch {
	case len(parts) == 0, len(parts) == 1 && parts[0] == "Bearer":
		return "", errMissingToken
	case len(parts) != 2 || parts[0] != "Bearer":
		return "", errMalformedAuthHeader
	}
	return parts[1], nil
}
