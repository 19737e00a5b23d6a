package auth

import (
	"context"
	"time"

	"github.com/phrazzld/restaurant-api/internal/domain"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT carrying the user's ID and role.
	// Returns the token string or an error if token generation fails.
	GenerateToken(ctx context.Context, userID string, role domain.Role) (string, error)

	// ValidateToken validates the provided token string and extracts the claims.
	// Returns the claims if the token is valid, or ErrInvalidToken,
	// ErrExpiredToken or ErrTokenNotYetValid.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the verified contents of a token.
type Claims struct {
	UserID    string
	Role      domain.Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Identity returns the request identity described by the claims.
func (c *Claims) Identity() domain.Identity {
	return domain.Identity{UserID: c.UserID, Role: c.Role}
}
