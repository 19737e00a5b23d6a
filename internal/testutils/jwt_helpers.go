package testutils

import (
	"context"
	"testing"

	"github.com/phrazzld/restaurant-api/internal/config"
	"github.com/phrazzld/restaurant-api/internal/domain"
	"github.com/phrazzld/restaurant-api/internal/service/auth"
)

// TestJWTConstants provides standard values for JWT testing
const (
	// TestJWTSecret is a dedicated test-only secret for signing JWTs
	// This must never be used in production
	TestJWTSecret = "test-jwt-secret-that-is-32-chars-long"

	// TestTokenLifetimeMinutes is the lifetime of tokens minted in tests
	TestTokenLifetimeMinutes = 15
)

// TestAuthConfig returns an auth configuration using the test secret.
func TestAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            TestJWTSecret,
		TokenLifetimeMinutes: TestTokenLifetimeMinutes,
	}
}

// NewTestJWTService creates a real JWT service signing with the test secret.
func NewTestJWTService(t *testing.T) auth.JWTService {
	t.Helper()

	svc, err := auth.NewJWTService(TestAuthConfig())
	if err != nil {
		t.Fatalf("failed to create test JWT service: %v", err)
	}
	return svc
}

// GenerateAuthHeader mints a token for userID and role and returns it as an
// Authorization header value.
func GenerateAuthHeader(t *testing.T, svc auth.JWTService, userID string, role domain.Role) string {
	t.Helper()

	token, err := svc.GenerateToken(context.Background(), userID, role)
	if err != nil {
		t.Fatalf("failed to generate test token: %v", err)
	}
	return "Bearer " + token
}
