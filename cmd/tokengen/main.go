// Command tokengen mints an HS256 access token that the restaurant API accepts.
//
//	tokengen --user u-123 --role restaurant_owner --ttl 120
//
// The signing secret comes from --secret or RESTO_AUTH_JWT_SECRET.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/phrazzld/restaurant-api/internal/config"
	"github.com/phrazzld/restaurant-api/internal/domain"
	"github.com/phrazzld/restaurant-api/internal/service/auth"
	"github.com/spf13/pflag"
)

const secretEnv = "RESTO_AUTH_JWT_SECRET"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr, os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "tokengen: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer, getenv func(string) string) error {
	flags := pflag.NewFlagSet("tokengen", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)

	userID := flags.String("user", "", "user id placed in the userId claim (required)")
	role := flags.String("role", string(domain.RoleRestaurantOwner), "role placed in the role claim")
	ttl := flags.Int("ttl", 60, "token lifetime in minutes")
	secret := flags.String("secret", "", "signing secret (default $"+secretEnv+")")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			_, err = fmt.Fprintf(stderr, "Usage: tokengen --user <id> [flags]\n\nFlags:\n%s", flags.FlagUsages())
		}
		return err
	}
	if *userID == "" {
		return errors.New("--user is required")
	}
	if *secret == "" {
		*secret = getenv(secretEnv)
	}

	jwtService, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            *secret,
		TokenLifetimeMinutes: *ttl,
	})
	if err != nil {
		return err
	}

	token, err := jwtService.GenerateToken(context.Background(), *userID, domain.Role(*role))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, token)
	return err
}
