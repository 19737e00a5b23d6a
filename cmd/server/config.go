package main

import (
	"fmt"

	"github.com/phrazzld/restaurant-api/internal/config"
)

// loadAppConfig loads the application configuration from .env files, the
// environment, and an optional config file.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
