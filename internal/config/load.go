package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPrefix     = "RESTO"
	defaultAppEnv = "dev"
)

// Load configuration from environment variables and optionally config files.
//
// Sources, lowest precedence first: built-in defaults, ./config.yaml,
// a .env.<APP_ENV> file (APP_ENV defaults to "dev"), and the process
// environment. Variables already set in the environment are never
// overwritten by the .env file.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	v := viper.New()

	v.SetDefault("server.port", 4000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.cors_allowed_origins", []string{"*"})
	v.SetDefault("database.driver", "mongo")
	v.SetDefault("database.name", "restaurants")
	v.SetDefault("auth.token_lifetime_minutes", 60)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadDotEnv loads .env.<APP_ENV> into the process environment if it exists.
func loadDotEnv() error {
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = defaultAppEnv
	}

	if err := godotenv.Load(".env." + appEnv); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading .env.%s: %w", appEnv, err)
	}
	return nil
}

// bindEnvs registers every key with viper so Unmarshal sees values that only
// exist in the environment. PORT and MONGODB_URL are accepted as fallbacks
// for the prefixed names.
func bindEnvs(v *viper.Viper) error {
	bindings := map[string][]string{
		"server.port":                 {envPrefix + "_SERVER_PORT", "PORT"},
		"server.log_level":            nil,
		"server.cors_allowed_origins": nil,
		"database.driver":             nil,
		"database.url":                {envPrefix + "_DATABASE_URL", "MONGODB_URL"},
		"database.name":               nil,
		"auth.jwt_secret":             nil,
		"auth.token_lifetime_minutes": nil,
	}

	for key, names := range bindings {
		args := append([]string{key}, names...)
		if err := v.BindEnv(args...); err != nil {
			return fmt.Errorf("error binding env for %s: %w", key, err)
		}
	}
	return nil
}
