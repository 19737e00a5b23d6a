package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// CORSAllowedOrigins lists the origins allowed by the CORS middleware. "*" allows any.
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins" validate:"required,min=1,dive,required"`
}

// DatabaseConfig selects and configures the persistence backend.
type DatabaseConfig struct {
	Driver string `mapstructure:"driver" validate:"required,oneof=mongo postgres sqlite"`
	// URL is a mongodb:// URI, a postgres connection string, or a sqlite DSN depending on Driver.
	URL string `mapstructure:"url" validate:"required"`
	// Name is the mongo database name. Ignored by the SQL backends.
	Name string `mapstructure:"name" validate:"required_if=Driver mongo"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret" validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}
