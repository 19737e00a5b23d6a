// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, .env files, config.yaml).
// It provides type-safe access to application settings needed by different
// components while keeping configuration details separate from business logic.
//
// Environment variables use the RESTO_ prefix with dots replaced by
// underscores, e.g. RESTO_AUTH_JWT_SECRET for auth.jwt_secret.
package config
