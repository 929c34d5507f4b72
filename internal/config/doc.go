// Package config manages application configuration for the Roster API.
//
// The config package loads and validates configuration from environment
// variables. All configuration is centralized here to provide a single
// source of truth.
//
// # Configuration Loading
//
// Configuration is loaded from environment variables and validated before
// the server starts:
//
//	cfg, err := config.Load()
//	if err := cfg.Validate(); err != nil { ... }
//
// # Configuration Groups
//
// Configuration is organized into logical groups:
//
//   - ServerConfig: HTTP server settings (port, environment, timeouts, CORS)
//   - DatabaseConfig: storage backend selection and connection settings
//   - AuthConfig: JWT validation settings for administrator routes
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT           - HTTP server port (default: 9000)
//	SERVER_ENV            - development, production, or test
//	SERVER_READ_TIMEOUT   - HTTP read timeout (default: 15s)
//	SERVER_WRITE_TIMEOUT  - HTTP write timeout (default: 15s)
//	CORS_ALLOWED_ORIGINS  - comma-separated list of allowed origins
//	DB_DRIVER             - surreal, postgres, or memory (default: surreal)
//	DB_HOST               - SurrealDB host
//	DB_PORT               - SurrealDB port
//	DB_USER               - database username
//	DB_PASSWORD           - database password
//	DB_NAMESPACE          - SurrealDB namespace
//	DB_DATABASE           - database name
//	DB_POSTGRES_DSN       - PostgreSQL connection string (postgres driver)
//	AUTH_JWT_SECRET       - JWT signing secret (required in production)
//	AUTH_JWT_ISSUER       - expected token issuer
//	AUTH_JWT_AUDIENCE     - expected token audience
//
// # Validation
//
// Validate reports every problem at once via errors.Join, so a misconfigured
// deployment surfaces all missing variables on the first start attempt.
package config
