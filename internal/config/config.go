// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// phishing-detection application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the session signing key
	// and API token parameters.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database and the
	// classifier artifact.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Admin holds the optional first-admin bootstrap credentials.
	Admin Admin `envPrefix:"ADMIN_"`

	// Workers holds configuration for background workers such as the
	// session janitor.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control security,
// sessions, and API token lifecycle.
type App struct {
	// SessionSignKey is the secret used to sign session cookies with
	// HMAC-SHA256. Must be kept confidential and must never be hard-coded.
	// Env: APP_SESSION_SIGN_KEY
	SessionSignKey string `env:"SESSION_SIGN_KEY"`

	// SessionTTL specifies how long a browser session remains valid after
	// login (e.g. "24h", "30m").
	// Env: APP_SESSION_TTL
	SessionTTL time.Duration `env:"SESSION_TTL"`

	// TokenSignKey is the secret key used to sign and verify API JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued API token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long an API token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// TrustedDomains overrides the built-in trusted domain allow-list used
	// by the feature encoder. Leave empty to keep the defaults the model was
	// trained with.
	// Env: APP_TRUSTED_DOMAINS (comma-separated)
	TrustedDomains []string `env:"TRUSTED_DOMAINS"`
}

// Storage groups the configuration for all persistence used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Model holds the classifier artifact settings.
	Model Model `envPrefix:"MODEL_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend: a "postgres://" URI opens PostgreSQL via the
	// pgx stdlib driver, anything else is treated as a local SQLite file
	// path (e.g. "phishing.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Model holds the location of the serialized classifier artifact loaded once
// at process start.
type Model struct {
	// Path is the file path of the serialized random-forest artifact.
	// Env: STORAGE_MODEL_PATH
	Path string `env:"PATH"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Admin holds the credentials used to create the first administrator account
// at startup. When Username is empty no bootstrap is attempted. The bootstrap
// is idempotent: an existing account is never overwritten.
type Admin struct {
	// Env: ADMIN_USERNAME
	Username string `env:"USERNAME"`

	// Password is the plaintext bootstrap password. It is bcrypt-hashed
	// before storage and never persisted as given.
	// Env: ADMIN_PASSWORD
	Password string `env:"PASSWORD"`

	// Env: ADMIN_FULLNAME
	FullName string `env:"FULLNAME"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SessionSweepInterval controls how often the session janitor purges
	// expired sessions (e.g. "5m").
	// Env: WORKERS_SESSION_SWEEP_INTERVAL
	SessionSweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
