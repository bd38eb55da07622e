// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// scaffold API server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds authentication settings: the token signing key, token
	// lifetime and the single principal that may log in.
	App App `envPrefix:"APP_"`

	// Storage holds the item repository settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// LogLevel filters log entries below the named zerolog level
	// ("debug", "info", "warn", ...). Empty keeps every level.
	// Env: LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// App holds application-level configuration values that control token
// issuance and credential verification.
type App struct {
	// TokenSignKey is the process-wide HMAC secret used to sign and verify
	// access tokens. Required.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token and
	// checked on every authenticated request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long an access token remains valid after
	// issuance (e.g. "1h", "30m"). Must be positive.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Principal describes the only identity that can obtain a token.
	Principal Principal `envPrefix:"PRINCIPAL_"`

	// HashWorkers is the number of goroutines dedicated to CPU-bound
	// password hash comparisons. Defaults to the number of CPUs.
	// Env: APP_HASH_WORKERS
	HashWorkers int `env:"HASH_WORKERS"`
}

// Principal holds the stored credentials of the single demo identity.
type Principal struct {
	// Name is the username matched exactly against login attempts.
	// Env: APP_PRINCIPAL_NAME
	Name string `env:"NAME"`

	// Hash is the stored password hash. Required.
	// Env: APP_PRINCIPAL_HASH
	Hash string `env:"HASH"`

	// HashAlgorithm selects the verification strategy: bcrypt,
	// bcrypt_truncated72 or sha256 (case-insensitive).
	// Env: APP_PRINCIPAL_HASH_ALGORITHM
	HashAlgorithm string `env:"HASH_ALGORITHM"`
}

// Storage groups the configuration of the item repository.
type Storage struct {
	// DB holds the storage connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the item storage backend.
type DB struct {
	// DSN selects the backend by its URL scheme:
	//   - postgres:// or postgresql:// selects PostgreSQL
	//   - sqlite://, file: or a path ending in .db selects SQLite
	//   - redis:// or rediss:// selects the Redis document store
	// Env: STORAGE_DB_DATABASE_URI (falls back to DATABASE_URL)
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns caps the relational connection pool. SQLite always
	// uses a single connection.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`

	// OperationTimeout bounds every single storage call.
	// Env: STORAGE_DB_OPERATION_TIMEOUT
	OperationTimeout time.Duration `env:"OPERATION_TIMEOUT"`

	// ListLimit is the number of items returned by a list call that does
	// not specify a limit.
	// Env: STORAGE_DB_LIST_LIMIT
	ListLimit int `env:"LIST_LIMIT"`

	// MaxListLimit is the largest limit a client may request.
	// Env: STORAGE_DB_MAX_LIST_LIMIT
	MaxListLimit int `env:"MAX_LIST_LIMIT"`
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

	// ShutdownTimeout bounds graceful shutdown of in-flight requests.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied to every field left empty. Returns a fully populated
// *StructuredConfig or an error if any source fails to load or the final
// config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
