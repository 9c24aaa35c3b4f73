// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// stock-keeper client and the stub backend. It is populated by merging
// environment variables, command-line flags, an optional JSON file and the
// built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Auth holds token signing settings of the stub backend.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds the local session database settings of the client.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen address and timeouts of the stub backend.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the inventory API location used by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds settings of the client's background session keeper.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds log output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Auth configures how the stub backend issues tokens.
type Auth struct {
	// TokenSignKey signs and verifies HS256 access tokens.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the access token lifetime (e.g. "5m").
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// RefreshDuration is the lifetime of the refresh cookie (e.g. "24h").
	// Env: AUTH_REFRESH_DURATION
	RefreshDuration time.Duration `env:"REFRESH_DURATION"`
}

// Storage groups the configuration for the client's local storage.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite data source name, usually a file path
	// (e.g. "stock-keeper.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings of the stub backend.
type Server struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the location of the inventory API.
type Adapter struct {
	// APIURL is the base URL every endpoint path is resolved against
	// (e.g. "http://localhost:8000/api/v1").
	// Env: ADAPTER_API_URL
	APIURL string `env:"API_URL"`

	// RequestTimeout bounds a single outbound request, the token refresh
	// call included.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds the session keeper settings.
type Workers struct {
	// SessionCheckInterval is how often the keeper inspects the token.
	// Env: WORKERS_SESSION_CHECK_INTERVAL
	SessionCheckInterval time.Duration `env:"SESSION_CHECK_INTERVAL"`

	// RefreshSkew is how long before expiry the keeper refreshes.
	// Env: WORKERS_REFRESH_SKEW
	RefreshSkew time.Duration `env:"REFRESH_SKEW"`
}

// Log holds log output settings.
type Log struct {
	// Path is the client log file. Empty means "logs" next to the binary.
	// Env: LOG_PATH
	Path string `env:"PATH"`
}

// GetStructuredConfig loads and merges the configuration from all sources.
// For every field the first non-zero value wins, in this order:
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// The positional arguments left after flag parsing are returned as well.
func GetStructuredConfig(args []string) (*StructuredConfig, []string, error) {
	b := newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults()

	cfg, err := b.build()
	return cfg, b.args, err
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			TokenIssuer:     "stock-api",
			TokenDuration:   5 * time.Minute,
			RefreshDuration: 24 * time.Hour,
		},
		Storage: Storage{DB: DB{DSN: "stock-keeper.db"}},
		Server: Server{
			HTTPAddress:    "localhost:8000",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			APIURL:         "http://localhost:8000/api/v1",
			RequestTimeout: 10 * time.Second,
		},
		Workers: Workers{
			SessionCheckInterval: 30 * time.Second,
			RefreshSkew:          30 * time.Second,
		},
	}
}
