// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The privault Authors

package config

import (
	"time"
)

// Config is the top-level configuration container for privault. It is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type Config struct {
	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Provider holds configuration for the external encryption provider
	// boundary.
	Provider Provider `envPrefix:"PROVIDER_"`

	// Server holds the loopback HTTP facade settings.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the PRIVAULT_CONFIG environment variable or the
	// --config/-c flag.
	JSONFilePath string `env:"PRIVAULT_CONFIG"`
}

// Storage groups the configuration for the local vault store.
type Storage struct {
	// DB holds the embedded database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the embedded database backend.
type DB struct {
	// DSN is the path to the SQLite database file, or ":memory:" for the
	// in-memory backend (tests and throwaway sessions).
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Provider modes selecting the encryption provider implementation.
const (
	// ProviderLocal encrypts with a session key derived from a prompted
	// passphrase, entirely on-device.
	ProviderLocal = "local"

	// ProviderRemote delegates encryption to an external trust service
	// over HTTPS.
	ProviderRemote = "remote"
)

// Provider holds configuration for the encryption provider boundary.
type Provider struct {
	// Mode selects the provider implementation: "local" or "remote".
	// Env: PROVIDER_MODE
	Mode string `env:"MODE"`

	// BaseURL is the base URL of the external trust service. Required
	// when Mode is "remote".
	// Env: PROVIDER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Timeout is the per-call timeout for remote provider requests
	// (e.g. "15s").
	// Env: PROVIDER_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// SessionToken is the externally issued session token consumed by
	// the session gate and sent to the trust service as a bearer token.
	// Only used when Mode is "remote"; never persisted.
	// Env: PROVIDER_SESSION_TOKEN
	SessionToken string `env:"SESSION_TOKEN"`
}

// Server holds settings for the loopback HTTP facade.
type Server struct {
	// Address is the TCP address the facade listens on. The facade
	// performs no authentication, so anything other than a loopback
	// address is rejected by validation.
	// Env: SERVER_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetConfigWith loads, merges, and validates the privault configuration.
// The caller owns flag parsing (cobra) and passes the result as a partial
// config; sources are merged in the following priority order (earlier
// sources win for non-zero fields):
//  1. Environment variables
//  2. flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Missing optional values are filled with defaults before validation.
// Returns a fully populated *Config or an error if any source fails to
// load or the final config fails validation.
func GetConfigWith(flags *Config) (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlagConfig(flags).
		withJSON().
		build()
}
