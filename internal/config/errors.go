package config

import "errors"

// Validation errors returned by [Config.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidProviderConfigs indicates invalid encryption provider
	// settings (for example, an unknown mode, or remote mode without a
	// base URL).
	ErrInvalidProviderConfigs = errors.New("invalid provider configuration")
	// ErrInvalidServerConfigs indicates invalid facade settings (for
	// example, a malformed or non-loopback listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
