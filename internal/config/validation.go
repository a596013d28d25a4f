// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The privault Authors

package config

import (
	"net"
	"time"
)

// applyDefaults fills zero-valued optional fields with working defaults so
// a bare `privault` invocation runs against a local file-backed vault.
func (cfg *Config) applyDefaults() {
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = "privault.db"
	}
	if cfg.Provider.Mode == "" {
		cfg.Provider.Mode = ProviderLocal
	}
	if cfg.Provider.Timeout == 0 {
		cfg.Provider.Timeout = 15 * time.Second
	}
	if cfg.Server.Address == "" {
		cfg.Server.Address = "127.0.0.1:8687"
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = 30 * time.Second
	}
}

// validate checks that the final merged [Config] satisfies all application
// invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *Config) validate() error {
	if cfg.Provider.Mode != ProviderLocal && cfg.Provider.Mode != ProviderRemote {
		return ErrInvalidProviderConfigs
	}
	if cfg.Provider.Mode == ProviderRemote && cfg.Provider.BaseURL == "" {
		return ErrInvalidProviderConfigs
	}

	host, _, err := net.SplitHostPort(cfg.Server.Address)
	if err != nil {
		return ErrInvalidServerConfigs
	}
	// The facade is unauthenticated; refuse to listen on anything routable.
	if ip := net.ParseIP(host); host != "localhost" && (ip == nil || !ip.IsLoopback()) {
		return ErrInvalidServerConfigs
	}

	return nil
}
