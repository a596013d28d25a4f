package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("STORAGE_DB_DSN", "/tmp/vault.db")
	t.Setenv("PROVIDER_MODE", "remote")
	t.Setenv("PROVIDER_BASE_URL", "https://trust.example.com")
	t.Setenv("PROVIDER_TIMEOUT", "20s")
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:9999")

	cfg := &Config{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/tmp/vault.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "remote", cfg.Provider.Mode)
	assert.Equal(t, "https://trust.example.com", cfg.Provider.BaseURL)
	assert.Equal(t, 20*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.Address)
}

func TestParseJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	payload := `{
		"storage": {"db": {"dsn": "vault.db"}},
		"provider": {"mode": "remote", "base_url": "https://trust.example.com", "timeout": "10s"},
		"server": {"address": "localhost:8687", "request_timeout": "1m"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "vault.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "remote", cfg.Provider.Mode)
	assert.Equal(t, 10*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, "localhost:8687", cfg.Server.Address)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
}

func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON("/definitely/not/here.json")
	require.Error(t, err)
}

func TestGetConfigWith(t *testing.T) {
	t.Setenv("STORAGE_DB_DSN", "/tmp/env-vault.db")
	t.Setenv("PROVIDER_TIMEOUT", "25s")

	flags := &Config{}
	flags.Storage.DB.DSN = "/tmp/flag-vault.db"
	flags.Provider.Mode = ProviderLocal

	cfg, err := GetConfigWith(flags)
	require.NoError(t, err)

	// env wins over flags for fields both set
	assert.Equal(t, "/tmp/env-vault.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 25*time.Second, cfg.Provider.Timeout)
	// flag-only fields survive the merge
	assert.Equal(t, ProviderLocal, cfg.Provider.Mode)
	// untouched fields get defaults
	assert.Equal(t, "127.0.0.1:8687", cfg.Server.Address)
}

func TestGetConfigWith_NilFlags(t *testing.T) {
	cfg, err := GetConfigWith(nil)
	require.NoError(t, err)
	assert.Equal(t, ProviderLocal, cfg.Provider.Mode)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, "privault.db", cfg.Storage.DB.DSN)
	assert.Equal(t, ProviderLocal, cfg.Provider.Mode)
	assert.Equal(t, 15*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, "127.0.0.1:8687", cfg.Server.Address)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr error
	}{
		{
			name:   "defaults are valid",
			mutate: func(cfg *Config) {},
		},
		{
			name: "localhost listen address is valid",
			mutate: func(cfg *Config) {
				cfg.Server.Address = "localhost:9000"
			},
		},
		{
			name: "unknown provider mode",
			mutate: func(cfg *Config) {
				cfg.Provider.Mode = "cloud"
			},
			wantErr: ErrInvalidProviderConfigs,
		},
		{
			name: "remote mode requires base url",
			mutate: func(cfg *Config) {
				cfg.Provider.Mode = ProviderRemote
				cfg.Provider.BaseURL = ""
			},
			wantErr: ErrInvalidProviderConfigs,
		},
		{
			name: "non-loopback listen address rejected",
			mutate: func(cfg *Config) {
				cfg.Server.Address = "0.0.0.0:8687"
			},
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name: "malformed listen address rejected",
			mutate: func(cfg *Config) {
				cfg.Server.Address = "no-port"
			},
			wantErr: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.applyDefaults()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
