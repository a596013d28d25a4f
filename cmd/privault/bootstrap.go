package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/privault/privault/internal/config"
	"github.com/privault/privault/internal/envelope"
	"github.com/privault/privault/internal/logger"
	"github.com/privault/privault/internal/provider"
	"github.com/privault/privault/internal/store"
	"github.com/privault/privault/internal/vault"
)

type engine struct {
	cfg       *config.Config
	lifecycle vault.ItemLifecycle
}

// buildEngine wires config, store, provider, and lifecycle. The local
// provider prompts for the master passphrase before anything else starts;
// the remote one picks up the externally issued session token from the
// environment.
func buildEngine(ctx context.Context, log *logger.Logger) (*engine, error) {
	cfg, err := config.GetConfigWith(flagCfg)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("open vault store: %w", err)
	}
	if err := storages.Items.Init(ctx); err != nil {
		return nil, err
	}

	var (
		prov envelope.Provider
		gate envelope.SessionGate
	)
	switch cfg.Provider.Mode {
	case config.ProviderLocal:
		passphrase, promptErr := promptPassphrase()
		if promptErr != nil {
			return nil, promptErr
		}
		local, localErr := provider.NewLocal(passphrase)
		if localErr != nil {
			return nil, localErr
		}
		prov, gate = local, provider.NewStaticGate()

	case config.ProviderRemote:
		prov = provider.NewRemote(cfg.Provider, cfg.Provider.SessionToken, log)
		gate = provider.NewTokenGate(cfg.Provider.SessionToken)

	default:
		return nil, fmt.Errorf("unknown provider mode %q", cfg.Provider.Mode)
	}

	lifecycle := vault.NewItemLifecycle(storages.Items, envelope.NewService(prov, gate, log), log)

	return &engine{
		cfg:       cfg,
		lifecycle: lifecycle,
	}, nil
}

func promptPassphrase() ([]byte, error) {
	fmt.Fprint(os.Stderr, "Master passphrase: ")
	passphrase, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("read passphrase: %w", err)
	}
	return passphrase, nil
}
