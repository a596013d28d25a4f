package store

import (
	"context"

	"github.com/privault/privault/internal/config"
	"github.com/privault/privault/internal/logger"
)

// Storages bundles the persistence layer handed to the lifecycle service.
type Storages struct {
	Items ItemRepository
}

// NewStorages selects the backend from the storage configuration: an empty
// DSN yields the in-memory repository, anything else opens sqlite (including
// the ":memory:" DSN for a throwaway sqlite database).
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		return &Storages{Items: NewMemoryItemRepository(log)}, nil
	}

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	return &Storages{Items: NewVaultItemRepository(db, log)}, nil
}
