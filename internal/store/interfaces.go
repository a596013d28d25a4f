package store

import (
	"context"

	"github.com/privault/privault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ItemRepository is the keyed persistent collection of vault items, one
// record per item id. Implementations serialize operations per key; no
// cross-key transactions are exposed.
//
// Init must be called, and complete successfully, before any other
// operation; every other method returns [ErrNotInitialized] otherwise.
type ItemRepository interface {
	// Init establishes the backing collection and its secondary indexes
	// if absent. Idempotent.
	Init(ctx context.Context) error

	// Add inserts a new record. Returns [ErrDuplicateID] if the id
	// already exists; insert is not an upsert.
	Add(ctx context.Context, item models.VaultItem) error

	// Update upserts by id, replacing the whole record. The caller is
	// responsible for preserving ID and CreatedAt.
	Update(ctx context.Context, item models.VaultItem) error

	// Delete removes the record if present; absence is not an error.
	Delete(ctx context.Context, id string) error

	// Get returns the record, or [ErrItemNotFound] for absence.
	Get(ctx context.Context, id string) (models.VaultItem, error)

	// GetAll returns every record in unspecified order; callers sort
	// explicitly.
	GetAll(ctx context.Context) ([]models.VaultItem, error)
}
