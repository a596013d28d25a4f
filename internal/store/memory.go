package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/privault/privault/internal/logger"
	"github.com/privault/privault/models"
)

// memoryItemRepository is a map-backed [ItemRepository] used when the DSN is
// empty. It honors the same contract as the sqlite repository: Init gates all
// operations, Add rejects duplicates, Delete tolerates absent ids.
type memoryItemRepository struct {
	mu          sync.RWMutex
	items       map[string]models.VaultItem
	initialized bool

	logger *logger.Logger
}

func NewMemoryItemRepository(logger *logger.Logger) ItemRepository {
	return &memoryItemRepository{
		logger: logger,
	}
}

func (r *memoryItemRepository) Init(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.initialized {
		return nil
	}
	r.items = make(map[string]models.VaultItem)
	r.initialized = true
	return nil
}

func (r *memoryItemRepository) Add(_ context.Context, item models.VaultItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.initialized {
		return ErrNotInitialized
	}
	if _, exists := r.items[item.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, item.ID)
	}

	r.items[item.ID] = cloneVaultItem(item)
	return nil
}

func (r *memoryItemRepository) Update(_ context.Context, item models.VaultItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.initialized {
		return ErrNotInitialized
	}

	r.items[item.ID] = cloneVaultItem(item)
	return nil
}

func (r *memoryItemRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.initialized {
		return ErrNotInitialized
	}

	delete(r.items, id)
	return nil
}

func (r *memoryItemRepository) Get(_ context.Context, id string) (models.VaultItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.initialized {
		return models.VaultItem{}, ErrNotInitialized
	}

	item, exists := r.items[id]
	if !exists {
		return models.VaultItem{}, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	return cloneVaultItem(item), nil
}

func (r *memoryItemRepository) GetAll(_ context.Context) ([]models.VaultItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.initialized {
		return nil, ErrNotInitialized
	}

	items := make([]models.VaultItem, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, cloneVaultItem(item))
	}
	return items, nil
}

// cloneVaultItem deep-copies an item so the map never shares mutable state
// with callers.
func cloneVaultItem(item models.VaultItem) models.VaultItem {
	clone := item

	if item.Tags != nil {
		clone.Tags = make([]string, len(item.Tags))
		copy(clone.Tags, item.Tags)
	}
	if item.Note != nil {
		note := *item.Note
		clone.Note = &note
	}
	if item.File != nil {
		file := *item.File
		clone.File = &file
	}

	return clone
}
