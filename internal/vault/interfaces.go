package vault

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_mock.go -package=mock

import (
	"context"

	"github.com/privault/privault/internal/codec"
	"github.com/privault/privault/models"
)

// ItemLifecycle orchestrates validation, the crypto envelope, and the item
// store. Items move between two states: Encrypted (at rest, after creation,
// after Conceal) and Decrypted (an ephemeral view is attached after a
// successful Reveal). Plaintext never reaches the store.
type ItemLifecycle interface {
	// CreateNote encrypts content and persists a new note item. Title and
	// content must be non-empty after trimming.
	CreateNote(ctx context.Context, title, content string) (models.VaultItem, error)

	// CreateFile encrypts the payload and its metadata as two tagged
	// parts and persists a new file item. An empty title falls back to
	// the file name from meta.
	CreateFile(ctx context.Context, title string, data []byte, meta models.FileMetadata) (models.VaultItem, error)

	// UpdateNote re-encrypts a note's content, preserving id and
	// createdAt. Any attached view is dropped: its plaintext is stale.
	UpdateNote(ctx context.Context, id, title, content string) (models.VaultItem, error)

	// Reveal decrypts the item's parts and attaches an ephemeral view.
	// Every call goes back to the provider; plaintext is never cached
	// across a conceal/reveal cycle.
	Reveal(ctx context.Context, id string) (View, error)

	// Conceal drops the item's ephemeral view. Purely local: the
	// ciphertext at rest was never mutated, so nothing is re-encrypted
	// and the store is not touched.
	Conceal(id string)

	// Delete removes the record and drops any attached view, whether or
	// not the store delete succeeds.
	Delete(ctx context.Context, id string) error

	// List returns all items merged with their views, newest first.
	List(ctx context.Context) ([]ListedItem, error)

	// ExportFile normalizes a revealed file payload to canonical bytes
	// for saving under its original name and MIME type.
	ExportFile(ctx context.Context, id string) (codec.FileExport, error)

	// PreviewDataURI renders a revealed image file as a base64 data URI.
	PreviewDataURI(ctx context.Context, id string) (string, error)
}
