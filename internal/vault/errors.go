package vault

import (
	"errors"
	"fmt"

	"github.com/privault/privault/internal/codec"
)

// Validation errors. No I/O has been attempted when one of these is
// returned.
var (
	// ErrEmptyTitle is returned when a title is empty after trimming and
	// no fallback name is available.
	ErrEmptyTitle = errors.New("title must not be empty")

	// ErrEmptyContent is returned when note content is empty after
	// trimming.
	ErrEmptyContent = errors.New("note content must not be empty")

	// ErrNoFileSelected is returned when a file item is created with
	// neither payload bytes nor a file name.
	ErrNoFileSelected = errors.New("no file selected")

	// ErrEmptyFile is returned when the selected file carries zero
	// bytes. An empty payload has no canonical encoded form and could
	// never round-trip through export.
	ErrEmptyFile = errors.New("selected file is empty")

	// ErrNotANote is returned when a note-only operation targets a file
	// item.
	ErrNotANote = errors.New("item is not a note")

	// ErrNotAFile is returned when a file-only operation targets a note
	// item.
	ErrNotAFile = errors.New("item is not a file")

	// ErrNotRevealed is returned when export or preview is requested for
	// an item that has no ephemeral view attached.
	ErrNotRevealed = errors.New("item is not revealed")

	// ErrNotPreviewable is returned when a preview is requested for a
	// file whose MIME type is not an image.
	ErrNotPreviewable = errors.New("file is not previewable")

	// ErrCorruptItem is returned when a stored item's tag list does not
	// match the part count of its kind. Decrypting such an item would
	// feed parts to the provider under the wrong tags.
	ErrCorruptItem = errors.New("item tags do not match its encrypted parts")
)

// ErrMetadataDecode wraps the codec decode sentinel: a revealed
// file_metadata part that is not valid metadata JSON is a payload decoding
// failure, not a crypto one.
var ErrMetadataDecode = fmt.Errorf("%w: file metadata is not valid json", codec.ErrDecode)
