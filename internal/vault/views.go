package vault

import (
	"sync"

	"github.com/privault/privault/models"
)

// View is the decrypted overlay attached to an item after Reveal. Exactly
// one of Note or File is set, matching the item's kind. Views live only in
// process memory and are never serialized anywhere.
type View struct {
	Note *NoteView
	File *FileView
}

// NoteView carries revealed note text.
type NoteView struct {
	Text string
}

// FileView carries the revealed file payload in the string form it was
// stored in, plus its parsed metadata. The payload is normalized to bytes
// by the codec only when exporting or previewing.
type FileView struct {
	Payload  string
	Metadata models.FileMetadata
}

// ListedItem pairs a stored item with its view, if revealed.
type ListedItem struct {
	Item models.VaultItem
	View *View
}

// viewRegistry maps item ids to their ephemeral views. The map is the only
// place plaintext lives between a Reveal and the matching Conceal.
type viewRegistry struct {
	mu    sync.RWMutex
	views map[string]View
}

func newViewRegistry() *viewRegistry {
	return &viewRegistry{
		views: make(map[string]View),
	}
}

func (r *viewRegistry) put(id string, view View) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views[id] = view
}

func (r *viewRegistry) get(id string) (View, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	view, ok := r.views[id]
	return view, ok
}

func (r *viewRegistry) drop(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.views, id)
}
