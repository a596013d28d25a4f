// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The privault Authors

package models

import "fmt"

// Kind discriminates the two vault item variants.
type Kind string

const (
	KindNote Kind = "note"
	KindFile Kind = "file"
)

// Part tags understood by the encryption provider. The same tag must be
// supplied on encrypt and on the matching decrypt of that content.
const (
	TagNote         = "note"
	TagFile         = "file"
	TagFileMetadata = "file_metadata"
)

// Ciphertext is the opaque output of the encryption provider. The engine
// stores and forwards it but never inspects or mutates it.
type Ciphertext string

// NoteContent is the encrypted payload of a note item: a single
// ciphertext tagged "note".
type NoteContent struct {
	Ciphertext Ciphertext `json:"ciphertext"`
}

// FileContent is the encrypted payload of a file item: the file bytes
// tagged "file" and the serialized FileMetadata tagged "file_metadata",
// always encrypted together in that order.
type FileContent struct {
	Data     Ciphertext `json:"data"`
	Metadata Ciphertext `json:"metadata"`
}

// VaultItem is a persisted vault record. Exactly one of Note and File is
// non-nil, matching Kind. Tags carries one entry per encrypted part, in
// the order the parts were encrypted.
//
// ID and CreatedAt are immutable once the item is stored; UpdatedAt is
// bumped on every content mutation and never precedes CreatedAt.
type VaultItem struct {
	ID        string       `json:"id"`
	Kind      Kind         `json:"kind"`
	Title     string       `json:"title"`
	Tags      []string     `json:"tags"`
	Note      *NoteContent `json:"note,omitempty"`
	File      *FileContent `json:"file,omitempty"`
	CreatedAt int64        `json:"createdAt"` // epoch millis
	UpdatedAt int64        `json:"updatedAt"` // epoch millis
}

// NewItemID builds the canonical item identifier: "<kind>_<epochMillis>".
func NewItemID(kind Kind, createdAtMillis int64) string {
	return fmt.Sprintf("%s_%d", kind, createdAtMillis)
}

// PartCount reports how many encrypted parts the item's kind carries.
func (i VaultItem) PartCount() int {
	switch i.Kind {
	case KindNote:
		return 1
	case KindFile:
		return 2
	default:
		return 0
	}
}
