// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The privault Authors

// Package vault implements the item lifecycle on top of the store, the
// crypto envelope, and the payload codec.
package vault

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/privault/privault/internal/codec"
	"github.com/privault/privault/internal/envelope"
	"github.com/privault/privault/internal/logger"
	"github.com/privault/privault/internal/store"
	"github.com/privault/privault/models"
)

type itemLifecycle struct {
	items    store.ItemRepository
	envelope envelope.Service
	views    *viewRegistry
	logger   *logger.Logger

	now func() time.Time
}

func NewItemLifecycle(items store.ItemRepository, env envelope.Service, logger *logger.Logger) ItemLifecycle {
	return &itemLifecycle{
		items:    items,
		envelope: env,
		views:    newViewRegistry(),
		logger:   logger,
		now:      time.Now,
	}
}

func (s *itemLifecycle) CreateNote(ctx context.Context, title, content string) (models.VaultItem, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.VaultItem{}, ErrEmptyTitle
	}
	if strings.TrimSpace(content) == "" {
		return models.VaultItem{}, ErrEmptyContent
	}

	ciphertexts, err := s.envelope.Encrypt(ctx, []envelope.Part{
		{Payload: []byte(content), Tag: models.TagNote},
	})
	if err != nil {
		return models.VaultItem{}, err
	}

	nowMillis := s.now().UnixMilli()
	item := models.VaultItem{
		ID:        models.NewItemID(models.KindNote, nowMillis),
		Kind:      models.KindNote,
		Title:     title,
		Tags:      []string{models.TagNote},
		Note:      &models.NoteContent{Ciphertext: ciphertexts[0]},
		CreatedAt: nowMillis,
		UpdatedAt: nowMillis,
	}

	if err := s.items.Add(ctx, item); err != nil {
		return models.VaultItem{}, err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "itemLifecycle.CreateNote").
		Str("id", item.ID).
		Msg("note created")
	return item, nil
}

func (s *itemLifecycle) CreateFile(ctx context.Context, title string, data []byte, meta models.FileMetadata) (models.VaultItem, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		// An untitled upload is named after the file itself.
		title = strings.TrimSpace(meta.Name)
	}
	if title == "" {
		return models.VaultItem{}, ErrEmptyTitle
	}
	if len(data) == 0 {
		// A named zero-byte file was selected but is empty; no name and
		// no bytes means nothing was selected at all.
		if strings.TrimSpace(meta.Name) == "" {
			return models.VaultItem{}, ErrNoFileSelected
		}
		return models.VaultItem{}, ErrEmptyFile
	}

	metaJSON, err := meta.Marshal()
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("serialize file metadata: %w", err)
	}

	// Payload goes in as base64 so the stored plaintext shape is one of
	// the codec's canonical string encodings.
	ciphertexts, err := s.envelope.Encrypt(ctx, []envelope.Part{
		{Payload: []byte(codec.EncodeBase64(data)), Tag: models.TagFile},
		{Payload: metaJSON, Tag: models.TagFileMetadata},
	})
	if err != nil {
		return models.VaultItem{}, err
	}

	nowMillis := s.now().UnixMilli()
	item := models.VaultItem{
		ID:    models.NewItemID(models.KindFile, nowMillis),
		Kind:  models.KindFile,
		Title: title,
		Tags:  []string{models.TagFile, models.TagFileMetadata},
		File: &models.FileContent{
			Data:     ciphertexts[0],
			Metadata: ciphertexts[1],
		},
		CreatedAt: nowMillis,
		UpdatedAt: nowMillis,
	}

	if err := s.items.Add(ctx, item); err != nil {
		return models.VaultItem{}, err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "itemLifecycle.CreateFile").
		Str("id", item.ID).
		Int("size", len(data)).
		Msg("file created")
	return item, nil
}

func (s *itemLifecycle) UpdateNote(ctx context.Context, id, title, content string) (models.VaultItem, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.VaultItem{}, ErrEmptyTitle
	}
	if strings.TrimSpace(content) == "" {
		return models.VaultItem{}, ErrEmptyContent
	}

	existing, err := s.items.Get(ctx, id)
	if err != nil {
		return models.VaultItem{}, err
	}
	if existing.Kind != models.KindNote {
		return models.VaultItem{}, fmt.Errorf("%w: %s", ErrNotANote, id)
	}

	ciphertexts, err := s.envelope.Encrypt(ctx, []envelope.Part{
		{Payload: []byte(content), Tag: models.TagNote},
	})
	if err != nil {
		return models.VaultItem{}, err
	}

	// updatedAt never moves backwards past createdAt, even with a skewed
	// clock.
	nowMillis := s.now().UnixMilli()
	if nowMillis < existing.CreatedAt {
		nowMillis = existing.CreatedAt
	}

	updated := existing
	updated.Title = title
	updated.Note = &models.NoteContent{Ciphertext: ciphertexts[0]}
	updated.UpdatedAt = nowMillis

	if err := s.items.Update(ctx, updated); err != nil {
		return models.VaultItem{}, err
	}

	// The old plaintext no longer matches the record.
	s.views.drop(id)

	logger.FromContext(ctx).Debug().
		Str("func", "itemLifecycle.UpdateNote").
		Str("id", id).
		Msg("note updated")
	return updated, nil
}

func (s *itemLifecycle) Reveal(ctx context.Context, id string) (View, error) {
	item, err := s.items.Get(ctx, id)
	if err != nil {
		return View{}, err
	}
	if len(item.Tags) != item.PartCount() {
		return View{}, fmt.Errorf("%w: %s has %d tags for %d parts",
			ErrCorruptItem, id, len(item.Tags), item.PartCount())
	}

	var view View

	switch item.Kind {
	case models.KindNote:
		plaintexts, err := s.envelope.Decrypt(ctx, []envelope.CipherPart{
			{Ciphertext: item.Note.Ciphertext, Tag: item.Tags[0]},
		})
		if err != nil {
			return View{}, err
		}
		view.Note = &NoteView{Text: string(plaintexts[0])}

	case models.KindFile:
		plaintexts, err := s.envelope.Decrypt(ctx, []envelope.CipherPart{
			{Ciphertext: item.File.Data, Tag: item.Tags[0]},
			{Ciphertext: item.File.Metadata, Tag: item.Tags[1]},
		})
		if err != nil {
			return View{}, err
		}

		meta, metaErr := models.UnmarshalFileMetadata(plaintexts[1])
		if metaErr != nil {
			return View{}, fmt.Errorf("%w: %s", ErrMetadataDecode, metaErr)
		}
		view.File = &FileView{
			Payload:  string(plaintexts[0]),
			Metadata: meta,
		}

	default:
		return View{}, fmt.Errorf("%w: unknown kind %q", ErrCorruptItem, item.Kind)
	}

	s.views.put(id, view)
	return view, nil
}

func (s *itemLifecycle) Conceal(id string) {
	s.views.drop(id)
}

func (s *itemLifecycle) Delete(ctx context.Context, id string) error {
	// The view goes away no matter what the store says.
	defer s.views.drop(id)

	if err := s.items.Delete(ctx, id); err != nil {
		return err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "itemLifecycle.Delete").
		Str("id", id).
		Msg("item deleted")
	return nil
}

func (s *itemLifecycle) List(ctx context.Context) ([]ListedItem, error) {
	items, err := s.items.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	// The store gives no ordering; the UI wants newest first.
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt != items[j].CreatedAt {
			return items[i].CreatedAt > items[j].CreatedAt
		}
		return items[i].ID > items[j].ID
	})

	listed := make([]ListedItem, len(items))
	for i, item := range items {
		listed[i] = ListedItem{Item: item}
		if view, ok := s.views.get(item.ID); ok {
			listed[i].View = &view
		}
	}
	return listed, nil
}

func (s *itemLifecycle) ExportFile(_ context.Context, id string) (codec.FileExport, error) {
	fileView, err := s.revealedFile(id)
	if err != nil {
		return codec.FileExport{}, err
	}

	data, err := codec.Decode(fileView.Payload)
	if err != nil {
		return codec.FileExport{}, err
	}

	return codec.FileExport{
		Name: fileView.Metadata.Name,
		MIME: fileView.Metadata.MimeType,
		Data: data,
	}, nil
}

func (s *itemLifecycle) PreviewDataURI(_ context.Context, id string) (string, error) {
	fileView, err := s.revealedFile(id)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(fileView.Metadata.MimeType, "image/") {
		return "", fmt.Errorf("%w: %s", ErrNotPreviewable, fileView.Metadata.MimeType)
	}

	data, err := codec.Decode(fileView.Payload)
	if err != nil {
		return "", err
	}

	return codec.EncodeDataURI(data, fileView.Metadata.MimeType), nil
}

func (s *itemLifecycle) revealedFile(id string) (*FileView, error) {
	view, ok := s.views.get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotRevealed, id)
	}
	if view.File == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotAFile, id)
	}
	return view.File, nil
}
