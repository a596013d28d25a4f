// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The privault Authors

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"

	sq "github.com/Masterminds/squirrel"

	"github.com/privault/privault/internal/logger"
	"github.com/privault/privault/models"
)

const vaultItemsTable = "vault_items"

var vaultItemColumns = []string{
	"id",
	"kind",
	"title",
	"tags",
	"note_ciphertext",
	"file_ciphertext",
	"file_metadata_ciphertext",
	"created_at",
	"updated_at",
}

// sqlite uses ? placeholders.
var sb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

type vaultItemRepository struct {
	*DB
	logger *logger.Logger

	initialized atomic.Bool
}

// NewVaultItemRepository constructs the sqlite-backed [ItemRepository].
// Init must be called before any other operation.
func NewVaultItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	return &vaultItemRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *vaultItemRepository) Init(ctx context.Context) error {
	if r.initialized.Load() {
		return nil
	}

	if err := r.DB.Migrate(); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "vaultItemRepository.Init").
			Msg("failed to migrate vault items collection")
		return fmt.Errorf("init vault store: %w", err)
	}

	r.initialized.Store(true)
	return nil
}

func (r *vaultItemRepository) ready() error {
	if !r.initialized.Load() {
		return ErrNotInitialized
	}
	return nil
}

func (r *vaultItemRepository) Add(ctx context.Context, item models.VaultItem) error {
	if err := r.ready(); err != nil {
		return err
	}
	log := logger.FromContext(ctx)

	row, err := encodeVaultItem(item)
	if err != nil {
		return err
	}

	query, args, err := sb.Insert(vaultItemsTable).
		Columns(vaultItemColumns...).
		Values(row.id, row.kind, row.title, row.tags,
			row.noteCiphertext, row.fileCiphertext, row.fileMetadataCiphertext,
			row.createdAt, row.updatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		if isConstraintViolation(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateID, item.ID)
		}
		log.Err(err).
			Str("func", "vaultItemRepository.Add").
			Str("id", item.ID).
			Msg("failed to execute insert for vault item")
		return fmt.Errorf("%w: insert vault item %s: %s", ErrExecutingStatement, item.ID, err)
	}

	return nil
}

func (r *vaultItemRepository) Update(ctx context.Context, item models.VaultItem) error {
	if err := r.ready(); err != nil {
		return err
	}
	log := logger.FromContext(ctx)

	row, err := encodeVaultItem(item)
	if err != nil {
		return err
	}

	// Whole-record upsert by id; the caller preserves id and created_at.
	query, args, err := sb.Insert(vaultItemsTable).
		Columns(vaultItemColumns...).
		Values(row.id, row.kind, row.title, row.tags,
			row.noteCiphertext, row.fileCiphertext, row.fileMetadataCiphertext,
			row.createdAt, row.updatedAt).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			kind                     = excluded.kind,
			title                    = excluded.title,
			tags                     = excluded.tags,
			note_ciphertext          = excluded.note_ciphertext,
			file_ciphertext          = excluded.file_ciphertext,
			file_metadata_ciphertext = excluded.file_metadata_ciphertext,
			created_at               = excluded.created_at,
			updated_at               = excluded.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "vaultItemRepository.Update").
			Str("id", item.ID).
			Msg("failed to execute upsert for vault item")
		return fmt.Errorf("%w: upsert vault item %s: %s", ErrExecutingStatement, item.ID, err)
	}

	return nil
}

func (r *vaultItemRepository) Delete(ctx context.Context, id string) error {
	if err := r.ready(); err != nil {
		return err
	}
	log := logger.FromContext(ctx)

	query, args, err := sb.Delete(vaultItemsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s", ErrBuildingSQLQuery, err)
	}

	// Deleting an absent id affects zero rows; that is not an error.
	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "vaultItemRepository.Delete").
			Str("id", id).
			Msg("failed to execute delete for vault item")
		return fmt.Errorf("%w: delete vault item %s: %s", ErrExecutingStatement, id, err)
	}

	return nil
}

func (r *vaultItemRepository) Get(ctx context.Context, id string) (models.VaultItem, error) {
	if err := r.ready(); err != nil {
		return models.VaultItem{}, err
	}
	log := logger.FromContext(ctx)

	query, args, err := sb.Select(vaultItemColumns...).
		From(vaultItemsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: %s", ErrBuildingSQLQuery, err)
	}

	var row vaultItemRow
	scanErr := r.DB.QueryRowContext(ctx, query, args...).Scan(
		&row.id, &row.kind, &row.title, &row.tags,
		&row.noteCiphertext, &row.fileCiphertext, &row.fileMetadataCiphertext,
		&row.createdAt, &row.updatedAt,
	)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.VaultItem{}, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "vaultItemRepository.Get").
			Str("id", id).
			Msg("failed to scan vault item row")
		return models.VaultItem{}, fmt.Errorf("%w: %s", ErrScanningRow, scanErr)
	}

	return decodeVaultItem(row)
}

func (r *vaultItemRepository) GetAll(ctx context.Context) ([]models.VaultItem, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx)

	query, args, err := sb.Select(vaultItemColumns...).
		From(vaultItemsTable).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "vaultItemRepository.GetAll").
			Msg("failed to execute query for getting all vault items")
		return nil, fmt.Errorf("%w: %s", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []models.VaultItem

	for rows.Next() {
		var row vaultItemRow

		scanErr := rows.Scan(
			&row.id, &row.kind, &row.title, &row.tags,
			&row.noteCiphertext, &row.fileCiphertext, &row.fileMetadataCiphertext,
			&row.createdAt, &row.updatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "vaultItemRepository.GetAll").
				Msg("failed to scan vault item row")
			return nil, fmt.Errorf("%w: %s", ErrScanningRow, scanErr)
		}

		item, decodeErr := decodeVaultItem(row)
		if decodeErr != nil {
			return nil, decodeErr
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "vaultItemRepository.GetAll").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %s", ErrExecutingQuery, rowsErr)
	}

	return items, nil
}

// vaultItemRow is the flat SQL representation of a vault item. The tagged
// union is flattened into nullable ciphertext columns; tags are stored as
// a JSON array.
type vaultItemRow struct {
	id                     string
	kind                   string
	title                  string
	tags                   string
	noteCiphertext         sql.NullString
	fileCiphertext         sql.NullString
	fileMetadataCiphertext sql.NullString
	createdAt              int64
	updatedAt              int64
}

func encodeVaultItem(item models.VaultItem) (vaultItemRow, error) {
	tags, err := json.Marshal(item.Tags)
	if err != nil {
		return vaultItemRow{}, fmt.Errorf("%w: encode tags: %s", ErrDecodingRecord, err)
	}

	row := vaultItemRow{
		id:        item.ID,
		kind:      string(item.Kind),
		title:     item.Title,
		tags:      string(tags),
		createdAt: item.CreatedAt,
		updatedAt: item.UpdatedAt,
	}

	if item.Note != nil {
		row.noteCiphertext = sql.NullString{String: string(item.Note.Ciphertext), Valid: true}
	}
	if item.File != nil {
		row.fileCiphertext = sql.NullString{String: string(item.File.Data), Valid: true}
		row.fileMetadataCiphertext = sql.NullString{String: string(item.File.Metadata), Valid: true}
	}

	return row, nil
}

func decodeVaultItem(row vaultItemRow) (models.VaultItem, error) {
	var tags []string
	if err := json.Unmarshal([]byte(row.tags), &tags); err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: decode tags of %s: %s", ErrDecodingRecord, row.id, err)
	}

	item := models.VaultItem{
		ID:        row.id,
		Kind:      models.Kind(row.kind),
		Title:     row.title,
		Tags:      tags,
		CreatedAt: row.createdAt,
		UpdatedAt: row.updatedAt,
	}

	switch item.Kind {
	case models.KindNote:
		if !row.noteCiphertext.Valid {
			return models.VaultItem{}, fmt.Errorf("%w: note %s has no ciphertext", ErrDecodingRecord, row.id)
		}
		item.Note = &models.NoteContent{Ciphertext: models.Ciphertext(row.noteCiphertext.String)}
	case models.KindFile:
		if !row.fileCiphertext.Valid || !row.fileMetadataCiphertext.Valid {
			return models.VaultItem{}, fmt.Errorf("%w: file %s is missing ciphertext parts", ErrDecodingRecord, row.id)
		}
		item.File = &models.FileContent{
			Data:     models.Ciphertext(row.fileCiphertext.String),
			Metadata: models.Ciphertext(row.fileMetadataCiphertext.String),
		}
	default:
		return models.VaultItem{}, fmt.Errorf("%w: unknown kind %q for %s", ErrDecodingRecord, row.kind, row.id)
	}

	return item, nil
}
