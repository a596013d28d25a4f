package vault_test

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/privault/privault/internal/codec"
	"github.com/privault/privault/internal/envelope"
	"github.com/privault/privault/internal/logger"
	"github.com/privault/privault/internal/mock"
	"github.com/privault/privault/internal/store"
	"github.com/privault/privault/internal/vault"
	"github.com/privault/privault/models"
)

// stubEnvelope is a faithful reversible envelope: ciphertext embeds the tag
// and the base64 payload, and decrypting under a different tag fails, like
// a real provider would.
type stubEnvelope struct{}

func (stubEnvelope) Encrypt(_ context.Context, parts []envelope.Part) ([]models.Ciphertext, error) {
	out := make([]models.Ciphertext, len(parts))
	for i, part := range parts {
		out[i] = models.Ciphertext(fmt.Sprintf("enc:%s:%s",
			part.Tag, base64.StdEncoding.EncodeToString(part.Payload)))
	}
	return out, nil
}

func (stubEnvelope) Decrypt(_ context.Context, parts []envelope.CipherPart) ([][]byte, error) {
	out := make([][]byte, len(parts))
	for i, part := range parts {
		fields := strings.SplitN(string(part.Ciphertext), ":", 3)
		if len(fields) != 3 || fields[0] != "enc" {
			return nil, fmt.Errorf("opaque ciphertext in part %d", i)
		}
		if fields[1] != part.Tag {
			return nil, fmt.Errorf("tag mismatch in part %d: sealed under %q, requested %q",
				i, fields[1], part.Tag)
		}
		payload, err := base64.StdEncoding.DecodeString(fields[2])
		if err != nil {
			return nil, err
		}
		out[i] = payload
	}
	return out, nil
}

func newLifecycle(t *testing.T) (vault.ItemLifecycle, store.ItemRepository) {
	t.Helper()

	repo := store.NewMemoryItemRepository(logger.Nop())
	require.NoError(t, repo.Init(context.Background()))

	return vault.NewItemLifecycle(repo, stubEnvelope{}, logger.Nop()), repo
}

func binaryPayload() []byte {
	b := make([]byte, 256)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestCreateNote_Validation(t *testing.T) {
	lifecycle, repo := newLifecycle(t)
	ctx := context.Background()

	_, err := lifecycle.CreateNote(ctx, "   ", "milk, eggs")
	assert.ErrorIs(t, err, vault.ErrEmptyTitle)

	_, err = lifecycle.CreateNote(ctx, "Shopping", " \n\t ")
	assert.ErrorIs(t, err, vault.ErrEmptyContent)

	items, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, items, "validation failures must not reach the store")
}

func TestCreateFile_Validation(t *testing.T) {
	lifecycle, _ := newLifecycle(t)
	ctx := context.Background()

	t.Run("empty title falls back to the file name", func(t *testing.T) {
		item, err := lifecycle.CreateFile(ctx, "  ", []byte{1}, models.FileMetadata{
			Name:     "a.bin",
			MimeType: "application/octet-stream",
		})
		require.NoError(t, err)
		assert.Equal(t, "a.bin", item.Title)
	})

	t.Run("no title and no file name", func(t *testing.T) {
		_, err := lifecycle.CreateFile(ctx, "", []byte{1}, models.FileMetadata{})
		assert.ErrorIs(t, err, vault.ErrEmptyTitle)
	})

	t.Run("no payload and no file name", func(t *testing.T) {
		_, err := lifecycle.CreateFile(ctx, "Empty", nil, models.FileMetadata{})
		assert.ErrorIs(t, err, vault.ErrNoFileSelected)
	})

	t.Run("named file with zero bytes", func(t *testing.T) {
		_, err := lifecycle.CreateFile(ctx, "Empty", nil, models.FileMetadata{Name: "a.bin"})
		assert.ErrorIs(t, err, vault.ErrEmptyFile)
	})
}

func TestNoteLifecycle(t *testing.T) {
	lifecycle, _ := newLifecycle(t)
	ctx := context.Background()

	item, err := lifecycle.CreateNote(ctx, "Shopping", "milk, eggs")
	require.NoError(t, err)
	assert.Equal(t, models.KindNote, item.Kind)
	assert.True(t, strings.HasPrefix(item.ID, "note_"))
	assert.Equal(t, []string{models.TagNote}, item.Tags)
	assert.Equal(t, item.CreatedAt, item.UpdatedAt)
	require.NotNil(t, item.Note)
	assert.NotContains(t, string(item.Note.Ciphertext), "milk, eggs",
		"persisted content must not be plaintext")

	listed, err := lifecycle.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Nil(t, listed[0].View, "fresh item starts concealed")

	view, err := lifecycle.Reveal(ctx, item.ID)
	require.NoError(t, err)
	require.NotNil(t, view.Note)
	assert.Equal(t, "milk, eggs", view.Note.Text)

	listed, err = lifecycle.List(ctx)
	require.NoError(t, err)
	require.NotNil(t, listed[0].View)
	assert.Equal(t, "milk, eggs", listed[0].View.Note.Text)

	lifecycle.Conceal(item.ID)

	listed, err = lifecycle.List(ctx)
	require.NoError(t, err)
	assert.Nil(t, listed[0].View, "conceal drops the view")

	// Revealing again goes back through the envelope and still works.
	view, err = lifecycle.Reveal(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "milk, eggs", view.Note.Text)
}

func TestFileRoundTrip(t *testing.T) {
	lifecycle, _ := newLifecycle(t)
	ctx := context.Background()
	payload := binaryPayload()
	meta := models.FileMetadata{
		Name:         "a.bin",
		MimeType:     "application/octet-stream",
		SizeBytes:    256,
		LastModified: 1700000000000,
	}

	item, err := lifecycle.CreateFile(ctx, "Binary blob", payload, meta)
	require.NoError(t, err)
	assert.Equal(t, models.KindFile, item.Kind)
	assert.Equal(t, []string{models.TagFile, models.TagFileMetadata}, item.Tags)

	view, err := lifecycle.Reveal(ctx, item.ID)
	require.NoError(t, err)
	require.NotNil(t, view.File)
	assert.Equal(t, meta, view.File.Metadata)

	export, err := lifecycle.ExportFile(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "a.bin", export.Name)
	assert.Equal(t, "application/octet-stream", export.MIME)
	assert.Equal(t, payload, export.Data)

	_, err = lifecycle.PreviewDataURI(ctx, item.ID)
	assert.ErrorIs(t, err, vault.ErrNotPreviewable, "octet-stream is not an image")
}

func TestPreviewDataURI_Image(t *testing.T) {
	lifecycle, _ := newLifecycle(t)
	ctx := context.Background()
	payload := []byte{0x89, 'P', 'N', 'G'}

	item, err := lifecycle.CreateFile(ctx, "Avatar", payload, models.FileMetadata{
		Name:     "avatar.png",
		MimeType: "image/png",
	})
	require.NoError(t, err)

	_, err = lifecycle.Reveal(ctx, item.ID)
	require.NoError(t, err)

	uri, err := lifecycle.PreviewDataURI(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, codec.EncodeDataURI(payload, "image/png"), uri)
}

func TestExportFile_RequiresReveal(t *testing.T) {
	lifecycle, _ := newLifecycle(t)
	ctx := context.Background()

	item, err := lifecycle.CreateFile(ctx, "Binary blob", []byte{1, 2, 3}, models.FileMetadata{
		Name: "a.bin",
	})
	require.NoError(t, err)

	_, err = lifecycle.ExportFile(ctx, item.ID)
	assert.ErrorIs(t, err, vault.ErrNotRevealed)
}

func TestExportFile_OnNote(t *testing.T) {
	lifecycle, _ := newLifecycle(t)
	ctx := context.Background()

	item, err := lifecycle.CreateNote(ctx, "Shopping", "milk, eggs")
	require.NoError(t, err)
	_, err = lifecycle.Reveal(ctx, item.ID)
	require.NoError(t, err)

	_, err = lifecycle.ExportFile(ctx, item.ID)
	assert.ErrorIs(t, err, vault.ErrNotAFile)
}

func TestUpdateNote(t *testing.T) {
	lifecycle, repo := newLifecycle(t)
	ctx := context.Background()

	item, err := lifecycle.CreateNote(ctx, "Shopping", "milk, eggs")
	require.NoError(t, err)
	_, err = lifecycle.Reveal(ctx, item.ID)
	require.NoError(t, err)

	updated, err := lifecycle.UpdateNote(ctx, item.ID, "Groceries", "milk, eggs, bread")
	require.NoError(t, err)
	assert.Equal(t, item.ID, updated.ID)
	assert.Equal(t, item.CreatedAt, updated.CreatedAt)
	assert.GreaterOrEqual(t, updated.UpdatedAt, updated.CreatedAt)
	assert.Equal(t, "Groceries", updated.Title)

	listed, err := lifecycle.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Nil(t, listed[0].View, "update drops the stale view")

	stored, err := repo.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, stored)

	view, err := lifecycle.Reveal(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "milk, eggs, bread", view.Note.Text)
}

func TestUpdateNote_OnFile(t *testing.T) {
	lifecycle, _ := newLifecycle(t)
	ctx := context.Background()

	item, err := lifecycle.CreateFile(ctx, "Binary blob", []byte{1}, models.FileMetadata{Name: "a.bin"})
	require.NoError(t, err)

	_, err = lifecycle.UpdateNote(ctx, item.ID, "Title", "content")
	assert.ErrorIs(t, err, vault.ErrNotANote)
}

func TestDeleteWhileRevealed(t *testing.T) {
	lifecycle, repo := newLifecycle(t)
	ctx := context.Background()

	item, err := lifecycle.CreateNote(ctx, "Shopping", "milk, eggs")
	require.NoError(t, err)
	_, err = lifecycle.Reveal(ctx, item.ID)
	require.NoError(t, err)

	require.NoError(t, lifecycle.Delete(ctx, item.ID))

	_, err = repo.Get(ctx, item.ID)
	assert.ErrorIs(t, err, store.ErrItemNotFound)

	listed, err := lifecycle.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestReveal_AbsentItem(t *testing.T) {
	lifecycle, _ := newLifecycle(t)

	_, err := lifecycle.Reveal(context.Background(), "note_404")
	assert.ErrorIs(t, err, store.ErrItemNotFound)
}

func TestReveal_CorruptTags(t *testing.T) {
	lifecycle, repo := newLifecycle(t)
	ctx := context.Background()

	item := models.VaultItem{
		ID:        "note_1",
		Kind:      models.KindNote,
		Title:     "broken",
		Tags:      []string{models.TagNote, "stray"},
		Note:      &models.NoteContent{Ciphertext: "enc:note:bQ=="},
		CreatedAt: 1,
		UpdatedAt: 1,
	}
	require.NoError(t, repo.Add(ctx, item))

	_, err := lifecycle.Reveal(ctx, item.ID)
	assert.ErrorIs(t, err, vault.ErrCorruptItem)
}

func TestList_NewestFirst(t *testing.T) {
	lifecycle, repo := newLifecycle(t)
	ctx := context.Background()

	for i, id := range []string{"note_100", "note_300", "note_200"} {
		require.NoError(t, repo.Add(ctx, models.VaultItem{
			ID:        id,
			Kind:      models.KindNote,
			Title:     fmt.Sprintf("note %d", i),
			Tags:      []string{models.TagNote},
			Note:      &models.NoteContent{Ciphertext: "enc:note:bQ=="},
			CreatedAt: int64(100 * (i + 1)),
			UpdatedAt: int64(100 * (i + 1)),
		}))
	}

	listed, err := lifecycle.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, int64(300), listed[0].Item.CreatedAt)
	assert.Equal(t, int64(200), listed[1].Item.CreatedAt)
	assert.Equal(t, int64(100), listed[2].Item.CreatedAt)
}

func TestCreateNote_EncryptFailureNeverReachesStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := mock.NewMockService(ctrl)
	repo := mock.NewMockItemRepository(ctrl)
	lifecycle := vault.NewItemLifecycle(repo, env, logger.Nop())
	ctx := context.Background()

	env.EXPECT().Encrypt(ctx, gomock.Any()).
		Return(nil, fmt.Errorf("%w: no session", envelope.ErrUnauthenticated))

	// No expectation on repo.Add: any store call fails the test.
	_, err := lifecycle.CreateNote(ctx, "Shopping", "milk, eggs")
	assert.ErrorIs(t, err, envelope.ErrUnauthenticated)
}

func TestCreateNote_StoreFailureLeavesNoView(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := mock.NewMockService(ctrl)
	repo := mock.NewMockItemRepository(ctrl)
	lifecycle := vault.NewItemLifecycle(repo, env, logger.Nop())
	ctx := context.Background()

	env.EXPECT().Encrypt(ctx, gomock.Any()).
		Return([]models.Ciphertext{"ct-0"}, nil)
	repo.EXPECT().Add(ctx, gomock.Any()).
		Return(errors.New("disk full"))

	_, err := lifecycle.CreateNote(ctx, "Shopping", "milk, eggs")
	assert.Error(t, err)
}

func TestReveal_DecryptFailureKeepsItemConcealed(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := mock.NewMockService(ctrl)
	repo := mock.NewMockItemRepository(ctrl)
	lifecycle := vault.NewItemLifecycle(repo, env, logger.Nop())
	ctx := context.Background()

	item := models.VaultItem{
		ID:        "note_1",
		Kind:      models.KindNote,
		Title:     "Shopping",
		Tags:      []string{models.TagNote},
		Note:      &models.NoteContent{Ciphertext: "ct-0"},
		CreatedAt: 1,
		UpdatedAt: 1,
	}

	repo.EXPECT().Get(ctx, "note_1").Return(item, nil).Times(2)
	env.EXPECT().Decrypt(ctx, gomock.Any()).
		Return(nil, fmt.Errorf("%w: bad tag", envelope.ErrDecrypt)).Times(2)

	_, err := lifecycle.Reveal(ctx, "note_1")
	assert.ErrorIs(t, err, envelope.ErrDecrypt)

	// Still concealed: export has no view to work from, and a second
	// reveal hits the envelope again.
	_, err = lifecycle.ExportFile(ctx, "note_1")
	assert.ErrorIs(t, err, vault.ErrNotRevealed)

	_, err = lifecycle.Reveal(ctx, "note_1")
	assert.ErrorIs(t, err, envelope.ErrDecrypt)
}
