package provider

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/privault/privault/internal/envelope"
	"github.com/privault/privault/models"
)

func TestNewLocal_EmptyPassphrase(t *testing.T) {
	_, err := NewLocal(nil)
	assert.ErrorIs(t, err, ErrEmptyPassphrase)
}

func TestLocal_RoundTrip(t *testing.T) {
	local, err := NewLocal([]byte("correct horse battery staple"))
	require.NoError(t, err)
	ctx := context.Background()

	parts := []envelope.Part{
		{Payload: []byte("milk, eggs"), Tag: models.TagNote},
		{Payload: []byte{0x00, 0x01, 0xfe, 0xff}, Tag: models.TagFile},
		{Payload: []byte(`{"name":"a.bin"}`), Tag: models.TagFileMetadata},
	}

	ciphertexts, err := local.EncryptParts(ctx, parts)
	require.NoError(t, err)
	require.Len(t, ciphertexts, len(parts))

	cipherParts := make([]envelope.CipherPart, len(parts))
	for i, ct := range ciphertexts {
		cipherParts[i] = envelope.CipherPart{Ciphertext: ct, Tag: parts[i].Tag}
	}

	plaintexts, err := local.DecryptParts(ctx, cipherParts)
	require.NoError(t, err)
	require.Len(t, plaintexts, len(parts))
	for i, part := range parts {
		assert.Equal(t, part.Payload, plaintexts[i], "part %d must come back in order", i)
	}
}

func TestLocal_NonceIsFresh(t *testing.T) {
	local, err := NewLocal([]byte("passphrase"))
	require.NoError(t, err)
	ctx := context.Background()

	parts := []envelope.Part{{Payload: []byte("same payload"), Tag: models.TagNote}}

	first, err := local.EncryptParts(ctx, parts)
	require.NoError(t, err)
	second, err := local.EncryptParts(ctx, parts)
	require.NoError(t, err)

	assert.NotEqual(t, first[0], second[0])
}

func TestLocal_DecryptFailsClosed(t *testing.T) {
	local, err := NewLocal([]byte("passphrase"))
	require.NoError(t, err)
	ctx := context.Background()

	ciphertexts, err := local.EncryptParts(ctx, []envelope.Part{
		{Payload: []byte("secret"), Tag: models.TagNote},
	})
	require.NoError(t, err)
	valid := ciphertexts[0]

	t.Run("mismatched tag", func(t *testing.T) {
		_, err := local.DecryptParts(ctx, []envelope.CipherPart{
			{Ciphertext: valid, Tag: models.TagFile},
		})
		assert.ErrorIs(t, err, ErrAuthenticationFailed)
	})

	t.Run("tampered ciphertext", func(t *testing.T) {
		sealed, decodeErr := base64.StdEncoding.DecodeString(string(valid))
		require.NoError(t, decodeErr)
		sealed[len(sealed)-1] ^= 0x01

		_, err := local.DecryptParts(ctx, []envelope.CipherPart{
			{Ciphertext: models.Ciphertext(base64.StdEncoding.EncodeToString(sealed)), Tag: models.TagNote},
		})
		assert.ErrorIs(t, err, ErrAuthenticationFailed)
	})

	t.Run("wrong passphrase", func(t *testing.T) {
		other, newErr := NewLocal([]byte("a different passphrase"))
		require.NoError(t, newErr)

		_, err := other.DecryptParts(ctx, []envelope.CipherPart{
			{Ciphertext: valid, Tag: models.TagNote},
		})
		assert.ErrorIs(t, err, ErrAuthenticationFailed)
	})

	t.Run("not base64", func(t *testing.T) {
		_, err := local.DecryptParts(ctx, []envelope.CipherPart{
			{Ciphertext: "@@@", Tag: models.TagNote},
		})
		assert.ErrorIs(t, err, ErrCiphertextFormat)
	})

	t.Run("shorter than a nonce", func(t *testing.T) {
		_, err := local.DecryptParts(ctx, []envelope.CipherPart{
			{Ciphertext: models.Ciphertext(base64.StdEncoding.EncodeToString([]byte("abc"))), Tag: models.TagNote},
		})
		assert.ErrorIs(t, err, ErrCiphertextFormat)
	})
}
