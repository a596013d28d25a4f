package envelope_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/privault/privault/internal/envelope"
	"github.com/privault/privault/internal/logger"
	"github.com/privault/privault/internal/mock"
	"github.com/privault/privault/models"
)

func newService(t *testing.T) (envelope.Service, *mock.MockProvider, *mock.MockSessionGate) {
	t.Helper()

	ctrl := gomock.NewController(t)
	provider := mock.NewMockProvider(ctrl)
	gate := mock.NewMockSessionGate(ctrl)

	return envelope.NewService(provider, gate, logger.Nop()), provider, gate
}

func TestService_Encrypt(t *testing.T) {
	ctx := context.Background()
	parts := []envelope.Part{
		{Payload: []byte("file-bytes"), Tag: models.TagFile},
		{Payload: []byte(`{"name":"a.bin"}`), Tag: models.TagFileMetadata},
	}

	t.Run("passes parts through in order", func(t *testing.T) {
		svc, provider, gate := newService(t)

		gate.EXPECT().Check(ctx).Return(nil)
		provider.EXPECT().EncryptParts(ctx, parts).
			Return([]models.Ciphertext{"ct-0", "ct-1"}, nil)

		got, err := svc.Encrypt(ctx, parts)
		require.NoError(t, err)
		assert.Equal(t, []models.Ciphertext{"ct-0", "ct-1"}, got)
	})

	t.Run("closed gate stops the call before the provider", func(t *testing.T) {
		svc, _, gate := newService(t)

		gate.EXPECT().Check(ctx).Return(errors.New("token expired"))

		_, err := svc.Encrypt(ctx, parts)
		assert.ErrorIs(t, err, envelope.ErrUnauthenticated)
	})

	t.Run("provider failure", func(t *testing.T) {
		svc, provider, gate := newService(t)

		gate.EXPECT().Check(ctx).Return(nil)
		provider.EXPECT().EncryptParts(ctx, parts).
			Return(nil, errors.New("trust service unreachable"))

		_, err := svc.Encrypt(ctx, parts)
		assert.ErrorIs(t, err, envelope.ErrEncrypt)
	})

	t.Run("wrong result count", func(t *testing.T) {
		svc, provider, gate := newService(t)

		gate.EXPECT().Check(ctx).Return(nil)
		provider.EXPECT().EncryptParts(ctx, parts).
			Return([]models.Ciphertext{"ct-0"}, nil)

		_, err := svc.Encrypt(ctx, parts)
		assert.ErrorIs(t, err, envelope.ErrPartCountMismatch)
	})
}

func TestService_Decrypt(t *testing.T) {
	ctx := context.Background()
	parts := []envelope.CipherPart{
		{Ciphertext: "ct-0", Tag: models.TagNote},
	}

	t.Run("recovers plaintext", func(t *testing.T) {
		svc, provider, gate := newService(t)

		gate.EXPECT().Check(ctx).Return(nil)
		provider.EXPECT().DecryptParts(ctx, parts).
			Return([][]byte{[]byte("milk, eggs")}, nil)

		got, err := svc.Decrypt(ctx, parts)
		require.NoError(t, err)
		assert.Equal(t, [][]byte{[]byte("milk, eggs")}, got)
	})

	t.Run("closed gate stops the call before the provider", func(t *testing.T) {
		svc, _, gate := newService(t)

		gate.EXPECT().Check(ctx).Return(errors.New("no session"))

		_, err := svc.Decrypt(ctx, parts)
		assert.ErrorIs(t, err, envelope.ErrUnauthenticated)
	})

	t.Run("provider failure covers tag mismatch", func(t *testing.T) {
		svc, provider, gate := newService(t)

		gate.EXPECT().Check(ctx).Return(nil)
		provider.EXPECT().DecryptParts(ctx, parts).
			Return(nil, errors.New("message authentication failed"))

		_, err := svc.Decrypt(ctx, parts)
		assert.ErrorIs(t, err, envelope.ErrDecrypt)
	})

	t.Run("wrong result count", func(t *testing.T) {
		svc, provider, gate := newService(t)

		gate.EXPECT().Check(ctx).Return(nil)
		provider.EXPECT().DecryptParts(ctx, parts).
			Return([][]byte{[]byte("a"), []byte("b")}, nil)

		_, err := svc.Decrypt(ctx, parts)
		assert.ErrorIs(t, err, envelope.ErrPartCountMismatch)
	})
}
