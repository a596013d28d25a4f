package http

import (
	"errors"
	"net/http"

	"github.com/privault/privault/internal/codec"
	"github.com/privault/privault/internal/envelope"
	"github.com/privault/privault/internal/store"
	"github.com/privault/privault/internal/vault"
)

var errorStatusMap = map[error]int{
	vault.ErrEmptyTitle:     http.StatusBadRequest,
	vault.ErrEmptyContent:   http.StatusBadRequest,
	vault.ErrNoFileSelected: http.StatusBadRequest,
	vault.ErrEmptyFile:      http.StatusBadRequest,
	vault.ErrNotANote:       http.StatusBadRequest,
	vault.ErrNotAFile:       http.StatusBadRequest,
	vault.ErrNotRevealed:    http.StatusConflict,
	vault.ErrNotPreviewable: http.StatusUnsupportedMediaType,
	vault.ErrCorruptItem:    http.StatusInternalServerError,

	envelope.ErrUnauthenticated:   http.StatusUnauthorized,
	envelope.ErrEncrypt:           http.StatusBadGateway,
	envelope.ErrDecrypt:           http.StatusBadGateway,
	envelope.ErrPartCountMismatch: http.StatusBadGateway,

	store.ErrItemNotFound:   http.StatusNotFound,
	store.ErrDuplicateID:    http.StatusConflict,
	store.ErrNotInitialized: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrDecodingRecord:     http.StatusInternalServerError,

	// Covers vault.ErrMetadataDecode and every codec sentinel.
	codec.ErrDecode: http.StatusUnprocessableEntity,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
