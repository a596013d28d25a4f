// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The privault Authors

package envelope

import (
	"context"
	"fmt"

	"github.com/privault/privault/internal/logger"
	"github.com/privault/privault/models"
)

type service struct {
	provider Provider
	gate     SessionGate
	logger   *logger.Logger
}

// NewService wraps a provider with the session gate. Every operation checks
// the gate first; an expired or absent session fails before any plaintext
// or ciphertext reaches the provider.
func NewService(provider Provider, gate SessionGate, logger *logger.Logger) Service {
	return &service{
		provider: provider,
		gate:     gate,
		logger:   logger,
	}
}

func (s *service) Encrypt(ctx context.Context, parts []Part) ([]models.Ciphertext, error) {
	if err := s.gate.Check(ctx); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnauthenticated, err)
	}

	ciphertexts, err := s.provider.EncryptParts(ctx, parts)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "service.Encrypt").
			Int("parts", len(parts)).
			Msg("provider failed to encrypt parts")
		return nil, fmt.Errorf("%w: %s", ErrEncrypt, err)
	}

	if len(ciphertexts) != len(parts) {
		return nil, fmt.Errorf("%w: sent %d, got %d", ErrPartCountMismatch, len(parts), len(ciphertexts))
	}

	return ciphertexts, nil
}

func (s *service) Decrypt(ctx context.Context, parts []CipherPart) ([][]byte, error) {
	if err := s.gate.Check(ctx); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnauthenticated, err)
	}

	plaintexts, err := s.provider.DecryptParts(ctx, parts)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "service.Decrypt").
			Int("parts", len(parts)).
			Msg("provider failed to decrypt parts")
		return nil, fmt.Errorf("%w: %s", ErrDecrypt, err)
	}

	if len(plaintexts) != len(parts) {
		return nil, fmt.Errorf("%w: sent %d, got %d", ErrPartCountMismatch, len(parts), len(plaintexts))
	}

	return plaintexts, nil
}
