// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The privault Authors

// Package provider supplies the crypto backends behind the envelope
// service: a local AES-GCM provider keyed from a prompted passphrase, and
// an adapter for a remote trust service that holds the keys itself.
package provider

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/argon2"

	"github.com/privault/privault/internal/envelope"
	"github.com/privault/privault/models"
)

// Key derivation parameters per the argon2id recommendations in RFC 9106
// (second recommended option, 64 MiB).
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	keyLen       = 32
)

// localKeySalt is a fixed application salt. The salt cannot be random per
// session: ciphertexts written in one session must decrypt in the next, and
// the vault stores no key material at all. The passphrase is the only
// secret.
var localKeySalt = []byte("privault.local.v1")

// Local seals each part with AES-256-GCM under a key derived from the
// passphrase. The part tag goes in as additional authenticated data, so a
// ciphertext decrypted under the wrong tag fails authentication instead of
// yielding bytes for the wrong role.
type Local struct {
	aead cipher.AEAD
}

func NewLocal(passphrase []byte) (*Local, error) {
	if len(passphrase) == 0 {
		return nil, ErrEmptyPassphrase
	}

	key := argon2.IDKey(passphrase, localKeySalt, argonTime, argonMemory, argonThreads, keyLen)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("init gcm: %w", err)
	}

	return &Local{aead: aead}, nil
}

func (l *Local) EncryptParts(_ context.Context, parts []envelope.Part) ([]models.Ciphertext, error) {
	out := make([]models.Ciphertext, len(parts))

	for i, part := range parts {
		nonce := make([]byte, l.aead.NonceSize())
		if _, err := rand.Read(nonce); err != nil {
			return nil, fmt.Errorf("generate nonce: %w", err)
		}

		sealed := l.aead.Seal(nonce, nonce, part.Payload, []byte(part.Tag))
		out[i] = models.Ciphertext(base64.StdEncoding.EncodeToString(sealed))
	}

	return out, nil
}

func (l *Local) DecryptParts(_ context.Context, parts []envelope.CipherPart) ([][]byte, error) {
	out := make([][]byte, len(parts))

	for i, part := range parts {
		sealed, err := base64.StdEncoding.DecodeString(string(part.Ciphertext))
		if err != nil {
			return nil, fmt.Errorf("%w: part %d: %s", ErrCiphertextFormat, i, err)
		}
		if len(sealed) < l.aead.NonceSize() {
			return nil, fmt.Errorf("%w: part %d is shorter than a nonce", ErrCiphertextFormat, i)
		}

		nonce, payload := sealed[:l.aead.NonceSize()], sealed[l.aead.NonceSize():]

		plaintext, err := l.aead.Open(nil, nonce, payload, []byte(part.Tag))
		if err != nil {
			return nil, fmt.Errorf("%w: part %d (tag %q)", ErrAuthenticationFailed, i, part.Tag)
		}
		out[i] = plaintext
	}

	return out, nil
}
