package envelope

//go:generate mockgen -source=interfaces.go -destination=../mock/envelope_mock.go -package=mock

import (
	"context"

	"github.com/privault/privault/models"
)

// Provider performs the actual cryptography. Implementations must preserve
// order and count: result i corresponds to input i, and the number of
// results equals the number of inputs. Decrypting a part under a tag other
// than the one it was encrypted with must fail.
type Provider interface {
	// EncryptParts encrypts each part independently under its tag.
	EncryptParts(ctx context.Context, parts []Part) ([]models.Ciphertext, error)

	// DecryptParts recovers the plaintext of each part. A tampered
	// ciphertext or a mismatched tag yields an error, never garbage bytes.
	DecryptParts(ctx context.Context, parts []CipherPart) ([][]byte, error)
}

// SessionGate answers whether cryptographic operations are currently
// allowed. The engine never issues sessions itself; the gate consumes
// whatever session material the provider's trust service handed out.
type SessionGate interface {
	// Check returns nil when the session is live, or a reason it is not.
	Check(ctx context.Context) error
}

// Service is the envelope surface the item lifecycle talks to. It fronts a
// Provider with the session gate and output validation.
type Service interface {
	Encrypt(ctx context.Context, parts []Part) ([]models.Ciphertext, error)
	Decrypt(ctx context.Context, parts []CipherPart) ([][]byte, error)
}
