package envelope

import "errors"

var (
	// ErrUnauthenticated is returned when an envelope operation is
	// attempted without a live session. The provider is never invoked in
	// this case.
	ErrUnauthenticated = errors.New("vault session is not authenticated")

	// ErrEncrypt is returned when the provider fails to encrypt.
	ErrEncrypt = errors.New("failed to encrypt payload parts")

	// ErrDecrypt is returned when the provider fails to decrypt, including
	// tampered ciphertext and tag mismatch.
	ErrDecrypt = errors.New("failed to decrypt payload parts")

	// ErrPartCountMismatch is returned when the provider breaks the
	// one-result-per-part contract.
	ErrPartCountMismatch = errors.New("provider returned wrong number of parts")
)
