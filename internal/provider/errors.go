package provider

import "errors"

var (
	// ErrEmptyPassphrase is returned when the local provider is created
	// without a passphrase to derive its key from.
	ErrEmptyPassphrase = errors.New("passphrase must not be empty")

	// ErrCiphertextFormat is returned when a stored ciphertext cannot be
	// parsed into nonce and sealed payload.
	ErrCiphertextFormat = errors.New("malformed ciphertext envelope")

	// ErrAuthenticationFailed is returned when opening a sealed payload
	// fails: the ciphertext was tampered with, the key is wrong, or the
	// part tag does not match the one it was sealed under.
	ErrAuthenticationFailed = errors.New("ciphertext authentication failed")

	// ErrTrustService is returned when the remote trust service rejects a
	// request or cannot be reached.
	ErrTrustService = errors.New("trust service request failed")

	// ErrNoSessionToken is returned by the token gate when no session
	// token has been supplied.
	ErrNoSessionToken = errors.New("no session token")

	// ErrInvalidSessionToken is returned when the supplied session token
	// cannot be parsed.
	ErrInvalidSessionToken = errors.New("invalid session token")

	// ErrSessionExpired is returned when the session token's expiry has
	// passed.
	ErrSessionExpired = errors.New("session token expired")
)
