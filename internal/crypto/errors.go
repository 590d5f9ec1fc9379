package crypto

import "errors"

var (
	// ErrInvalidEncryptionKey indicates the configured key is absent or is
	// not a 32-byte value (raw or base64-encoded). Returned by NewBox so
	// that a bad key fails startup rather than the first request.
	ErrInvalidEncryptionKey = errors.New("encryption key must be a 32-byte value, raw or base64-encoded")

	// ErrDecryptionFailed indicates a blob could not be decoded or its
	// authentication tag did not verify.
	ErrDecryptionFailed = errors.New("decryption failed")
)
