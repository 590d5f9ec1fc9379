package service

import "errors"

var (
	// ErrEncryptionFailed is returned when a sensitive field could not be
	// encrypted. The submission is rejected whole; nothing is ever stored
	// or mailed in plaintext as a fallback.
	ErrEncryptionFailed = errors.New("encryption error, please try again later")
)
