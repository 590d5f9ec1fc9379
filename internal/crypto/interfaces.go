// SPDX-License-Identifier: Apache-2.0

package crypto

// Box provides symmetric authenticated encryption for individual field
// values under a single process-wide key.
//
// Scheme:
//
//	blob = nonce(12) ‖ tag(16) ‖ ciphertext
//
// serialized as a base64 string so the store can treat it as one opaque
// value. Decryption fails closed: a tampered or malformed blob yields
// [ErrDecryptionFailed], never corrupted plaintext.
type Box interface {
	// Encrypt encrypts plaintext with a fresh random nonce and returns the
	// serialized blob. Each call produces distinct output even for equal
	// plaintexts.
	Encrypt(plaintext string) (string, error)

	// Decrypt decodes and authenticates a blob produced by Encrypt and
	// returns the original plaintext. Any decoding or authentication
	// failure is reported as [ErrDecryptionFailed].
	Decrypt(encoded string) (string, error)
}
