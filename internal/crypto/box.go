// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"regexp"
)

const (
	keySize   = 32 // AES-256
	nonceSize = 12 // standard GCM nonce, 96 bits
	tagSize   = 16 // GCM authentication tag, 128 bits
)

// base64KeyPattern matches the 44-character base64 form of a 32-byte key.
var base64KeyPattern = regexp.MustCompile(`^[A-Za-z0-9+/]+={0,2}$`)

// box is the private implementation of [Box].
type box struct {
	aead cipher.AEAD
}

// NewBox constructs a [Box] from the configured key material.
//
// The key is accepted in either of two forms:
//   - a raw 32-byte string;
//   - a 44-character standard-base64 encoding of 32 bytes.
//
// Any other length or encoding fails with [ErrInvalidEncryptionKey]. The
// check happens here, at construction time, so a misconfigured key stops
// the process at startup instead of silently no-opping per call.
func NewBox(key string) (Box, error) {
	keyBytes, err := normalizeKey(key)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &box{aead: aead}, nil
}

// Encrypt implements [Box]. It reads a fresh 12-byte nonce from the OS
// CSPRNG for every call; the nonce is never derived from the plaintext or
// any other data. The output layout is nonce ‖ tag ‖ ciphertext, base64
// (standard encoding).
func (b *box) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// Seal appends the tag after the ciphertext; the stored layout keeps
	// the tag in the middle (nonce ‖ tag ‖ ciphertext), so split and
	// reassemble.
	sealed := b.aead.Seal(nil, nonce, []byte(plaintext), nil)
	ciphertext, tag := sealed[:len(sealed)-tagSize], sealed[len(sealed)-tagSize:]

	blob := make([]byte, 0, nonceSize+len(sealed))
	blob = append(blob, nonce...)
	blob = append(blob, tag...)
	blob = append(blob, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [Box]. It reverses the Encrypt layout and verifies the
// authentication tag. Every failure mode — bad base64, a blob shorter than
// nonce+tag, or a tag mismatch — is normalized to [ErrDecryptionFailed] so
// callers can fail closed without inspecting low-level causes.
func (b *box) Decrypt(encoded string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %w", ErrDecryptionFailed, err)
	}

	if len(blob) < nonceSize+tagSize {
		return "", fmt.Errorf("%w: blob too short", ErrDecryptionFailed)
	}

	nonce := blob[:nonceSize]
	tag := blob[nonceSize : nonceSize+tagSize]
	ciphertext := blob[nonceSize+tagSize:]

	// rebuild the ciphertext ‖ tag form expected by GCM Open
	sealed := make([]byte, 0, len(ciphertext)+tagSize)
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := b.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return string(plaintext), nil
}

// normalizeKey resolves the two accepted key forms to raw 32 bytes.
func normalizeKey(key string) ([]byte, error) {
	if key == "" {
		return nil, ErrInvalidEncryptionKey
	}

	if len(key) == 44 && base64KeyPattern.MatchString(key) {
		decoded, err := base64.StdEncoding.DecodeString(key)
		if err == nil && len(decoded) == keySize {
			return decoded, nil
		}
	}

	if len(key) == keySize {
		return []byte(key), nil
	}

	return nil, ErrInvalidEncryptionKey
}
