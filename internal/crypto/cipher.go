// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Raul Shma

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

const (
	// NonceSize is the AES-GCM nonce length in bytes (96 bits).
	NonceSize = 12

	// TagSize is the AES-GCM authentication tag length in bytes (128 bits).
	TagSize = 16
)

// Encrypt encrypts plaintext with the given key using AES-256-GCM and
// a fresh random nonce. The GCM output is split so the three parts can
// be stored in separate columns: ciphertext (without tag), iv (the
// nonce), and tag. All three are required to decrypt; losing or
// corrupting any one of them makes the record unreadable.
func Encrypt(plaintext []byte, key *OpaqueKey) (ciphertext, iv, tag []byte, err error) {
	buf, err := key.open()
	if err != nil {
		return nil, nil, nil, err
	}
	defer buf.Destroy()

	block, err := aes.NewCipher(buf.Bytes())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("create gcm: %w", err)
	}

	iv = make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, nil, nil, fmt.Errorf("generate nonce: %w", err)
	}

	// Seal appends the tag to the ciphertext; split it back off so the
	// two parts can live in separate storage fields.
	sealed := gcm.Seal(nil, iv, plaintext, nil)
	cut := len(sealed) - TagSize
	return sealed[:cut], iv, sealed[cut:], nil
}

// Decrypt reverses [Encrypt]: it reassembles ciphertext and tag,
// verifies the tag, and returns the plaintext. Every failure mode
// (wrong key, corrupted ciphertext, corrupted iv or tag, truncated
// input) surfaces as [ErrAuthenticationFailed]; callers cannot and
// must not distinguish between them.
func Decrypt(ciphertext, iv, tag []byte, key *OpaqueKey) ([]byte, error) {
	buf, err := key.open()
	if err != nil {
		return nil, err
	}
	defer buf.Destroy()

	block, err := aes.NewCipher(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	if len(iv) != gcm.NonceSize() || len(tag) != TagSize {
		return nil, fmt.Errorf("%w: malformed iv or tag", ErrAuthenticationFailed)
	}

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := gcm.Open(nil, iv, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
	}
	return plaintext, nil
}
