// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Raul Shma

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/hkdf"
)

const (
	// wrapSaltSize is the HKDF salt length prepended to every blob.
	wrapSaltSize = 16

	// wrapInfo domain-separates the wrapping key from any other use of
	// the server secret.
	wrapInfo = "ever-life-vault/session-key-wrap/v1"
)

// sessionKeyWrapper is the private implementation of [SessionKeyWrapper].
//
// Blob layout (before base64): hkdfSalt (16) ‖ nonce (12) ‖ ciphertext+tag.
// The wrapping key is HKDF-SHA256(serverSecret, hkdfSalt, wrapInfo) and is
// wiped immediately after each operation. Neither half of the split secret
// is useful alone: the blob without the server secret is random noise, and
// the secret without the blob wraps nothing.
type sessionKeyWrapper struct{}

// NewSessionKeyWrapper constructs a [SessionKeyWrapper].
func NewSessionKeyWrapper() SessionKeyWrapper {
	return &sessionKeyWrapper{}
}

// Wrap implements [SessionKeyWrapper]. It encrypts the exportable key
// material under a wrapping key derived from serverSecret and returns
// the blob as a base64 string fit for client-local storage. The input
// material is left intact; sealing or wiping it stays the caller's job.
func (w *sessionKeyWrapper) Wrap(material *ExportableKeyMaterial, serverSecret []byte) (string, error) {
	raw := material.Bytes()
	if len(raw) == 0 {
		return "", ErrKeyDestroyed
	}
	if len(serverSecret) == 0 {
		return "", fmt.Errorf("%w: empty server secret", ErrUnwrapFailed)
	}

	hkdfSalt := make([]byte, wrapSaltSize)
	if _, err := io.ReadFull(rand.Reader, hkdfSalt); err != nil {
		return "", fmt.Errorf("generate hkdf salt: %w", err)
	}

	gcm, wrapKey, err := wrappingCipher(serverSecret, hkdfSalt)
	if err != nil {
		return "", err
	}
	defer memguard.WipeBytes(wrapKey)

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := make([]byte, 0, wrapSaltSize+len(nonce)+len(raw)+TagSize)
	blob = append(blob, hkdfSalt...)
	blob = append(blob, nonce...)
	blob = gcm.Seal(blob, nonce, raw, nil)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Unwrap implements [SessionKeyWrapper]. It decodes and decrypts a blob
// produced by [sessionKeyWrapper.Wrap] and returns the recovered key in
// extractable form. Returns [ErrInvalidWrappedBlob] for malformed input
// and [ErrUnwrapFailed] when tag verification fails (wrong or rotated
// server secret, tampered blob).
func (w *sessionKeyWrapper) Unwrap(blobB64 string, serverSecret []byte) (*ExportableKeyMaterial, error) {
	blob, err := base64.StdEncoding.DecodeString(blobB64)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWrappedBlob, err)
	}
	if len(blob) < wrapSaltSize+NonceSize+TagSize {
		return nil, fmt.Errorf("%w: blob too short", ErrInvalidWrappedBlob)
	}

	hkdfSalt := blob[:wrapSaltSize]
	nonce := blob[wrapSaltSize : wrapSaltSize+NonceSize]
	sealed := blob[wrapSaltSize+NonceSize:]

	gcm, wrapKey, err := wrappingCipher(serverSecret, hkdfSalt)
	if err != nil {
		return nil, err
	}
	defer memguard.WipeBytes(wrapKey)

	raw, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnwrapFailed, err)
	}

	return newExportableKeyMaterial(raw), nil
}

// wrappingCipher derives the AES-256-GCM wrapping cipher for a given
// secret and salt. The returned wrapKey slice is handed back so the
// caller can wipe it once the cipher has done its work.
func wrappingCipher(serverSecret, hkdfSalt []byte) (cipher.AEAD, []byte, error) {
	wrapKey := make([]byte, KeySize)
	kdf := hkdf.New(sha256.New, serverSecret, hkdfSalt, []byte(wrapInfo))
	if _, err := io.ReadFull(kdf, wrapKey); err != nil {
		return nil, nil, fmt.Errorf("derive wrapping key: %w", err)
	}

	block, err := aes.NewCipher(wrapKey)
	if err != nil {
		memguard.WipeBytes(wrapKey)
		return nil, nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		memguard.WipeBytes(wrapKey)
		return nil, nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, wrapKey, nil
}
