// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Raul Shma

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// MinIterations is the lowest PBKDF2 iteration count the service
	// accepts. Anything below it is silently raised to this floor.
	MinIterations = 100_000

	// DefaultIterations is the PBKDF2-HMAC-SHA256 work factor used in
	// production. Derivation takes a human-perceptible fraction of a
	// second on commodity hardware, which is the point.
	DefaultIterations = 310_000

	// KeySize is the derived key length in bytes (AES-256).
	KeySize = 32

	// SaltSize is the KDF salt length in bytes.
	SaltSize = 16

	// SecretSize is the random server secret length in bytes.
	SecretSize = 32
)

// keyService is the private implementation of [KeyService].
type keyService struct {
	// PBKDF2 work factor. Stored in the struct so it can be adjusted
	// per deployment target (e.g. mobile vs. desktop).
	iterations int
}

// NewKeyService constructs a [KeyService] with the default
// PBKDF2-HMAC-SHA256 parameters:
//   - iterations: 310,000
//   - key length: 32 bytes (256 bits)
//   - salt length: 16 bytes (128 bits)
func NewKeyService() KeyService {
	return &keyService{iterations: DefaultIterations}
}

// NewKeyServiceWithIterations constructs a [KeyService] with a custom
// PBKDF2 work factor. Values below [MinIterations] are raised to the
// floor so a misconfigured deployment can never weaken derivation.
func NewKeyServiceWithIterations(iterations int) KeyService {
	if iterations < MinIterations {
		iterations = MinIterations
	}
	return &keyService{iterations: iterations}
}

// GenerateSalt implements [KeyService]. It reads [SaltSize] random
// bytes from the OS CSPRNG and returns them as the per-vault KDF salt.
// Returns an error if the random read fails.
func (k *keyService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// GenerateServerSecret implements [KeyService]. It reads [SecretSize]
// random bytes from the OS CSPRNG and returns them as the per-session
// server secret. Returns an error if the random read fails.
func (k *keyService) GenerateServerSecret() ([]byte, error) {
	secret := make([]byte, SecretSize)
	if _, err := io.ReadFull(rand.Reader, secret); err != nil {
		return nil, err
	}
	return secret, nil
}

// DeriveOpaqueKey implements [KeyService]. It derives a 256-bit vault
// key from password and salt via PBKDF2-HMAC-SHA256 and seals it into
// a non-extractable [OpaqueKey] before returning. The plaintext key
// never leaves this function.
func (k *keyService) DeriveOpaqueKey(password string, salt []byte) (*OpaqueKey, error) {
	if len(salt) == 0 {
		return nil, ErrInvalidSalt
	}
	raw := pbkdf2.Key([]byte(password), salt, k.iterations, KeySize, sha256.New)
	return newOpaqueKey(raw), nil
}

// DeriveExportableKey implements [KeyService]. It derives the same key
// as [keyService.DeriveOpaqueKey] but hands it back in extractable
// form, for the one call site that must wrap the key for session
// persistence. The caller is responsible for sealing or wiping the
// material immediately after use.
func (k *keyService) DeriveExportableKey(password string, salt []byte) (*ExportableKeyMaterial, error) {
	if len(salt) == 0 {
		return nil, ErrInvalidSalt
	}
	raw := pbkdf2.Key([]byte(password), salt, k.iterations, KeySize, sha256.New)
	return newExportableKeyMaterial(raw), nil
}
