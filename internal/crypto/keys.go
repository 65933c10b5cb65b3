// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Raul Shma

package crypto

import "github.com/awnumar/memguard"

// OpaqueKey is the non-extractable form of a derived vault key. The raw
// bytes live inside a memguard enclave: encrypted at rest in process
// memory, mlock-protected while open, and only ever exposed to the AES
// routines inside this package. Code outside the package can hold and
// pass an OpaqueKey but has no way to read its bytes, mirroring a
// hardware-token handle.
//
// The zero value is a destroyed key; use the derivation functions on
// [KeyService] or [ExportableKeyMaterial.Seal] to obtain a live one.
type OpaqueKey struct {
	enclave *memguard.Enclave
}

// newOpaqueKey seals raw into an enclave. The source slice is wiped by
// memguard as part of sealing, so callers lose access to the plaintext
// key the moment this returns.
func newOpaqueKey(raw []byte) *OpaqueKey {
	if len(raw) == 0 {
		return &OpaqueKey{}
	}
	return &OpaqueKey{enclave: memguard.NewEnclave(raw)}
}

// open decrypts the enclave into a locked buffer for immediate use.
// The caller must Destroy the returned buffer as soon as the key bytes
// have served their purpose. Unexported on purpose: only the cipher
// routines in this package may touch raw key bytes.
func (k *OpaqueKey) open() (*memguard.LockedBuffer, error) {
	if k == nil || k.enclave == nil {
		return nil, ErrKeyDestroyed
	}
	buf, err := k.enclave.Open()
	if err != nil {
		return nil, ErrKeyDestroyed
	}
	return buf, nil
}

// Destroy drops the enclave reference. The key becomes permanently
// unusable; any later cipher operation with it fails with
// [ErrKeyDestroyed]. Destroy is idempotent.
func (k *OpaqueKey) Destroy() {
	if k == nil {
		return
	}
	k.enclave = nil
}

// Destroyed reports whether the key has been destroyed (or was never
// populated).
func (k *OpaqueKey) Destroyed() bool {
	return k == nil || k.enclave == nil
}

// ExportableKeyMaterial is the extractable form of a derived vault key.
// It exists only transiently: long enough to wrap the key for session
// persistence (or to receive an unwrapped key during restore) before
// being sealed into an [OpaqueKey] or wiped.
type ExportableKeyMaterial struct {
	raw []byte
}

// newExportableKeyMaterial wraps raw without copying.
func newExportableKeyMaterial(raw []byte) *ExportableKeyMaterial {
	return &ExportableKeyMaterial{raw: raw}
}

// Bytes returns the raw key bytes. Callers must not retain the slice
// beyond the immediate operation; it is invalidated by Seal and Wipe.
func (m *ExportableKeyMaterial) Bytes() []byte {
	if m == nil {
		return nil
	}
	return m.raw
}

// Seal converts the material into a non-extractable [OpaqueKey]. The
// raw bytes are wiped in the process, so the material is unusable
// afterwards. Returns [ErrKeyDestroyed] if the material was already
// wiped.
func (m *ExportableKeyMaterial) Seal() (*OpaqueKey, error) {
	if m == nil || len(m.raw) == 0 {
		return nil, ErrKeyDestroyed
	}
	key := newOpaqueKey(m.raw) // memguard wipes m.raw while sealing
	m.raw = nil
	return key, nil
}

// Wipe zeroes the raw bytes and marks the material unusable. Safe to
// call multiple times and after Seal.
func (m *ExportableKeyMaterial) Wipe() {
	if m == nil || m.raw == nil {
		return
	}
	memguard.WipeBytes(m.raw)
	m.raw = nil
}
