// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Raul Shma

package models

import "time"

// EncryptedVaultItem is the persistence model for a vault entry.
// All confidential payload lives in EncryptedData; the storage layer
// treats it as an opaque string and can never recover the plaintext
// without the session key held by the owning client.
type EncryptedVaultItem struct {
	// ID is the unique identifier of the record.
	ID string `json:"id"`

	// UserID is the owner of this entry. Every query is scoped by it.
	UserID string `json:"user_id"`

	// ItemType mirrors the type of the plaintext item so type
	// filters can run without decryption.
	ItemType ItemType `json:"item_type"`

	// Name is the clear-text display name of the item. It is the
	// only descriptive field stored outside the ciphertext.
	Name string `json:"name"`

	// EncryptedData is the base64-encoded AES-256-GCM ciphertext of
	// the canonical JSON payload, without the authentication tag.
	EncryptedData string `json:"encrypted_data"`

	// IV is the base64-encoded 96-bit nonce used for this record.
	// A fresh value is generated on every encryption.
	IV string `json:"iv"`

	// AuthTag is the base64-encoded 128-bit GCM authentication tag.
	// Stored separately from the ciphertext; both are required and
	// verified on decryption.
	AuthTag string `json:"auth_tag"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the EncryptedVaultItem model.
func (i EncryptedVaultItem) TableName() string {
	return "encrypted_vault_items"
}
