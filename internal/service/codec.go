// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Raul Shma

package service

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/raulshma/ever-life-vault-sub006/internal/crypto"
	"github.com/raulshma/ever-life-vault-sub006/models"
)

// itemPayload is the JSON document that actually gets encrypted. The item
// name is duplicated outside the ciphertext so locked listings stay readable,
// but the copy inside the payload is the authenticated one.
type itemPayload struct {
	Type string            `json:"type"`
	Name string            `json:"name"`
	Data map[string]string `json:"data"`
}

type itemCodec struct{}

func NewItemCodec() ItemCodec {
	return &itemCodec{}
}

func (c *itemCodec) EncryptItem(item models.VaultItem, key *crypto.OpaqueKey, userID string) (models.EncryptedVaultItem, error) {
	payload := itemPayload{
		Type: string(item.Type),
		Name: item.Name,
		Data: item.Data,
	}
	plaintext, err := json.Marshal(payload)
	if err != nil {
		return models.EncryptedVaultItem{}, fmt.Errorf("error occured during Marshalling item payload: %w", err)
	}

	ciphertext, iv, authTag, err := crypto.Encrypt(plaintext, key)
	if err != nil {
		return models.EncryptedVaultItem{}, err
	}

	return models.EncryptedVaultItem{
		ID:            item.ID,
		UserID:        userID,
		ItemType:      item.Type,
		Name:          item.Name,
		EncryptedData: base64.StdEncoding.EncodeToString(ciphertext),
		IV:            base64.StdEncoding.EncodeToString(iv),
		AuthTag:       base64.StdEncoding.EncodeToString(authTag),
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}, nil
}

func (c *itemCodec) DecryptItem(encrypted models.EncryptedVaultItem, key *crypto.OpaqueKey) (models.VaultItem, error) {
	fail := func(err error) (models.VaultItem, error) {
		return models.VaultItem{}, &DecryptError{ItemID: encrypted.ID, Name: encrypted.Name, Err: err}
	}

	ciphertext, err := base64.StdEncoding.DecodeString(encrypted.EncryptedData)
	if err != nil {
		return fail(fmt.Errorf("malformed ciphertext encoding: %w", err))
	}
	iv, err := base64.StdEncoding.DecodeString(encrypted.IV)
	if err != nil {
		return fail(fmt.Errorf("malformed iv encoding: %w", err))
	}
	authTag, err := base64.StdEncoding.DecodeString(encrypted.AuthTag)
	if err != nil {
		return fail(fmt.Errorf("malformed auth tag encoding: %w", err))
	}

	plaintext, err := crypto.Decrypt(ciphertext, iv, authTag, key)
	if err != nil {
		return fail(err)
	}

	var payload itemPayload
	if err := json.Unmarshal(plaintext, &payload); err != nil {
		return fail(fmt.Errorf("malformed item payload: %w", err))
	}

	item := models.VaultItem{
		ID:        encrypted.ID,
		Type:      models.ItemType(payload.Type),
		Name:      payload.Name,
		Data:      payload.Data,
		CreatedAt: encrypted.CreatedAt,
		UpdatedAt: encrypted.UpdatedAt,
	}
	// Rows written before the payload carried a name fall back to the
	// clear-text column.
	if item.Name == "" {
		item.Name = encrypted.Name
	}
	return item, nil
}
