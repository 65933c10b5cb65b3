// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Raul Shma

package adapter

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/raulshma/ever-life-vault-sub006/internal/store"
	"github.com/raulshma/ever-life-vault-sub006/models"
)

// restItemRepository implements [store.VaultItemRepository] over the
// remote row store.
type restItemRepository struct {
	client *resty.Client
}

func (r *restItemRepository) GetItems(ctx context.Context, userID string) ([]models.EncryptedVaultItem, error) {
	var rows []models.EncryptedVaultItem

	resp, err := r.client.R().
		SetContext(ctx).
		SetQueryParam("user_id", userID).
		SetResult(&rows).
		Get("/api/vault/items")
	if err != nil {
		return nil, fmt.Errorf("get items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *restItemRepository) GetFirstItem(ctx context.Context, userID string) (models.EncryptedVaultItem, error) {
	var row models.EncryptedVaultItem

	resp, err := r.client.R().
		SetContext(ctx).
		SetQueryParam("user_id", userID).
		SetResult(&row).
		Get("/api/vault/items/first")
	if err != nil {
		return models.EncryptedVaultItem{}, fmt.Errorf("get first item request: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return models.EncryptedVaultItem{}, store.ErrItemNotFound
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EncryptedVaultItem{}, err
	}

	return row, nil
}

func (r *restItemRepository) SaveItem(ctx context.Context, item *models.EncryptedVaultItem) error {
	var saved models.EncryptedVaultItem

	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(item).
		SetResult(&saved).
		Post("/api/vault/items")
	if err != nil {
		return fmt.Errorf("save item request: %w", err)
	}
	if resp.StatusCode() == http.StatusConflict {
		return store.ErrDuplicateRecord
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	// The row store assigned the id and the timestamps; mirror them.
	item.ID = saved.ID
	item.CreatedAt = saved.CreatedAt
	item.UpdatedAt = saved.UpdatedAt
	return nil
}

func (r *restItemRepository) UpdateItem(ctx context.Context, item *models.EncryptedVaultItem) error {
	var saved models.EncryptedVaultItem

	resp, err := r.client.R().
		SetContext(ctx).
		SetPathParam("itemID", item.ID).
		SetBody(item).
		SetResult(&saved).
		Put("/api/vault/items/{itemID}")
	if err != nil {
		return fmt.Errorf("update item request: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return store.ErrItemNotFound
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	item.CreatedAt = saved.CreatedAt
	item.UpdatedAt = saved.UpdatedAt
	return nil
}

func (r *restItemRepository) DeleteItem(ctx context.Context, userID, itemID string) error {
	resp, err := r.client.R().
		SetContext(ctx).
		SetPathParam("itemID", itemID).
		SetQueryParam("user_id", userID).
		Delete("/api/vault/items/{itemID}")
	if err != nil {
		return fmt.Errorf("delete item request: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return store.ErrItemNotFound
	}

	return mapHTTPError(resp)
}
