package service

import (
	"context"
	"fmt"

	"github.com/raulshma/ever-life-vault-sub006/internal/validators"
	"github.com/raulshma/ever-life-vault-sub006/models"
)

// ItemValidationStore decorates an [ItemStore] with input validation.
// Writes are checked before they reach the inner store; reads pass
// through untouched.
type ItemValidationStore struct {
	inner     ItemStore
	validator validators.Validator
}

// NewItemValidationStore constructs the validation decorator. The inner
// store is attached later via Wrap.
func NewItemValidationStore() ItemStoreWrapper {
	return &ItemValidationStore{
		validator: validators.NewItemValidator(),
	}
}

// Wrap implements [ItemStoreWrapper].
func (v *ItemValidationStore) Wrap(inner ItemStore) ItemStore {
	v.inner = inner
	return v
}

func (v *ItemValidationStore) FetchItems(ctx context.Context) ([]models.VaultItem, []models.ItemFailure, error) {
	return v.inner.FetchItems(ctx)
}

func (v *ItemValidationStore) AddItem(ctx context.Context, itemType models.ItemType, name string, data map[string]string) (models.VaultItem, error) {
	item := models.VaultItem{Type: itemType, Name: name, Data: data}
	if err := v.validator.Validate(ctx, item); err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrInvalidItem, err)
	}
	return v.inner.AddItem(ctx, itemType, name, data)
}

func (v *ItemValidationStore) UpdateItem(ctx context.Context, itemID string, update models.VaultItemUpdate) (models.VaultItem, error) {
	if itemID == "" {
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrInvalidItem, validators.ErrEmptyItemID)
	}
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrInvalidItem, err)
	}
	return v.inner.UpdateItem(ctx, itemID, update)
}

func (v *ItemValidationStore) DeleteItem(ctx context.Context, itemID string) error {
	if itemID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidItem, validators.ErrEmptyItemID)
	}
	return v.inner.DeleteItem(ctx, itemID)
}

func (v *ItemValidationStore) Items() []models.VaultItem {
	return v.inner.Items()
}

func (v *ItemValidationStore) ItemsByType(itemType models.ItemType) []models.VaultItem {
	return v.inner.ItemsByType(itemType)
}

func (v *ItemValidationStore) SearchItems(query string) []models.VaultItem {
	return v.inner.SearchItems(query)
}

func (v *ItemValidationStore) Clear() {
	v.inner.Clear()
}
