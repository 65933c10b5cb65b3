package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raulshma/ever-life-vault-sub006/internal/validators"
	"github.com/raulshma/ever-life-vault-sub006/models"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

type mockInnerItemStore struct {
	fetchFn  func(ctx context.Context) ([]models.VaultItem, []models.ItemFailure, error)
	addFn    func(ctx context.Context, itemType models.ItemType, name string, data map[string]string) (models.VaultItem, error)
	updateFn func(ctx context.Context, itemID string, update models.VaultItemUpdate) (models.VaultItem, error)
	deleteFn func(ctx context.Context, itemID string) error
	itemsFn  func() []models.VaultItem
	byTypeFn func(itemType models.ItemType) []models.VaultItem
	searchFn func(query string) []models.VaultItem
	clearFn  func()
}

func (m *mockInnerItemStore) FetchItems(ctx context.Context) ([]models.VaultItem, []models.ItemFailure, error) {
	if m.fetchFn != nil {
		return m.fetchFn(ctx)
	}
	return nil, nil, nil
}
func (m *mockInnerItemStore) AddItem(ctx context.Context, itemType models.ItemType, name string, data map[string]string) (models.VaultItem, error) {
	if m.addFn != nil {
		return m.addFn(ctx, itemType, name, data)
	}
	return models.VaultItem{}, nil
}
func (m *mockInnerItemStore) UpdateItem(ctx context.Context, itemID string, update models.VaultItemUpdate) (models.VaultItem, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, itemID, update)
	}
	return models.VaultItem{}, nil
}
func (m *mockInnerItemStore) DeleteItem(ctx context.Context, itemID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, itemID)
	}
	return nil
}
func (m *mockInnerItemStore) Items() []models.VaultItem {
	if m.itemsFn != nil {
		return m.itemsFn()
	}
	return nil
}
func (m *mockInnerItemStore) ItemsByType(itemType models.ItemType) []models.VaultItem {
	if m.byTypeFn != nil {
		return m.byTypeFn(itemType)
	}
	return nil
}
func (m *mockInnerItemStore) SearchItems(query string) []models.VaultItem {
	if m.searchFn != nil {
		return m.searchFn(query)
	}
	return nil
}
func (m *mockInnerItemStore) Clear() {
	if m.clearFn != nil {
		m.clearFn()
	}
}

// ─────────────────────────────────────────────
// AddItem
// ─────────────────────────────────────────────

func TestItemValidationStore_AddItem_Valid(t *testing.T) {
	data := map[string]string{"username": "alice"}
	want := models.VaultItem{ID: "item-1", Type: models.ItemTypeCredential, Name: testItemName, Data: data}

	called := false
	inner := &mockInnerItemStore{
		addFn: func(_ context.Context, itemType models.ItemType, name string, got map[string]string) (models.VaultItem, error) {
			called = true
			assert.Equal(t, models.ItemTypeCredential, itemType)
			assert.Equal(t, testItemName, name)
			assert.Equal(t, data, got)
			return want, nil
		},
	}
	s := NewItemValidationStore().Wrap(inner)

	got, err := s.AddItem(context.Background(), models.ItemTypeCredential, testItemName, data)
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, want, got)
}

func TestItemValidationStore_AddItem_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		itemType models.ItemType
		itemName string
		data     map[string]string
		wantErr  error
	}{
		{
			name:     "unknown type",
			itemType: models.ItemType("certificate"),
			itemName: testItemName,
			data:     map[string]string{"k": "v"},
			wantErr:  validators.ErrInvalidType,
		},
		{
			name:     "empty name",
			itemType: models.ItemTypeNote,
			itemName: "",
			data:     map[string]string{"k": "v"},
			wantErr:  validators.ErrEmptyName,
		},
		{
			name:     "empty data",
			itemType: models.ItemTypeNote,
			itemName: testItemName,
			data:     map[string]string{},
			wantErr:  validators.ErrEmptyData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// nil inner: reaching it on invalid input would panic.
			s := NewItemValidationStore().Wrap(nil)

			_, err := s.AddItem(context.Background(), tt.itemType, tt.itemName, tt.data)
			assert.ErrorIs(t, err, ErrInvalidItem)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ─────────────────────────────────────────────
// UpdateItem
// ─────────────────────────────────────────────

func TestItemValidationStore_UpdateItem_Valid(t *testing.T) {
	name := "renamed"
	update := models.VaultItemUpdate{Name: &name}
	want := models.VaultItem{ID: "item-1", Name: name}

	called := false
	inner := &mockInnerItemStore{
		updateFn: func(_ context.Context, itemID string, got models.VaultItemUpdate) (models.VaultItem, error) {
			called = true
			assert.Equal(t, "item-1", itemID)
			assert.Equal(t, update, got)
			return want, nil
		},
	}
	s := NewItemValidationStore().Wrap(inner)

	got, err := s.UpdateItem(context.Background(), "item-1", update)
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, want, got)
}

func TestItemValidationStore_UpdateItem_RejectsInvalidInput(t *testing.T) {
	emptyName := ""
	badType := models.ItemType("certificate")
	goodName := "x"

	tests := []struct {
		name    string
		itemID  string
		update  models.VaultItemUpdate
		wantErr error
	}{
		{
			name:    "empty item id",
			itemID:  "",
			update:  models.VaultItemUpdate{Name: &goodName},
			wantErr: validators.ErrEmptyItemID,
		},
		{
			name:    "nothing to update",
			itemID:  "item-1",
			update:  models.VaultItemUpdate{},
			wantErr: validators.ErrNoFieldsToUpdate,
		},
		{
			name:    "blank name",
			itemID:  "item-1",
			update:  models.VaultItemUpdate{Name: &emptyName},
			wantErr: validators.ErrEmptyName,
		},
		{
			name:    "unknown type",
			itemID:  "item-1",
			update:  models.VaultItemUpdate{Type: &badType},
			wantErr: validators.ErrInvalidType,
		},
		{
			name:    "empty data record",
			itemID:  "item-1",
			update:  models.VaultItemUpdate{Data: map[string]string{}},
			wantErr: validators.ErrEmptyData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewItemValidationStore().Wrap(nil)

			_, err := s.UpdateItem(context.Background(), tt.itemID, tt.update)
			assert.ErrorIs(t, err, ErrInvalidItem)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ─────────────────────────────────────────────
// DeleteItem
// ─────────────────────────────────────────────

func TestItemValidationStore_DeleteItem_Valid(t *testing.T) {
	called := false
	inner := &mockInnerItemStore{
		deleteFn: func(_ context.Context, itemID string) error {
			called = true
			assert.Equal(t, "item-1", itemID)
			return nil
		},
	}
	s := NewItemValidationStore().Wrap(inner)

	require.NoError(t, s.DeleteItem(context.Background(), "item-1"))
	assert.True(t, called)
}

func TestItemValidationStore_DeleteItem_EmptyID(t *testing.T) {
	s := NewItemValidationStore().Wrap(nil)

	err := s.DeleteItem(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidItem)
	assert.ErrorIs(t, err, validators.ErrEmptyItemID)
}

// ─────────────────────────────────────────────
// Reads pass through
// ─────────────────────────────────────────────

func TestItemValidationStore_ReadsDelegate(t *testing.T) {
	items := []models.VaultItem{{ID: "item-1", Name: testItemName}}
	failures := []models.ItemFailure{{ItemID: "item-2", Reason: "authentication failed"}}
	cleared := false

	inner := &mockInnerItemStore{
		fetchFn: func(context.Context) ([]models.VaultItem, []models.ItemFailure, error) {
			return items, failures, nil
		},
		itemsFn: func() []models.VaultItem { return items },
		byTypeFn: func(itemType models.ItemType) []models.VaultItem {
			assert.Equal(t, models.ItemTypeCredential, itemType)
			return items
		},
		searchFn: func(query string) []models.VaultItem {
			assert.Equal(t, "git", query)
			return items
		},
		clearFn: func() { cleared = true },
	}
	s := NewItemValidationStore().Wrap(inner)

	gotItems, gotFailures, err := s.FetchItems(context.Background())
	require.NoError(t, err)
	assert.Equal(t, items, gotItems)
	assert.Equal(t, failures, gotFailures)

	assert.Equal(t, items, s.Items())
	assert.Equal(t, items, s.ItemsByType(models.ItemTypeCredential))
	assert.Equal(t, items, s.SearchItems("git"))

	s.Clear()
	assert.True(t, cleared)
}
