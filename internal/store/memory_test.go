package store

import (
	"context"
	"testing"
	"time"

	"github.com/raulshma/ever-life-vault-sub006/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMemoryStorages(t *testing.T) {
	s := NewMemoryStorages()
	require.NotNil(t, s)
	require.NotNil(t, s.Items)
	require.NotNil(t, s.Configs)
	require.NotNil(t, s.Sessions)
}

func TestMemoryItemRepository_SaveAndGet(t *testing.T) {
	repo := NewMemoryItemRepository()
	ctx := context.Background()

	item := models.EncryptedVaultItem{
		UserID:        "user-1",
		ItemType:      "credential",
		Name:          "GitHub",
		EncryptedData: "Y3Q=",
		IV:            "aXY=",
		AuthTag:       "dGFn",
	}
	require.NoError(t, repo.SaveItem(ctx, &item))

	assert.NotEmpty(t, item.ID, "ID should be assigned and written back")
	assert.False(t, item.CreatedAt.IsZero())

	items, err := repo.GetItems(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, item.ID, items[0].ID)
	assert.Equal(t, "dGFn", items[0].AuthTag)
}

func TestMemoryItemRepository_GetItems_OldestFirst(t *testing.T) {
	repo := NewMemoryItemRepository()
	ctx := context.Background()

	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	newer := models.EncryptedVaultItem{ID: "b", UserID: "u", CreatedAt: base.Add(time.Hour), UpdatedAt: base.Add(time.Hour)}
	older := models.EncryptedVaultItem{ID: "a", UserID: "u", CreatedAt: base, UpdatedAt: base}
	sameInstant := models.EncryptedVaultItem{ID: "c", UserID: "u", CreatedAt: base, UpdatedAt: base}

	require.NoError(t, repo.SaveItem(ctx, &newer))
	require.NoError(t, repo.SaveItem(ctx, &sameInstant))
	require.NoError(t, repo.SaveItem(ctx, &older))

	items, err := repo.GetItems(ctx, "u")
	require.NoError(t, err)
	require.Len(t, items, 3)

	// created_at ascending, id breaking the tie.
	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, "c", items[1].ID)
	assert.Equal(t, "b", items[2].ID)
}

func TestMemoryItemRepository_GetItems_IsolatedPerUser(t *testing.T) {
	repo := NewMemoryItemRepository()
	ctx := context.Background()

	mine := models.EncryptedVaultItem{UserID: "user-1", Name: "mine"}
	theirs := models.EncryptedVaultItem{UserID: "user-2", Name: "theirs"}
	require.NoError(t, repo.SaveItem(ctx, &mine))
	require.NoError(t, repo.SaveItem(ctx, &theirs))

	items, err := repo.GetItems(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "mine", items[0].Name)
}

func TestMemoryItemRepository_GetFirstItem(t *testing.T) {
	repo := NewMemoryItemRepository()
	ctx := context.Background()

	_, err := repo.GetFirstItem(ctx, "user-1")
	require.ErrorIs(t, err, ErrItemNotFound)

	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	second := models.EncryptedVaultItem{ID: "2", UserID: "user-1", CreatedAt: base.Add(time.Minute), UpdatedAt: base}
	first := models.EncryptedVaultItem{ID: "1", UserID: "user-1", CreatedAt: base, UpdatedAt: base}
	require.NoError(t, repo.SaveItem(ctx, &second))
	require.NoError(t, repo.SaveItem(ctx, &first))

	item, err := repo.GetFirstItem(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "1", item.ID)
}

func TestMemoryItemRepository_SaveItem_Duplicate(t *testing.T) {
	repo := NewMemoryItemRepository()
	ctx := context.Background()

	item := models.EncryptedVaultItem{ID: "fixed", UserID: "user-1"}
	require.NoError(t, repo.SaveItem(ctx, &item))

	dup := models.EncryptedVaultItem{ID: "fixed", UserID: "user-1"}
	err := repo.SaveItem(ctx, &dup)
	require.ErrorIs(t, err, ErrDuplicateRecord)
}

func TestMemoryItemRepository_UpdateItem(t *testing.T) {
	repo := NewMemoryItemRepository()
	ctx := context.Background()

	t.Run("missing item", func(t *testing.T) {
		missing := models.EncryptedVaultItem{ID: "nope", UserID: "user-1"}
		err := repo.UpdateItem(ctx, &missing)
		require.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("rewrites ciphertext, keeps created_at", func(t *testing.T) {
		item := models.EncryptedVaultItem{UserID: "user-1", EncryptedData: "b2xk"}
		require.NoError(t, repo.SaveItem(ctx, &item))
		createdAt := item.CreatedAt

		updated := models.EncryptedVaultItem{
			ID:            item.ID,
			UserID:        "user-1",
			EncryptedData: "bmV3",
			CreatedAt:     time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), // must be ignored
		}
		require.NoError(t, repo.UpdateItem(ctx, &updated))

		items, err := repo.GetItems(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "bmV3", items[0].EncryptedData)
		assert.Equal(t, createdAt, items[0].CreatedAt)
		assert.False(t, items[0].UpdatedAt.IsZero())
	})
}

func TestMemoryItemRepository_DeleteItem(t *testing.T) {
	repo := NewMemoryItemRepository()
	ctx := context.Background()

	require.ErrorIs(t, repo.DeleteItem(ctx, "user-1", "nope"), ErrItemNotFound)

	item := models.EncryptedVaultItem{UserID: "user-1"}
	require.NoError(t, repo.SaveItem(ctx, &item))
	require.NoError(t, repo.DeleteItem(ctx, "user-1", item.ID))

	items, err := repo.GetItems(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMemoryConfigRepository(t *testing.T) {
	repo := NewMemoryConfigRepository()
	ctx := context.Background()

	t.Run("missing config", func(t *testing.T) {
		_, err := repo.GetConfig(ctx, "user-1")
		require.ErrorIs(t, err, ErrConfigNotFound)
	})

	t.Run("save and get", func(t *testing.T) {
		cfg := models.VaultConfig{UserID: "user-1", Salt: "c2FsdA=="}
		require.NoError(t, repo.SaveConfig(ctx, &cfg))
		assert.False(t, cfg.CreatedAt.IsZero())

		got, err := repo.GetConfig(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, "c2FsdA==", got.Salt)
	})

	t.Run("second initialization rejected", func(t *testing.T) {
		again := models.VaultConfig{UserID: "user-1", Salt: "b3RoZXI="}
		err := repo.SaveConfig(ctx, &again)
		require.ErrorIs(t, err, ErrConfigAlreadyExists)

		// The original salt must survive; replacing it would orphan
		// every ciphertext derived from it.
		got, getErr := repo.GetConfig(ctx, "user-1")
		require.NoError(t, getErr)
		assert.Equal(t, "c2FsdA==", got.Salt)
	})
}

func TestMemorySessionRepository(t *testing.T) {
	repo := NewMemorySessionRepository()
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("missing session", func(t *testing.T) {
		_, err := repo.GetSession(ctx, "user-1", "nope")
		require.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("save, get, delete", func(t *testing.T) {
		session := models.VaultSession{
			UserID:       "user-1",
			SessionID:    "sess-1",
			ServerSecret: "c2VjcmV0",
			ExpiresAt:    now.Add(30 * time.Minute),
		}
		require.NoError(t, repo.SaveSession(ctx, &session))

		got, err := repo.GetSession(ctx, "user-1", "sess-1")
		require.NoError(t, err)
		assert.Equal(t, "c2VjcmV0", got.ServerSecret)

		require.NoError(t, repo.DeleteSession(ctx, "user-1", "sess-1"))
		_, err = repo.GetSession(ctx, "user-1", "sess-1")
		require.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("delete absent session is silent", func(t *testing.T) {
		require.NoError(t, repo.DeleteSession(ctx, "user-1", "long-gone"))
	})

	t.Run("duplicate session id rejected", func(t *testing.T) {
		first := models.VaultSession{UserID: "u", SessionID: "s", ExpiresAt: now.Add(time.Hour)}
		require.NoError(t, repo.SaveSession(ctx, &first))

		dup := models.VaultSession{UserID: "u", SessionID: "s", ExpiresAt: now.Add(time.Hour)}
		require.ErrorIs(t, repo.SaveSession(ctx, &dup), ErrDuplicateRecord)
	})
}

func TestMemorySessionRepository_DeleteExpiredSessions(t *testing.T) {
	repo := NewMemorySessionRepository()
	ctx := context.Background()
	now := time.Now().UTC()

	expired := models.VaultSession{UserID: "u", SessionID: "old", ExpiresAt: now.Add(-time.Minute)}
	atDeadline := models.VaultSession{UserID: "u", SessionID: "edge", ExpiresAt: now}
	live := models.VaultSession{UserID: "u", SessionID: "live", ExpiresAt: now.Add(time.Hour)}

	require.NoError(t, repo.SaveSession(ctx, &expired))
	require.NoError(t, repo.SaveSession(ctx, &atDeadline))
	require.NoError(t, repo.SaveSession(ctx, &live))

	swept, err := repo.DeleteExpiredSessions(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), swept, "deadline instant counts as expired")

	_, err = repo.GetSession(ctx, "u", "live")
	require.NoError(t, err)
	_, err = repo.GetSession(ctx, "u", "old")
	require.ErrorIs(t, err, ErrSessionNotFound)
}
