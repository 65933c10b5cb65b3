package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raulshma/ever-life-vault-sub006/internal/config"
	"github.com/raulshma/ever-life-vault-sub006/internal/logger"
	"github.com/raulshma/ever-life-vault-sub006/internal/store"
)

func newTestRegistry() *VaultRegistry {
	cfg := config.App{
		SessionTTL:           time.Hour,
		SessionCheckInterval: 50 * time.Millisecond,
		DecryptWorkers:       2,
	}
	return NewVaultRegistry(store.NewMemoryStorages(), cfg, logger.Nop())
}

func TestVaultRegistry_SameVaultPerUser(t *testing.T) {
	r := newTestRegistry()
	defer r.Close(context.Background())

	first := r.Vault("user-1")
	second := r.Vault("user-1")
	assert.Same(t, first, second)
}

func TestVaultRegistry_DistinctVaultsAcrossUsers(t *testing.T) {
	r := newTestRegistry()
	defer r.Close(context.Background())

	one := r.Vault("user-1")
	two := r.Vault("user-2")
	require.NotSame(t, one, two)

	// Tab stores are per user; local session halves must never bleed over.
	one.Tabs.Set("vault:session", "state-of-user-1")
	_, ok := two.Tabs.Get("vault:session")
	assert.False(t, ok)
}

func TestVaultRegistry_VaultStartsLocked(t *testing.T) {
	r := newTestRegistry()
	defer r.Close(context.Background())

	vault := r.Vault("user-1")
	assert.Equal(t, StateLocked, vault.Session.State())
	assert.False(t, vault.Session.IsUnlocked())
	assert.Empty(t, vault.Items.Items())
}

func TestVaultRegistry_CloseLocksEveryVault(t *testing.T) {
	r := newTestRegistry()

	unlocked := r.Vault("user-1")
	require.NoError(t, unlocked.Session.InitializeVault(context.Background(), strongPass))
	require.True(t, unlocked.Session.IsUnlocked())
	idle := r.Vault("user-2")

	r.Close(context.Background())

	assert.Equal(t, StateLocked, unlocked.Session.State())
	_, err := unlocked.Session.SessionKey()
	assert.ErrorIs(t, err, ErrVaultLocked)
	assert.Equal(t, StateLocked, idle.Session.State())
}
