// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Raul Shma

package service

import (
	"context"
	"sync"

	"github.com/raulshma/ever-life-vault-sub006/internal/config"
	"github.com/raulshma/ever-life-vault-sub006/internal/crypto"
	"github.com/raulshma/ever-life-vault-sub006/internal/logger"
	"github.com/raulshma/ever-life-vault-sub006/internal/store"
)

// UserVault bundles the per-user vault services: the session lifecycle,
// the decrypted item store, the client-local tab store and the validity
// job watching the session.
type UserVault struct {
	Session SessionManager
	Items   ItemStore
	Tabs    store.TabStore

	job SessionJob
}

// VaultRegistry hands out one [UserVault] per user, created lazily on
// first access and kept for the lifetime of the process. Construction is
// cheap; nothing is derived or decrypted until the user unlocks.
type VaultRegistry struct {
	storages *store.Storages
	keys     crypto.KeyService
	wrapper  crypto.SessionKeyWrapper
	codec    ItemCodec
	cfg      config.App
	logger   *logger.Logger

	mu     sync.Mutex
	vaults map[string]*UserVault
}

// NewVaultRegistry constructs a [VaultRegistry] on top of the shared
// storages.
func NewVaultRegistry(storages *store.Storages, cfg config.App, logger *logger.Logger) *VaultRegistry {
	return &VaultRegistry{
		storages: storages,
		keys:     crypto.NewKeyService(),
		wrapper:  crypto.NewSessionKeyWrapper(),
		codec:    NewItemCodec(),
		cfg:      cfg,
		logger:   logger,
		vaults:   make(map[string]*UserVault),
	}
}

// Vault returns the [UserVault] of the given user, building it on first
// access. The new vault starts locked with its validity job running.
func (r *VaultRegistry) Vault(userID string) *UserVault {
	r.mu.Lock()
	defer r.mu.Unlock()

	if vault, ok := r.vaults[userID]; ok {
		return vault
	}

	tabs := store.NewTabStore()
	session := NewSessionManager(userID, r.storages, tabs, r.keys, r.wrapper, r.codec, r.cfg, r.logger)
	items := NewItemValidationStore().Wrap(
		NewItemStore(userID, session, r.storages.Items, r.codec, r.cfg, r.logger),
	)

	// Expiry drops the decrypted snapshot right away instead of waiting
	// for the next read to notice the lock.
	job := NewSessionJob(session, items.Clear, r.logger)
	job.Start(context.Background(), r.cfg.SessionCheckInterval)

	vault := &UserVault{
		Session: session,
		Items:   items,
		Tabs:    tabs,
		job:     job,
	}
	r.vaults[userID] = vault

	r.logger.Debug().
		Str("func", "VaultRegistry.Vault").
		Str("user_id", userID).
		Msg("user vault created")

	return vault
}

// Close stops every validity job and locks every vault, destroying all
// in-memory keys. Called on shutdown.
func (r *VaultRegistry) Close(ctx context.Context) {
	r.mu.Lock()
	vaults := make([]*UserVault, 0, len(r.vaults))
	for _, vault := range r.vaults {
		vaults = append(vaults, vault)
	}
	r.mu.Unlock()

	for _, vault := range vaults {
		vault.job.Stop()
		_ = vault.Session.LockVault(ctx)
	}
}
