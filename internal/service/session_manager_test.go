// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Raul Shma

package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raulshma/ever-life-vault-sub006/internal/config"
	"github.com/raulshma/ever-life-vault-sub006/internal/crypto"
	"github.com/raulshma/ever-life-vault-sub006/internal/logger"
	"github.com/raulshma/ever-life-vault-sub006/internal/store"
	"github.com/raulshma/ever-life-vault-sub006/models"
)

const (
	testUserID   = "user-1"
	strongPass   = "Sup3r-Secret-Pass!"
	anotherPass  = "An0ther-Secret-Pass!"
	testItemName = "GitHub"
)

// sessionFixture bundles the shared backing state of one vault: the
// in-memory storages (the durable side) and the tab store (the client-local
// side). Creating a second manager on the same fixture simulates the same
// client instance after a reload.
type sessionFixture struct {
	storages *store.Storages
	tabs     store.TabStore
	keys     crypto.KeyService
	wrapper  crypto.SessionKeyWrapper
	codec    ItemCodec
}

func newSessionFixture() *sessionFixture {
	return &sessionFixture{
		storages: store.NewMemoryStorages(),
		tabs:     store.NewTabStore(),
		// The floor keeps derivation honest but the tests fast.
		keys:    crypto.NewKeyServiceWithIterations(crypto.MinIterations),
		wrapper: crypto.NewSessionKeyWrapper(),
		codec:   NewItemCodec(),
	}
}

func (f *sessionFixture) manager(t *testing.T) *sessionManager {
	t.Helper()
	cfg := config.App{SessionTTL: time.Hour, SessionCheckInterval: time.Second, DecryptWorkers: 2}
	m := NewSessionManager(testUserID, f.storages, f.tabs, f.keys, f.wrapper, f.codec, cfg, logger.Nop())
	return m.(*sessionManager)
}

// seedItem persists one encrypted item using the manager's live session
// key, giving the next unlock something to probe against.
func (f *sessionFixture) seedItem(t *testing.T, m *sessionManager, name string) models.VaultItem {
	t.Helper()
	key, err := m.SessionKey()
	require.NoError(t, err)

	item := models.VaultItem{
		Type: models.ItemTypeCredential,
		Name: name,
		Data: map[string]string{"username": "alice", "password": "gh-secret-token"},
	}
	encrypted, err := f.codec.EncryptItem(item, key, testUserID)
	require.NoError(t, err)
	require.NoError(t, f.storages.Items.SaveItem(context.Background(), &encrypted))

	item.ID = encrypted.ID
	return item
}

// localSessionID reads the session identifier out of the tab store.
func localSessionID(t *testing.T, tabs store.TabStore) string {
	t.Helper()
	raw, ok := tabs.Get(tabKeySession)
	require.True(t, ok, "local session state must be present")
	var state models.LocalSessionState
	require.NoError(t, json.Unmarshal([]byte(raw), &state))
	return state.SessionID
}

func tabsAreEmpty(tabs store.TabStore) bool {
	_, hasSession := tabs.Get(tabKeySession)
	_, hasKey := tabs.Get(tabKeyWrappedKey)
	return !hasSession && !hasKey
}

// ── InitializeVault ──────────────────────────────────────────────────────────

func TestSessionManager_InitializeVault_Success(t *testing.T) {
	f := newSessionFixture()
	m := f.manager(t)
	ctx := context.Background()

	t0 := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return t0 }

	require.NoError(t, m.InitializeVault(ctx, strongPass))

	assert.True(t, m.IsUnlocked())
	assert.Equal(t, StateUnlocked, m.State())
	assert.True(t, m.ExpiresAt().Equal(t0.Add(time.Hour)))

	hasVault, err := m.HasVault(ctx)
	require.NoError(t, err)
	assert.True(t, hasVault)

	key, err := m.SessionKey()
	require.NoError(t, err)
	assert.False(t, key.Destroyed())

	// Both halves of the session must be persisted.
	sid := localSessionID(t, f.tabs)
	_, ok := f.tabs.Get(tabKeyWrappedKey)
	assert.True(t, ok, "wrapped key blob must be in the tab store")
	session, err := f.storages.Sessions.GetSession(ctx, testUserID, sid)
	require.NoError(t, err)
	assert.True(t, session.ExpiresAt.Equal(t0.Add(time.Hour)))
}

func TestSessionManager_InitializeVault_WeakPassword(t *testing.T) {
	f := newSessionFixture()
	m := f.manager(t)
	ctx := context.Background()

	err := m.InitializeVault(ctx, "short")
	require.Error(t, err)

	var weak *WeakPasswordError
	require.ErrorAs(t, err, &weak)
	assert.Contains(t, weak.Reasons, "must be at least 12 characters long")
	assert.Contains(t, weak.Reasons, "must contain an uppercase letter")
	assert.Contains(t, weak.Reasons, "must contain a digit")
	assert.Contains(t, weak.Reasons, "must contain a symbol")
	assert.NotContains(t, weak.Reasons, "must contain a lowercase letter")

	// A rejected password must not create anything.
	hasVault, err := m.HasVault(ctx)
	require.NoError(t, err)
	assert.False(t, hasVault)
	assert.False(t, m.IsUnlocked())
}

func TestSessionManager_InitializeVault_AlreadyInitialized(t *testing.T) {
	f := newSessionFixture()
	m := f.manager(t)
	ctx := context.Background()

	require.NoError(t, m.InitializeVault(ctx, strongPass))
	require.NoError(t, m.LockVault(ctx))

	err := m.InitializeVault(ctx, anotherPass)
	assert.ErrorIs(t, err, ErrVaultAlreadyInitialized)
	assert.False(t, m.IsUnlocked())
}

// ── UnlockVault ──────────────────────────────────────────────────────────────

func TestSessionManager_UnlockVault_EmptyVaultAcceptsAnyPassword(t *testing.T) {
	f := newSessionFixture()
	m := f.manager(t)
	ctx := context.Background()

	require.NoError(t, m.InitializeVault(ctx, strongPass))
	require.NoError(t, m.LockVault(ctx))

	// No items, no probe: even a wrong password unlocks. The wrong key
	// cannot corrupt anything because there is nothing to decrypt.
	require.NoError(t, m.UnlockVault(ctx, "completely wrong", 0))
	assert.True(t, m.IsUnlocked())
}

func TestSessionManager_UnlockVault_WrongPasswordRejected(t *testing.T) {
	f := newSessionFixture()
	m := f.manager(t)
	ctx := context.Background()

	require.NoError(t, m.InitializeVault(ctx, strongPass))
	f.seedItem(t, m, testItemName)
	require.NoError(t, m.LockVault(ctx))

	err := m.UnlockVault(ctx, anotherPass, 0)
	assert.ErrorIs(t, err, crypto.ErrAuthenticationFailed)
	assert.False(t, m.IsUnlocked())
	assert.True(t, tabsAreEmpty(f.tabs), "a failed unlock must leave no session state behind")

	_, err = m.SessionKey()
	assert.ErrorIs(t, err, ErrVaultLocked)
}

func TestSessionManager_UnlockVault_CorrectPasswordWithItems(t *testing.T) {
	f := newSessionFixture()
	m := f.manager(t)
	ctx := context.Background()

	require.NoError(t, m.InitializeVault(ctx, strongPass))
	seeded := f.seedItem(t, m, testItemName)
	require.NoError(t, m.LockVault(ctx))

	require.NoError(t, m.UnlockVault(ctx, strongPass, 0))
	assert.True(t, m.IsUnlocked())

	// The fresh key must decrypt what the previous session encrypted.
	key, err := m.SessionKey()
	require.NoError(t, err)
	row, err := f.storages.Items.GetFirstItem(ctx, testUserID)
	require.NoError(t, err)
	got, err := f.codec.DecryptItem(row, key)
	require.NoError(t, err)
	assert.Equal(t, seeded.Name, got.Name)
	assert.Equal(t, seeded.Data, got.Data)
}

func TestSessionManager_UnlockVault_NotInitialized(t *testing.T) {
	f := newSessionFixture()
	m := f.manager(t)

	err := m.UnlockVault(context.Background(), strongPass, 0)
	assert.ErrorIs(t, err, ErrVaultNotInitialized)
}

func TestSessionManager_UnlockVault_AlreadyUnlockedIsNoOp(t *testing.T) {
	f := newSessionFixture()
	m := f.manager(t)
	ctx := context.Background()

	require.NoError(t, m.InitializeVault(ctx, strongPass))
	sid := localSessionID(t, f.tabs)

	require.NoError(t, m.UnlockVault(ctx, strongPass, 0))
	assert.Equal(t, sid, localSessionID(t, f.tabs), "a second unlock must not establish a new session")
}

func TestSessionManager_UnlockVault_UnlockInProgress(t *testing.T) {
	f := newSessionFixture()
	m := f.manager(t)

	m.mu.Lock()
	m.state = StateUnlocking
	m.mu.Unlock()

	err := m.UnlockVault(context.Background(), strongPass, 0)
	assert.ErrorIs(t, err, ErrUnlockInProgress)
}

func TestSessionManager_UnlockVault_TTLOverride(t *testing.T) {
	f := newSessionFixture()
	m := f.manager(t)
	ctx := context.Background()

	require.NoError(t, m.InitializeVault(ctx, strongPass))
	require.NoError(t, m.LockVault(ctx))

	t0 := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return t0 }

	require.NoError(t, m.UnlockVault(ctx, strongPass, 10*time.Minute))
	assert.True(t, m.ExpiresAt().Equal(t0.Add(10*time.Minute)), "explicit ttl must override the configured default")
}

// ── LockVault ────────────────────────────────────────────────────────────────

func TestSessionManager_LockVault_Idempotent(t *testing.T) {
	f := newSessionFixture()
	m := f.manager(t)
	ctx := context.Background()

	// Locking a never-unlocked vault is fine.
	require.NoError(t, m.LockVault(ctx))

	require.NoError(t, m.InitializeVault(ctx, strongPass))
	key, err := m.SessionKey()
	require.NoError(t, err)

	require.NoError(t, m.LockVault(ctx))
	assert.False(t, m.IsUnlocked())
	assert.Equal(t, StateLocked, m.State())
	assert.True(t, m.ExpiresAt().IsZero())
	assert.True(t, tabsAreEmpty(f.tabs))
	assert.True(t, key.Destroyed(), "the session key must be destroyed on lock")

	_, err = m.SessionKey()
	assert.ErrorIs(t, err, ErrVaultLocked)

	// And again.
	require.NoError(t, m.LockVault(ctx))
}

func TestSessionManager_LockVault_DeletesSessionRow(t *testing.T) {
	f := newSessionFixture()
	m := f.manager(t)
	ctx := context.Background()

	require.NoError(t, m.InitializeVault(ctx, strongPass))
	sid := localSessionID(t, f.tabs)

	require.NoError(t, m.LockVault(ctx))

	_, err := f.storages.Sessions.GetSession(ctx, testUserID, sid)
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}

// ── RestoreSession ───────────────────────────────────────────────────────────

func TestSessionManager_RestoreSession_Success(t *testing.T) {
	f := newSessionFixture()
	m1 := f.manager(t)
	ctx := context.Background()

	require.NoError(t, m1.InitializeVault(ctx, strongPass))
	seeded := f.seedItem(t, m1, testItemName)
	sid := localSessionID(t, f.tabs)

	// A reload drops the in-memory key but keeps the tab store.
	m2 := f.manager(t)
	restored, err := m2.RestoreSession(ctx)
	require.NoError(t, err)
	assert.True(t, restored)
	assert.True(t, m2.IsUnlocked())
	assert.Equal(t, sid, localSessionID(t, f.tabs), "restore must revive the same session, not create a new one")

	// The restored key must decrypt existing ciphertext. The master
	// password is never involved.
	key, err := m2.SessionKey()
	require.NoError(t, err)
	row, err := f.storages.Items.GetFirstItem(ctx, testUserID)
	require.NoError(t, err)
	got, err := f.codec.DecryptItem(row, key)
	require.NoError(t, err)
	assert.Equal(t, seeded.Data, got.Data)
}

func TestSessionManager_RestoreSession_NoLocalState(t *testing.T) {
	f := newSessionFixture()
	m := f.manager(t)

	restored, err := m.RestoreSession(context.Background())
	require.NoError(t, err)
	assert.False(t, restored)
	assert.False(t, m.IsUnlocked())
}

func TestSessionManager_RestoreSession_AlreadyUnlocked(t *testing.T) {
	f := newSessionFixture()
	m := f.manager(t)
	ctx := context.Background()

	require.NoError(t, m.InitializeVault(ctx, strongPass))

	restored, err := m.RestoreSession(ctx)
	require.NoError(t, err)
	assert.True(t, restored)
}

func TestSessionManager_RestoreSession_ExpiredDeadline(t *testing.T) {
	f := newSessionFixture()
	m1 := f.manager(t)
	ctx := context.Background()

	require.NoError(t, m1.InitializeVault(ctx, strongPass))

	m2 := f.manager(t)
	m2.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	restored, err := m2.RestoreSession(ctx)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.False(t, restored)
	assert.False(t, m2.IsUnlocked())
	assert.True(t, tabsAreEmpty(f.tabs), "an expired session must be cleared, not kept for retry")
}

func TestSessionManager_RestoreSession_RemoteRowGone(t *testing.T) {
	f := newSessionFixture()
	m1 := f.manager(t)
	ctx := context.Background()

	require.NoError(t, m1.InitializeVault(ctx, strongPass))
	sid := localSessionID(t, f.tabs)

	// The durable half disappears (another client locked the vault).
	require.NoError(t, f.storages.Sessions.DeleteSession(ctx, testUserID, sid))

	m2 := f.manager(t)
	restored, err := m2.RestoreSession(ctx)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.False(t, restored)
	assert.True(t, tabsAreEmpty(f.tabs))
}

func TestSessionManager_RestoreSession_TamperedBlob(t *testing.T) {
	f := newSessionFixture()
	m1 := f.manager(t)
	ctx := context.Background()

	require.NoError(t, m1.InitializeVault(ctx, strongPass))

	// Well-formed blob of the right size, but not one the server secret
	// ever wrapped.
	forged := base64.StdEncoding.EncodeToString(make([]byte, 60))
	f.tabs.Set(tabKeyWrappedKey, forged)

	m2 := f.manager(t)
	restored, err := m2.RestoreSession(ctx)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.False(t, restored)
	assert.False(t, m2.IsUnlocked())
}

func TestSessionManager_RestoreSession_ForeignKeyRejected(t *testing.T) {
	f := newSessionFixture()
	m1 := f.manager(t)
	ctx := context.Background()

	require.NoError(t, m1.InitializeVault(ctx, strongPass))
	f.seedItem(t, m1, testItemName)
	sid := localSessionID(t, f.tabs)

	// A correctly wrapped blob of the wrong key: unwrapping succeeds, but
	// the recovered key cannot decrypt any stored item.
	session, err := f.storages.Sessions.GetSession(ctx, testUserID, sid)
	require.NoError(t, err)
	secret, err := base64.StdEncoding.DecodeString(session.ServerSecret)
	require.NoError(t, err)

	foreign, err := f.keys.DeriveExportableKey(anotherPass, []byte("0123456789abcdef"))
	require.NoError(t, err)
	blob, err := f.wrapper.Wrap(foreign, secret)
	require.NoError(t, err)
	foreign.Wipe()
	f.tabs.Set(tabKeyWrappedKey, blob)

	m2 := f.manager(t)
	restored, err := m2.RestoreSession(ctx)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.ErrorIs(t, err, crypto.ErrAuthenticationFailed)
	assert.False(t, restored)
	assert.False(t, m2.IsUnlocked())
	assert.True(t, tabsAreEmpty(f.tabs))

	_, err = f.storages.Sessions.GetSession(ctx, testUserID, sid)
	assert.ErrorIs(t, err, store.ErrSessionNotFound, "a session restored with a rejected key must be revoked")
}

func TestSessionManager_RestoreSession_MalformedLocalState(t *testing.T) {
	f := newSessionFixture()
	m := f.manager(t)

	f.tabs.Set(tabKeySession, "{not json")

	restored, err := m.RestoreSession(context.Background())
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.False(t, restored)
	assert.True(t, tabsAreEmpty(f.tabs))
}

// ── CheckSessionValidity ─────────────────────────────────────────────────────

func TestSessionManager_CheckSessionValidity_Valid(t *testing.T) {
	f := newSessionFixture()
	m := f.manager(t)
	ctx := context.Background()

	require.NoError(t, m.InitializeVault(ctx, strongPass))

	require.NoError(t, m.CheckSessionValidity(ctx))
	assert.True(t, m.IsUnlocked())
}

func TestSessionManager_CheckSessionValidity_WhenLocked(t *testing.T) {
	f := newSessionFixture()
	m := f.manager(t)

	assert.NoError(t, m.CheckSessionValidity(context.Background()))
}

func TestSessionManager_CheckSessionValidity_Expired(t *testing.T) {
	f := newSessionFixture()
	m := f.manager(t)
	ctx := context.Background()

	require.NoError(t, m.InitializeVault(ctx, strongPass))

	m.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	err := m.CheckSessionValidity(ctx)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.False(t, m.IsUnlocked())
	assert.True(t, tabsAreEmpty(f.tabs))
}

func TestSessionManager_CheckSessionValidity_RemoteRowGone(t *testing.T) {
	f := newSessionFixture()
	m := f.manager(t)
	ctx := context.Background()

	require.NoError(t, m.InitializeVault(ctx, strongPass))
	sid := localSessionID(t, f.tabs)
	require.NoError(t, f.storages.Sessions.DeleteSession(ctx, testUserID, sid))

	err := m.CheckSessionValidity(ctx)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.False(t, m.IsUnlocked(), "an unverifiable session must fail closed")
}

// ── ChangeMasterPassword ─────────────────────────────────────────────────────

func TestSessionManager_ChangeMasterPassword_NotSupported(t *testing.T) {
	f := newSessionFixture()
	m := f.manager(t)
	ctx := context.Background()

	assert.ErrorIs(t, m.ChangeMasterPassword(ctx, strongPass, anotherPass), ErrNotSupported)

	// Unlocking does not change the answer.
	require.NoError(t, m.InitializeVault(ctx, strongPass))
	assert.ErrorIs(t, m.ChangeMasterPassword(ctx, strongPass, anotherPass), ErrNotSupported)
	assert.True(t, m.IsUnlocked(), "the rejected operation must not disturb the session")
}

// ── HasVault ─────────────────────────────────────────────────────────────────

func TestSessionManager_HasVault_False(t *testing.T) {
	f := newSessionFixture()
	m := f.manager(t)

	hasVault, err := m.HasVault(context.Background())
	require.NoError(t, err)
	assert.False(t, hasVault)
}
