// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Raul Shma

package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/raulshma/ever-life-vault-sub006/internal/config"
	"github.com/raulshma/ever-life-vault-sub006/internal/crypto"
	"github.com/raulshma/ever-life-vault-sub006/internal/logger"
	"github.com/raulshma/ever-life-vault-sub006/internal/store"
	"github.com/raulshma/ever-life-vault-sub006/internal/utils"
	"github.com/raulshma/ever-life-vault-sub006/models"
)

// SessionState enumerates the vault lifecycle states. Transitions only go
// Locked -> Unlocking -> Unlocked and back to Locked; there is no path that
// skips Unlocking, so two concurrent unlock attempts can never both derive
// a key for the same session.
type SessionState int

const (
	StateLocked SessionState = iota
	StateUnlocking
	StateUnlocked
)

func (s SessionState) String() string {
	switch s {
	case StateLocked:
		return "locked"
	case StateUnlocking:
		return "unlocking"
	case StateUnlocked:
		return "unlocked"
	default:
		return "unknown"
	}
}

// Tab store keys for the non-durable half of a session.
const (
	tabKeySession    = "vault:session"
	tabKeyWrappedKey = "vault:wrapped_key"
)

const defaultSessionTTL = 30 * time.Minute

// sessionManager is the private implementation of [SessionManager] for a
// single user. The decrypted vault key lives only in the key field, sealed
// inside a [crypto.OpaqueKey], and is destroyed on every transition to
// Locked.
type sessionManager struct {
	userID   string
	items    store.VaultItemRepository
	configs  store.VaultConfigRepository
	sessions store.VaultSessionRepository
	tabs     store.TabStore
	keys     crypto.KeyService
	wrapper  crypto.SessionKeyWrapper
	codec    ItemCodec
	uuid     *utils.UUIDGenerator
	ttl      time.Duration
	logger   *logger.Logger

	// now is the clock used for every expiry decision; swapped in tests.
	now func() time.Time

	mu        sync.Mutex
	state     SessionState
	key       *crypto.OpaqueKey
	sessionID string
	expiresAt time.Time
}

// NewSessionManager constructs a [SessionManager] for the given user on top
// of the shared storages and a client-local tab store.
func NewSessionManager(userID string, storages *store.Storages, tabs store.TabStore, keys crypto.KeyService, wrapper crypto.SessionKeyWrapper, codec ItemCodec, cfg config.App, logger *logger.Logger) SessionManager {
	return &sessionManager{
		userID:   userID,
		items:    storages.Items,
		configs:  storages.Configs,
		sessions: storages.Sessions,
		tabs:     tabs,
		keys:     keys,
		wrapper:  wrapper,
		codec:    codec,
		uuid:     utils.NewUUIDGenerator(),
		ttl:      cfg.SessionTTL,
		logger:   logger,
		now:      time.Now,
		state:    StateLocked,
	}
}

// HasVault reports whether the user's vault has been initialized.
func (m *sessionManager) HasVault(ctx context.Context) (bool, error) {
	if _, err := m.configs.GetConfig(ctx, m.userID); err != nil {
		if errors.Is(err, store.ErrConfigNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// InitializeVault creates the vault: it validates the master password
// against the policy, generates the permanent KDF salt, persists the config
// record and unlocks the fresh vault. Returns a *WeakPasswordError listing
// every unmet policy rule, or [ErrVaultAlreadyInitialized] when a config
// record already exists. The salt written here is never replaced.
func (m *sessionManager) InitializeVault(ctx context.Context, masterPassword string) error {
	log := logger.FromContext(ctx)

	if err := ValidateMasterPassword(masterPassword); err != nil {
		return err
	}

	salt, err := m.keys.GenerateSalt()
	if err != nil {
		log.Err(err).
			Str("func", "sessionManager.InitializeVault").
			Str("user_id", m.userID).
			Msg("failed to generate salt")
		return err
	}

	cfg := models.VaultConfig{
		UserID: m.userID,
		Salt:   base64.StdEncoding.EncodeToString(salt),
	}
	if err := m.configs.SaveConfig(ctx, &cfg); err != nil {
		if errors.Is(err, store.ErrConfigAlreadyExists) {
			return fmt.Errorf("%w: %w", ErrVaultAlreadyInitialized, err)
		}
		return err
	}

	log.Info().
		Str("func", "sessionManager.InitializeVault").
		Str("user_id", m.userID).
		Msg("vault initialized")

	// A fresh vault holds no items, so the password probe below cannot
	// reject the password that just passed the policy.
	return m.UnlockVault(ctx, masterPassword, 0)
}

// UnlockVault derives the vault key from the master password, proves it
// against the oldest stored item and establishes a new session with the
// given lifetime (zero or negative selects the configured default).
// Unlocking an unlocked vault is a no-op; a second unlock racing a first
// one fails with [ErrUnlockInProgress]. A wrong password surfaces as
// [crypto.ErrAuthenticationFailed], except against an empty vault, which
// holds no ciphertext to prove a password against and therefore accepts
// any of them.
func (m *sessionManager) UnlockVault(ctx context.Context, masterPassword string, ttl time.Duration) error {
	log := logger.FromContext(ctx)

	m.mu.Lock()
	switch m.state {
	case StateUnlocked:
		m.mu.Unlock()
		return nil
	case StateUnlocking:
		m.mu.Unlock()
		return ErrUnlockInProgress
	}
	m.state = StateUnlocking
	m.mu.Unlock()

	// Key derivation is deliberately slow; everything below runs outside
	// the mutex so readers keep seeing a consistent Unlocking state.
	key, sessionID, expiresAt, err := m.unlock(ctx, masterPassword, ttl)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.state = StateLocked
		return err
	}
	m.state = StateUnlocked
	m.key = key
	m.sessionID = sessionID
	m.expiresAt = expiresAt

	log.Info().
		Str("func", "sessionManager.UnlockVault").
		Str("user_id", m.userID).
		Str("session_id", sessionID).
		Time("expires_at", expiresAt).
		Msg("vault unlocked")

	return nil
}

// unlock performs the derive-wrap-probe-persist sequence. The wrapped blob
// is produced before the material is sealed, because sealing wipes the raw
// bytes. The session row and the local state are written only after the
// probe has accepted the key, so a failed unlock leaves no trace.
func (m *sessionManager) unlock(ctx context.Context, masterPassword string, ttl time.Duration) (*crypto.OpaqueKey, string, time.Time, error) {
	cfg, err := m.configs.GetConfig(ctx, m.userID)
	if err != nil {
		if errors.Is(err, store.ErrConfigNotFound) {
			return nil, "", time.Time{}, fmt.Errorf("%w: %w", ErrVaultNotInitialized, err)
		}
		return nil, "", time.Time{}, err
	}
	salt, err := base64.StdEncoding.DecodeString(cfg.Salt)
	if err != nil {
		return nil, "", time.Time{}, fmt.Errorf("%w: %w", crypto.ErrInvalidSalt, err)
	}

	material, err := m.keys.DeriveExportableKey(masterPassword, salt)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	secret, err := m.keys.GenerateServerSecret()
	if err != nil {
		material.Wipe()
		return nil, "", time.Time{}, err
	}
	wrapped, err := m.wrapper.Wrap(material, secret)
	if err != nil {
		material.Wipe()
		return nil, "", time.Time{}, err
	}

	key, err := material.Seal()
	if err != nil {
		material.Wipe()
		return nil, "", time.Time{}, err
	}

	if err := m.probePassword(ctx, key); err != nil {
		key.Destroy()
		return nil, "", time.Time{}, err
	}

	sessionID := m.uuid.Generate()
	now := m.now()
	expiresAt := now.Add(m.sessionTTL(ttl))

	session := models.VaultSession{
		UserID:       m.userID,
		SessionID:    sessionID,
		ServerSecret: base64.StdEncoding.EncodeToString(secret),
		ExpiresAt:    expiresAt,
	}
	if err := m.sessions.SaveSession(ctx, &session); err != nil {
		key.Destroy()
		return nil, "", time.Time{}, err
	}

	local, err := json.Marshal(models.LocalSessionState{
		SessionID:  sessionID,
		UnlockedAt: now,
		ExpiresAt:  expiresAt,
	})
	if err != nil {
		key.Destroy()
		_ = m.sessions.DeleteSession(ctx, m.userID, sessionID)
		return nil, "", time.Time{}, err
	}
	m.tabs.Set(tabKeySession, string(local))
	m.tabs.Set(tabKeyWrappedKey, wrapped)

	return key, sessionID, expiresAt, nil
}

// probePassword proves a derived key by decrypting the oldest stored item.
// An empty vault holds nothing to prove against, so every key passes.
func (m *sessionManager) probePassword(ctx context.Context, key *crypto.OpaqueKey) error {
	probe, err := m.items.GetFirstItem(ctx, m.userID)
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			return nil
		}
		return err
	}
	if _, err := m.codec.DecryptItem(probe, key); err != nil {
		return fmt.Errorf("%w: master password rejected", crypto.ErrAuthenticationFailed)
	}
	return nil
}

// LockVault destroys the in-memory key, clears the local session state and
// deletes the durable session row. It always leaves the vault locked and is
// safe to call in any state, including on an already locked vault.
func (m *sessionManager) LockVault(ctx context.Context) error {
	log := logger.FromContext(ctx)

	m.mu.Lock()
	key := m.key
	sessionID := m.sessionID
	m.key = nil
	m.sessionID = ""
	m.expiresAt = time.Time{}
	m.state = StateLocked
	m.mu.Unlock()

	if key != nil {
		key.Destroy()
	}
	m.clearLocalSession()

	if sessionID == "" {
		return nil
	}
	if err := m.sessions.DeleteSession(ctx, m.userID, sessionID); err != nil {
		// Already locked locally; an unreachable store only leaves a dead
		// session row behind for the sweeper.
		log.Warn().Err(err).
			Str("func", "sessionManager.LockVault").
			Str("user_id", m.userID).
			Str("session_id", sessionID).
			Msg("failed to delete session row")
		return nil
	}

	log.Info().
		Str("func", "sessionManager.LockVault").
		Str("user_id", m.userID).
		Str("session_id", sessionID).
		Msg("vault locked")

	return nil
}

// RestoreSession re-establishes an unlocked session from the two persisted
// halves: the local wrapped-key blob and the durable session row holding
// the server secret. It returns (false, nil) only when no local session
// exists at all. Any existing session that cannot be restored comes back
// as [ErrSessionExpired] after the stale halves are cleared; the one
// exception is a transient storage failure, which keeps the local state
// for a later attempt but still leaves the vault locked.
func (m *sessionManager) RestoreSession(ctx context.Context) (bool, error) {
	log := logger.FromContext(ctx)

	m.mu.Lock()
	switch m.state {
	case StateUnlocked:
		m.mu.Unlock()
		return true, nil
	case StateUnlocking:
		m.mu.Unlock()
		return false, ErrUnlockInProgress
	}
	m.state = StateUnlocking
	m.mu.Unlock()

	key, sessionID, expiresAt, restored, err := m.restore(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil || !restored {
		m.state = StateLocked
		return false, err
	}
	m.state = StateUnlocked
	m.key = key
	m.sessionID = sessionID
	m.expiresAt = expiresAt

	log.Info().
		Str("func", "sessionManager.RestoreSession").
		Str("user_id", m.userID).
		Str("session_id", sessionID).
		Msg("session restored")

	return true, nil
}

func (m *sessionManager) restore(ctx context.Context) (*crypto.OpaqueKey, string, time.Time, bool, error) {
	raw, ok := m.tabs.Get(tabKeySession)
	if !ok {
		return nil, "", time.Time{}, false, nil
	}

	var local models.LocalSessionState
	if err := json.Unmarshal([]byte(raw), &local); err != nil {
		m.clearLocalSession()
		return nil, "", time.Time{}, false, fmt.Errorf("%w: malformed local session state", ErrSessionExpired)
	}

	if !m.now().Before(local.ExpiresAt) {
		m.clearLocalSession()
		_ = m.sessions.DeleteSession(ctx, m.userID, local.SessionID)
		return nil, "", time.Time{}, false, ErrSessionExpired
	}

	wrapped, ok := m.tabs.Get(tabKeyWrappedKey)
	if !ok {
		m.clearLocalSession()
		return nil, "", time.Time{}, false, fmt.Errorf("%w: wrapped key is missing", ErrSessionExpired)
	}

	session, err := m.sessions.GetSession(ctx, m.userID, local.SessionID)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			m.clearLocalSession()
			return nil, "", time.Time{}, false, fmt.Errorf("%w: %w", ErrSessionExpired, err)
		}
		// Transient storage failure: keep the local halves so a later
		// attempt can still succeed.
		return nil, "", time.Time{}, false, err
	}
	if session.Expired(m.now()) {
		m.clearLocalSession()
		_ = m.sessions.DeleteSession(ctx, m.userID, session.SessionID)
		return nil, "", time.Time{}, false, ErrSessionExpired
	}

	secret, err := base64.StdEncoding.DecodeString(session.ServerSecret)
	if err != nil {
		m.clearLocalSession()
		return nil, "", time.Time{}, false, fmt.Errorf("%w: malformed server secret", ErrSessionExpired)
	}

	material, err := m.wrapper.Unwrap(wrapped, secret)
	if err != nil {
		m.clearLocalSession()
		_ = m.sessions.DeleteSession(ctx, m.userID, session.SessionID)
		return nil, "", time.Time{}, false, fmt.Errorf("%w: %w", ErrSessionExpired, err)
	}
	key, err := material.Seal()
	if err != nil {
		material.Wipe()
		return nil, "", time.Time{}, false, err
	}

	// Same proof as unlock: the restored key must decrypt an existing item
	// before the session is trusted again.
	if err := m.probePassword(ctx, key); err != nil {
		key.Destroy()
		if errors.Is(err, crypto.ErrAuthenticationFailed) {
			m.clearLocalSession()
			_ = m.sessions.DeleteSession(ctx, m.userID, session.SessionID)
			return nil, "", time.Time{}, false, fmt.Errorf("%w: %w", ErrSessionExpired, err)
		}
		return nil, "", time.Time{}, false, err
	}

	return key, session.SessionID, session.ExpiresAt, true, nil
}

func (m *sessionManager) clearLocalSession() {
	m.tabs.Remove(tabKeySession)
	m.tabs.Remove(tabKeyWrappedKey)
}

// CheckSessionValidity verifies that an unlocked session is still alive:
// the local deadline has not passed and the durable session row still
// exists and has not expired. Any violation, including a storage failure
// that makes the answer ambiguous, locks the vault and returns
// [ErrSessionExpired]. A locked vault has nothing to check and passes.
func (m *sessionManager) CheckSessionValidity(ctx context.Context) error {
	m.mu.Lock()
	state := m.state
	sessionID := m.sessionID
	expiresAt := m.expiresAt
	m.mu.Unlock()

	if state != StateUnlocked {
		return nil
	}

	if !m.now().Before(expiresAt) {
		_ = m.LockVault(ctx)
		return ErrSessionExpired
	}

	session, err := m.sessions.GetSession(ctx, m.userID, sessionID)
	if err != nil {
		_ = m.LockVault(ctx)
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)
	}
	if session.Expired(m.now()) {
		_ = m.LockVault(ctx)
		return ErrSessionExpired
	}

	return nil
}

// ChangeMasterPassword always returns [ErrNotSupported]. Rotating the
// master key means re-encrypting every item, and with this storage model
// that cannot be done atomically; an interruption would leave the vault
// half readable under each of two keys. Export and re-import is the
// supported path.
func (m *sessionManager) ChangeMasterPassword(ctx context.Context, currentPassword string, newPassword string) error {
	return ErrNotSupported
}

// IsUnlocked reports whether the vault is currently unlocked.
func (m *sessionManager) IsUnlocked() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state == StateUnlocked
}

// State returns the current lifecycle state.
func (m *sessionManager) State() SessionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// ExpiresAt returns the deadline of the current session, or the zero time
// when the vault is locked.
func (m *sessionManager) ExpiresAt() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.expiresAt
}

// SessionKey returns the in-memory vault key, or [ErrVaultLocked] when
// there is no unlocked session.
func (m *sessionManager) SessionKey() (*crypto.OpaqueKey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateUnlocked || m.key == nil {
		return nil, ErrVaultLocked
	}
	return m.key, nil
}

func (m *sessionManager) sessionTTL(override time.Duration) time.Duration {
	if override > 0 {
		return override
	}
	if m.ttl > 0 {
		return m.ttl
	}
	return defaultSessionTTL
}
