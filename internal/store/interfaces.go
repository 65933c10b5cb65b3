package store

import (
	"context"
	"time"

	"github.com/raulshma/ever-life-vault-sub006/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mocks.go -package=mock

// VaultItemRepository persists encrypted vault items. Implementations only
// ever see ciphertext; nothing at this layer can decrypt a record.
type VaultItemRepository interface {
	// GetItems returns every encrypted item owned by the given user,
	// oldest first. An empty vault yields an empty slice, not an error.
	GetItems(ctx context.Context, userID string) ([]models.EncryptedVaultItem, error)

	// GetFirstItem returns the oldest encrypted item of the user, used as
	// the password-validation probe at unlock time. Returns
	// [ErrItemNotFound] when the vault holds no items.
	GetFirstItem(ctx context.Context, userID string) (models.EncryptedVaultItem, error)

	// SaveItem inserts a new encrypted item. A missing ID and zero
	// timestamps are assigned by the repository and written back into item.
	SaveItem(ctx context.Context, item *models.EncryptedVaultItem) error

	// UpdateItem rewrites the mutable columns (name, item_type, ciphertext
	// triple, updated_at) of an existing record. Returns [ErrItemNotFound]
	// when no row matches item.ID and item.UserID.
	UpdateItem(ctx context.Context, item *models.EncryptedVaultItem) error

	// DeleteItem removes a record. Returns [ErrItemNotFound] when no row
	// matches.
	DeleteItem(ctx context.Context, userID, itemID string) error
}

// VaultConfigRepository persists the per-user vault bootstrap record.
type VaultConfigRepository interface {
	// GetConfig returns the config row of the given user or
	// [ErrConfigNotFound] when the vault was never initialized.
	GetConfig(ctx context.Context, userID string) (models.VaultConfig, error)

	// SaveConfig inserts the config row. Returns [ErrConfigAlreadyExists]
	// when a row for the user is already present; the salt of an
	// initialized vault must never be replaced.
	SaveConfig(ctx context.Context, cfg *models.VaultConfig) error
}

// VaultSessionRepository persists the durable half of unlock sessions.
type VaultSessionRepository interface {
	// GetSession returns the session row for the given user and session
	// identifier or [ErrSessionNotFound].
	GetSession(ctx context.Context, userID, sessionID string) (models.VaultSession, error)

	// SaveSession inserts a new session row.
	SaveSession(ctx context.Context, session *models.VaultSession) error

	// DeleteSession removes a session row. Deleting an absent row is not
	// an error; locking must stay idempotent.
	DeleteSession(ctx context.Context, userID, sessionID string) error

	// DeleteExpiredSessions removes every session whose deadline lies at
	// or before now and reports how many rows were swept.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// TabStore is the client-local, non-durable half of session persistence:
// a flat string-blob store scoped to one client instance, analogous to a
// per-tab web storage area. It survives a reload of the owning instance
// but not its termination, and is never shared across instances.
//
// Implementations must be safe for concurrent use. Operations cannot
// fail; a missing key simply reads back as absent.
type TabStore interface {
	// Get returns the value stored under key and whether it was present.
	Get(key string) (string, bool)

	// Set stores value under key, replacing any previous value.
	Set(key, value string)

	// Remove deletes key. Removing an absent key is a no-op.
	Remove(key string)

	// Clear drops every key.
	Clear()
}

// ErrorClassifier maps driver-specific failures onto the store's sentinel
// errors so repositories stay dialect-agnostic.
type ErrorClassifier interface {
	// IsDuplicate reports whether err is a unique-constraint violation.
	IsDuplicate(err error) bool
}
