package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mocks.go -package=mock

import (
	"context"
	"time"

	"github.com/raulshma/ever-life-vault-sub006/internal/crypto"
	"github.com/raulshma/ever-life-vault-sub006/models"
)

// SessionManager drives the vault lifecycle for a single user: Locked,
// Unlocking and Unlocked. The decrypted master key never leaves it except
// through SessionKey, and only while the session is unlocked.
type SessionManager interface {
	InitializeVault(ctx context.Context, masterPassword string) error

	// UnlockVault establishes a session with the given lifetime; a zero
	// or negative ttl selects the configured default.
	UnlockVault(ctx context.Context, masterPassword string, ttl time.Duration) error

	LockVault(ctx context.Context) error

	RestoreSession(ctx context.Context) (bool, error)
	CheckSessionValidity(ctx context.Context) error
	ChangeMasterPassword(ctx context.Context, currentPassword string, newPassword string) error

	HasVault(ctx context.Context) (bool, error)
	IsUnlocked() bool
	State() SessionState
	ExpiresAt() time.Time

	// SessionKey returns the in-memory vault key. ErrVaultLocked when there
	// is no unlocked session.
	SessionKey() (*crypto.OpaqueKey, error)
}

// ItemStore is the decrypted item cache backed by the encrypted repository.
// Every write re-encrypts before it touches storage; every read works off
// the in-memory clear-text copy.
type ItemStore interface {
	// FetchItems loads and decrypts the user's items. Undecryptable
	// records are reported as failures, not errors; a locked vault
	// yields nothing at all.
	FetchItems(ctx context.Context) ([]models.VaultItem, []models.ItemFailure, error)

	AddItem(ctx context.Context, itemType models.ItemType, name string, data map[string]string) (models.VaultItem, error)
	UpdateItem(ctx context.Context, itemID string, update models.VaultItemUpdate) (models.VaultItem, error)
	DeleteItem(ctx context.Context, itemID string) error

	Items() []models.VaultItem
	ItemsByType(itemType models.ItemType) []models.VaultItem
	SearchItems(query string) []models.VaultItem

	// Clear drops the decrypted snapshot. Called on lock and expiry.
	Clear()
}

// ItemStoreWrapper defines middleware composition for ItemStore.
// Implementations wrap an existing ItemStore to add behavior such as
// validating.
type ItemStoreWrapper interface {
	Wrap(ItemStore) ItemStore // returns a decorated ItemStore applying additional behavior
}

// ItemCodec converts between clear vault items and their stored encrypted
// form. Decryption failures come back as *DecryptError so one broken row
// never poisons a whole fetch.
type ItemCodec interface {
	EncryptItem(item models.VaultItem, key *crypto.OpaqueKey, userID string) (models.EncryptedVaultItem, error)
	DecryptItem(encrypted models.EncryptedVaultItem, key *crypto.OpaqueKey) (models.VaultItem, error)
}

// SessionJob periodically re-checks that an unlocked session is still valid
// and locks the vault when it is not.
type SessionJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
