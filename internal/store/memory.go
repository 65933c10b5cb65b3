package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/raulshma/ever-life-vault-sub006/internal/utils"
	"github.com/raulshma/ever-life-vault-sub006/models"
)

// In-memory repository implementations. They back the "memory" storage
// driver used for development and make service-level tests independent of
// a database. Semantics mirror the SQL repositories exactly, including
// sentinel errors and write-back of assigned IDs and timestamps.

// NewMemoryStorages constructs a [Storages] aggregate over fresh
// in-memory repositories.
func NewMemoryStorages() *Storages {
	return &Storages{
		Items:    NewMemoryItemRepository(),
		Configs:  NewMemoryConfigRepository(),
		Sessions: NewMemorySessionRepository(),
	}
}

// memoryItemRepository implements [VaultItemRepository] over a map
// guarded by a read-write mutex.
type memoryItemRepository struct {
	mu    sync.RWMutex
	items map[string]map[string]models.EncryptedVaultItem // userID -> itemID -> item
	uuid  *utils.UUIDGenerator
}

// NewMemoryItemRepository constructs an empty in-memory item repository.
func NewMemoryItemRepository() VaultItemRepository {
	return &memoryItemRepository{
		items: make(map[string]map[string]models.EncryptedVaultItem),
		uuid:  utils.NewUUIDGenerator(),
	}
}

func (r *memoryItemRepository) GetItems(_ context.Context, userID string) ([]models.EncryptedVaultItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]models.EncryptedVaultItem, 0, len(r.items[userID]))
	for _, item := range r.items[userID] {
		results = append(results, item)
	}

	// Stable oldest-first order, same as the SQL ORDER BY.
	sort.Slice(results, func(i, j int) bool {
		if results[i].CreatedAt.Equal(results[j].CreatedAt) {
			return results[i].ID < results[j].ID
		}
		return results[i].CreatedAt.Before(results[j].CreatedAt)
	})

	return results, nil
}

func (r *memoryItemRepository) GetFirstItem(ctx context.Context, userID string) (models.EncryptedVaultItem, error) {
	items, _ := r.GetItems(ctx, userID)
	if len(items) == 0 {
		return models.EncryptedVaultItem{}, ErrItemNotFound
	}
	return items[0], nil
}

func (r *memoryItemRepository) SaveItem(_ context.Context, item *models.EncryptedVaultItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == "" {
		item.ID = r.uuid.Generate()
	}
	now := time.Now().UTC()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	if item.UpdatedAt.IsZero() {
		item.UpdatedAt = now
	}

	userItems := r.items[item.UserID]
	if userItems == nil {
		userItems = make(map[string]models.EncryptedVaultItem)
		r.items[item.UserID] = userItems
	}
	if _, exists := userItems[item.ID]; exists {
		return ErrDuplicateRecord
	}

	userItems[item.ID] = *item
	return nil
}

func (r *memoryItemRepository) UpdateItem(_ context.Context, item *models.EncryptedVaultItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	userItems := r.items[item.UserID]
	existing, ok := userItems[item.ID]
	if !ok {
		return ErrItemNotFound
	}

	if item.UpdatedAt.IsZero() {
		item.UpdatedAt = time.Now().UTC()
	}
	item.CreatedAt = existing.CreatedAt

	userItems[item.ID] = *item
	return nil
}

func (r *memoryItemRepository) DeleteItem(_ context.Context, userID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	userItems := r.items[userID]
	if _, ok := userItems[itemID]; !ok {
		return ErrItemNotFound
	}

	delete(userItems, itemID)
	return nil
}

// memoryConfigRepository implements [VaultConfigRepository] over a map.
type memoryConfigRepository struct {
	mu      sync.RWMutex
	configs map[string]models.VaultConfig // userID -> config
}

// NewMemoryConfigRepository constructs an empty in-memory config repository.
func NewMemoryConfigRepository() VaultConfigRepository {
	return &memoryConfigRepository{configs: make(map[string]models.VaultConfig)}
}

func (r *memoryConfigRepository) GetConfig(_ context.Context, userID string) (models.VaultConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cfg, ok := r.configs[userID]
	if !ok {
		return models.VaultConfig{}, ErrConfigNotFound
	}
	return cfg, nil
}

func (r *memoryConfigRepository) SaveConfig(_ context.Context, cfg *models.VaultConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.configs[cfg.UserID]; exists {
		return ErrConfigAlreadyExists
	}

	now := time.Now().UTC()
	if cfg.CreatedAt.IsZero() {
		cfg.CreatedAt = now
	}
	if cfg.UpdatedAt.IsZero() {
		cfg.UpdatedAt = now
	}

	r.configs[cfg.UserID] = *cfg
	return nil
}

// memorySessionRepository implements [VaultSessionRepository] over a map
// keyed by user and session identifiers.
type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[sessionKey]models.VaultSession
}

type sessionKey struct {
	userID    string
	sessionID string
}

// NewMemorySessionRepository constructs an empty in-memory session repository.
func NewMemorySessionRepository() VaultSessionRepository {
	return &memorySessionRepository{sessions: make(map[sessionKey]models.VaultSession)}
}

func (r *memorySessionRepository) GetSession(_ context.Context, userID, sessionID string) (models.VaultSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[sessionKey{userID, sessionID}]
	if !ok {
		return models.VaultSession{}, ErrSessionNotFound
	}
	return session, nil
}

func (r *memorySessionRepository) SaveSession(_ context.Context, session *models.VaultSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := sessionKey{session.UserID, session.SessionID}
	if _, exists := r.sessions[key]; exists {
		return ErrDuplicateRecord
	}

	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}

	r.sessions[key] = *session
	return nil
}

func (r *memorySessionRepository) DeleteSession(_ context.Context, userID, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, sessionKey{userID, sessionID})
	return nil
}

func (r *memorySessionRepository) DeleteExpiredSessions(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var swept int64
	for key, session := range r.sessions {
		if session.Expired(now) {
			delete(r.sessions, key)
			swept++
		}
	}
	return swept, nil
}
