// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Raul Shma

package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/raulshma/ever-life-vault-sub006/internal/config"
	"github.com/raulshma/ever-life-vault-sub006/internal/crypto"
	"github.com/raulshma/ever-life-vault-sub006/internal/logger"
	"github.com/raulshma/ever-life-vault-sub006/internal/store"
	"github.com/raulshma/ever-life-vault-sub006/models"
)

const defaultDecryptWorkers = 4

// searchableDataKeys are the payload fields that participate in search
// besides the item name.
var searchableDataKeys = []string{"username", "url", "email"}

// itemStore is the private implementation of [ItemStore] for a single user.
// It keeps the last decrypted snapshot in memory; readers hand out clones
// so no caller can reach the shared state. A lock observed by any reader
// drops the snapshot.
type itemStore struct {
	userID  string
	session SessionManager
	items   store.VaultItemRepository
	codec   ItemCodec
	workers int
	logger  *logger.Logger

	mu      sync.RWMutex
	loaded  map[string]models.VaultItem
	hasData bool

	// fetchGen invalidates in-flight fetches: a fetch publishes its result
	// only if no newer fetch started while it was decrypting.
	fetchGen atomic.Int64
}

// NewItemStore constructs an [ItemStore] for the given user on top of the
// encrypted item repository. cfg.DecryptWorkers bounds the decrypt
// concurrency during fetches.
func NewItemStore(userID string, session SessionManager, items store.VaultItemRepository, codec ItemCodec, cfg config.App, logger *logger.Logger) ItemStore {
	return &itemStore{
		userID:  userID,
		session: session,
		items:   items,
		codec:   codec,
		workers: cfg.DecryptWorkers,
		logger:  logger,
	}
}

// FetchItems loads every encrypted item of the user and decrypts them on a
// bounded worker pool. Records that fail to decrypt are collected as
// failures and skipped; one corrupted row never hides the rest. A locked
// vault fetches nothing, and a fetch that was superseded by a newer one
// (or by a lock) while decrypting discards its result instead of
// publishing a stale snapshot.
func (s *itemStore) FetchItems(ctx context.Context) ([]models.VaultItem, []models.ItemFailure, error) {
	log := logger.FromContext(ctx)

	key, err := s.session.SessionKey()
	if err != nil {
		return nil, nil, nil
	}

	gen := s.fetchGen.Add(1)

	encrypted, err := s.items.GetItems(ctx, s.userID)
	if err != nil {
		return nil, nil, err
	}

	decrypted := make([]*models.VaultItem, len(encrypted))
	var failMu sync.Mutex
	var failures []models.ItemFailure

	var g errgroup.Group
	g.SetLimit(s.workerLimit())
	for i, row := range encrypted {
		g.Go(func() error {
			item, decErr := s.codec.DecryptItem(row, key)
			if decErr != nil {
				failMu.Lock()
				failures = append(failures, models.ItemFailure{
					ItemID: row.ID,
					Name:   row.Name,
					Reason: failureReason(decErr),
				})
				failMu.Unlock()
				return nil
			}
			decrypted[i] = &item
			return nil
		})
	}
	// Workers never return errors; decrypt failures are data, not faults.
	_ = g.Wait()

	if s.fetchGen.Load() != gen {
		log.Debug().
			Str("func", "itemStore.FetchItems").
			Str("user_id", s.userID).
			Msg("stale fetch discarded")
		return nil, nil, nil
	}
	if !s.session.IsUnlocked() {
		// Locked while decrypting; the plaintext must not survive.
		return nil, nil, nil
	}

	loaded := make(map[string]models.VaultItem, len(decrypted))
	items := make([]models.VaultItem, 0, len(decrypted))
	for _, item := range decrypted {
		if item == nil {
			continue
		}
		loaded[item.ID] = *item
		items = append(items, item.Clone())
	}
	sortItems(items)

	s.mu.Lock()
	s.loaded = loaded
	s.hasData = true
	s.mu.Unlock()

	log.Info().
		Str("func", "itemStore.FetchItems").
		Str("user_id", s.userID).
		Int("items", len(items)).
		Int("failures", len(failures)).
		Msg("fetched vault items")

	return items, failures, nil
}

// AddItem encrypts a new item and persists it. Returns [ErrVaultLocked]
// when there is no unlocked session.
func (s *itemStore) AddItem(ctx context.Context, itemType models.ItemType, name string, data map[string]string) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	key, err := s.session.SessionKey()
	if err != nil {
		return models.VaultItem{}, err
	}

	item := models.VaultItem{
		Type: itemType,
		Name: name,
		Data: data,
	}

	encrypted, err := s.codec.EncryptItem(item, key, s.userID)
	if err != nil {
		return models.VaultItem{}, err
	}

	if err := s.items.SaveItem(ctx, &encrypted); err != nil {
		return models.VaultItem{}, err
	}

	// The repository assigned the id and the timestamps; mirror them.
	item.ID = encrypted.ID
	item.CreatedAt = encrypted.CreatedAt
	item.UpdatedAt = encrypted.UpdatedAt

	s.mu.Lock()
	if s.hasData {
		s.loaded[item.ID] = item.Clone()
	}
	s.mu.Unlock()

	log.Info().
		Str("func", "itemStore.AddItem").
		Str("user_id", s.userID).
		Str("item_id", item.ID).
		Msg("vault item added")

	return item, nil
}

// UpdateItem merges a partial update into the decrypted current state of
// the item and re-encrypts the merged result. The item must be present in
// the loaded snapshot ([ErrItemNotLoaded] otherwise); an update without
// current state would have nothing to merge into. A non-nil Data replaces
// the whole payload record. Concurrent updates resolve last-write-wins.
func (s *itemStore) UpdateItem(ctx context.Context, itemID string, update models.VaultItemUpdate) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	key, err := s.session.SessionKey()
	if err != nil {
		return models.VaultItem{}, err
	}

	s.mu.RLock()
	current, ok := s.loaded[itemID]
	if ok {
		current = current.Clone()
	}
	s.mu.RUnlock()
	if !ok {
		return models.VaultItem{}, ErrItemNotLoaded
	}

	merged := current
	if update.Name != nil {
		merged.Name = *update.Name
	}
	if update.Type != nil {
		merged.Type = *update.Type
	}
	if update.Data != nil {
		merged.Data = update.Data
	}
	// Zeroed so the repository stamps the write time.
	merged.UpdatedAt = time.Time{}

	encrypted, err := s.codec.EncryptItem(merged, key, s.userID)
	if err != nil {
		return models.VaultItem{}, err
	}

	if err := s.items.UpdateItem(ctx, &encrypted); err != nil {
		return models.VaultItem{}, err
	}
	merged.UpdatedAt = encrypted.UpdatedAt

	s.mu.Lock()
	if s.hasData {
		s.loaded[itemID] = merged.Clone()
	}
	s.mu.Unlock()

	log.Info().
		Str("func", "itemStore.UpdateItem").
		Str("user_id", s.userID).
		Str("item_id", itemID).
		Msg("vault item updated")

	return merged, nil
}

// DeleteItem removes an item from storage and from the loaded snapshot.
// Returns [ErrVaultLocked] when there is no unlocked session and
// [store.ErrItemNotFound] when the record does not exist.
func (s *itemStore) DeleteItem(ctx context.Context, itemID string) error {
	log := logger.FromContext(ctx)

	if !s.session.IsUnlocked() {
		return ErrVaultLocked
	}

	if err := s.items.DeleteItem(ctx, s.userID, itemID); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.loaded, itemID)
	s.mu.Unlock()

	log.Info().
		Str("func", "itemStore.DeleteItem").
		Str("user_id", s.userID).
		Str("item_id", itemID).
		Msg("vault item deleted")

	return nil
}

// Items returns the loaded snapshot, oldest first. A locked vault reads
// back empty, and observing the lock drops any leftover plaintext.
func (s *itemStore) Items() []models.VaultItem {
	if !s.session.IsUnlocked() {
		s.Clear()
		return []models.VaultItem{}
	}

	s.mu.RLock()
	items := make([]models.VaultItem, 0, len(s.loaded))
	for _, item := range s.loaded {
		items = append(items, item.Clone())
	}
	s.mu.RUnlock()

	sortItems(items)
	return items
}

// ItemsByType returns the loaded items of one semantic kind, oldest first.
func (s *itemStore) ItemsByType(itemType models.ItemType) []models.VaultItem {
	items := s.Items()
	out := make([]models.VaultItem, 0, len(items))
	for _, item := range items {
		if item.Type == itemType {
			out = append(out, item)
		}
	}
	return out
}

// SearchItems returns the loaded items whose name or well-known payload
// fields (username, url, email) contain the query, case-insensitively.
// A blank query returns everything.
func (s *itemStore) SearchItems(query string) []models.VaultItem {
	items := s.Items()

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}

	out := make([]models.VaultItem, 0, len(items))
	for _, item := range items {
		if matchesQuery(item, q) {
			out = append(out, item)
		}
	}
	return out
}

// Clear drops the decrypted snapshot.
func (s *itemStore) Clear() {
	s.mu.Lock()
	s.loaded = nil
	s.hasData = false
	s.mu.Unlock()
}

func (s *itemStore) workerLimit() int {
	if s.workers < 1 {
		return defaultDecryptWorkers
	}
	return s.workers
}

func matchesQuery(item models.VaultItem, q string) bool {
	if strings.Contains(strings.ToLower(item.Name), q) {
		return true
	}
	for _, k := range searchableDataKeys {
		if v, ok := item.Data[k]; ok && strings.Contains(strings.ToLower(v), q) {
			return true
		}
	}
	return false
}

// sortItems orders items oldest first with the id as tie-break, matching
// the storage order.
func sortItems(items []models.VaultItem) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID < items[j].ID
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
}

// failureReason maps a decrypt failure onto one of two reported reasons.
// Nothing about the underlying ciphertext or error detail leaks out.
func failureReason(err error) string {
	if errors.Is(err, crypto.ErrAuthenticationFailed) {
		return "authentication failed"
	}
	return "malformed record"
}
