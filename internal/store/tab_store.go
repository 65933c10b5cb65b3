// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Raul Shma

package store

import "sync"

// tabStore is the local, non-durable key/value store scoped to a single
// client context. It deliberately lives in process memory only: closing
// the process discards the wrapped session key, which is the property
// the session design relies on.
type tabStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewTabStore constructs an empty [TabStore].
func NewTabStore() TabStore {
	return &tabStore{values: make(map[string]string)}
}

func (s *tabStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	return value, ok
}

func (s *tabStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
}

func (s *tabStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
}

func (s *tabStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = make(map[string]string)
}
