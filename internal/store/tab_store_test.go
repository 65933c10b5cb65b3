package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTabStore_SetGetRemove(t *testing.T) {
	s := NewTabStore()

	_, ok := s.Get("vault:session")
	assert.False(t, ok)

	s.Set("vault:session", `{"session_id":"sess-1"}`)
	value, ok := s.Get("vault:session")
	require.True(t, ok)
	assert.Equal(t, `{"session_id":"sess-1"}`, value)

	s.Set("vault:session", "overwritten")
	value, _ = s.Get("vault:session")
	assert.Equal(t, "overwritten", value)

	s.Remove("vault:session")
	_, ok = s.Get("vault:session")
	assert.False(t, ok)

	// Removing twice must stay silent.
	s.Remove("vault:session")
}

func TestTabStore_Clear(t *testing.T) {
	s := NewTabStore()

	s.Set("vault:session", "a")
	s.Set("vault:wrapped_key", "b")

	s.Clear()

	_, ok := s.Get("vault:session")
	assert.False(t, ok)
	_, ok = s.Get("vault:wrapped_key")
	assert.False(t, ok)
}

func TestTabStore_ConcurrentAccess(t *testing.T) {
	s := NewTabStore()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Set("key", "value")
				s.Get("key")
				s.Remove("key")
			}
		}()
	}
	wg.Wait()
}
