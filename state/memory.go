package state

import (
	"context"
	"sync"

	"github.com/foomo/workspace-sidebar/sidebar"
)

// MemoryStore is an in-process Store for tests and stateless runs.
type MemoryStore struct {
	mu        sync.RWMutex
	expansion sidebar.Expansion
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns a copy of the current expansion set.
func (s *MemoryStore) Load(_ context.Context) (sidebar.Expansion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	expansion := make(sidebar.Expansion, len(s.expansion))
	copy(expansion, s.expansion)
	return expansion, nil
}

// Save replaces the current expansion set with a copy of the given one.
func (s *MemoryStore) Save(_ context.Context, expansion sidebar.Expansion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expansion = make(sidebar.Expansion, len(expansion))
	copy(s.expansion, expansion)
	return nil
}
