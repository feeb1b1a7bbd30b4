package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-memory DismissalStore for local development and tests.
type MemoryStore struct {
	mu  sync.RWMutex
	ids map[string]bool
}

var _ DismissalStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory dismissal store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{ids: make(map[string]bool)}
}

// NewMemoryStoreFromJSON seeds the store from a persisted snapshot: a JSON
// array of strings. A malformed snapshot seeds an empty store.
func NewMemoryStoreFromJSON(data []byte) *MemoryStore {
	s := NewMemoryStore()
	for _, id := range ParseDismissedIDs(data) {
		s.ids[id] = true
	}
	return s
}

// GetDismissedIDs returns a copy of the dismissed set.
func (s *MemoryStore) GetDismissedIDs(ctx context.Context) (map[string]bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]bool, len(s.ids))
	for id := range s.ids {
		out[id] = true
	}
	return out, nil
}

// Dismiss marks one id as dismissed.
func (s *MemoryStore) Dismiss(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids[id] = true
	return nil
}

// Clear removes all dismissed ids.
func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = make(map[string]bool)
	return nil
}

// Snapshot returns the persisted representation of the current set, with ids
// sorted for stable output.
func (s *MemoryStore) Snapshot() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return EncodeDismissedIDs(ids)
}
