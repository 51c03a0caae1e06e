// Package memory implements the storage.Store interface with an in-process
// map. It is used by tests and by ephemeral catalogs that don't need
// persistence across runs.
package memory

import (
	"maps"
	"sync"

	"github.com/iarchive/iarchive/pkg/storage"
)

// Store is a concurrency-safe in-memory key-value store.
type Store struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// Compile-time interface check.
var _ storage.Store = (*Store)(nil)

// New creates an empty in-memory store.
func New() *Store {
	return &Store{values: make(map[string][]byte)}
}

// Load returns the stored bytes for key and whether the key exists.
func (s *Store) Load(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, true, nil
}

// Save overwrites the value for key.
func (s *Store) Save(key string, data []byte) error {
	stored := make([]byte, len(data))
	copy(stored, data)

	s.mu.Lock()
	s.values[key] = stored
	s.mu.Unlock()
	return nil
}

// Delete removes the value for key.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	delete(s.values, key)
	s.mu.Unlock()
	return nil
}

// Keys returns the set of keys currently stored.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.values))
	for k := range maps.Keys(s.values) {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of stored keys.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}
