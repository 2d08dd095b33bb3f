// Package storage provides the durable key-value stores the to-do list
// persists its state into.
package storage

import (
	"sync"
)

// KeyValueStore is a string-keyed, string-valued store.
type KeyValueStore interface {
	// Get returns the value for key; ok is false if the key was never set.
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// memoryStore keeps values in a map. Nothing survives the process.
type memoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory KeyValueStore.
func NewMemoryStore() KeyValueStore {
	return &memoryStore{values: make(map[string]string)}
}

func (m *memoryStore) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
