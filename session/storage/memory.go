package storage

import (
	"sync"

	"github.com/barberiapp/admin-cli/internal/errors"
)

var _ Backend = (*MemoryBackend)(nil)

// MemoryBackend keeps session entries in process memory. Used for tests
// and for ephemeral runs where nothing should outlive the process.
type MemoryBackend struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{entries: make(map[string]string)}
}

func (m *MemoryBackend) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.entries[key]
	if !ok {
		return "", errors.ErrNotFound
	}
	return value, nil
}

func (m *MemoryBackend) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

func (m *MemoryBackend) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}
