package store

import (
	"context"
	"sync"
)

type memorySessionStore struct {
	mu    sync.RWMutex
	token string
}

// NewMemorySessionStore returns a [SessionStore] that lives only as long as
// the process.
func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{}
}

func (m *memorySessionStore) LoadToken(_ context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.token == "" {
		return "", ErrLocalSessionNotFound
	}
	return m.token, nil
}

func (m *memorySessionStore) SaveToken(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = token
	return nil
}

func (m *memorySessionStore) DeleteToken(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = ""
	return nil
}
