package database

import (
	"context"
	"fmt"
	"sync"
)

type memoryEntry struct {
	user string
	text string
}

// MemoryStore is an in-memory todo.DataSource, useful for tests and for
// running without persistence. Items are kept in insertion order.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []memoryEntry
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// AddTodo stores one todo item for user.
func (m *MemoryStore) AddTodo(_ context.Context, user, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = append(m.entries, memoryEntry{user: user, text: text})
	return nil
}

// RetrieveTodos returns all of user's items in insertion order.
func (m *MemoryStore) RetrieveTodos(_ context.Context, user string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var items []string
	for _, entry := range m.entries {
		if entry.user == user {
			items = append(items, entry.text)
		}
	}
	return items, nil
}

// DeleteTodo removes the first stored item whose text matches exactly.
// Deleting text that is not stored is an error.
func (m *MemoryStore) DeleteTodo(_ context.Context, item string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, entry := range m.entries {
		if entry.text == item {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("todo item %q not found", item)
}
