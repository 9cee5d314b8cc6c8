package store

import (
	"context"
	"sync"
)

// Memory keeps blobs in a map. State is lost on exit; it backs tests and
// throwaway demo runs.
type Memory struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{blobs: make(map[string][]byte)}
}

// Get implements Store.
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, found := m.blobs[key]
	if !found {
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

// Set implements Store.
func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	in := make([]byte, len(value))
	copy(in, value)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = in
	return nil
}

// Close implements Store.
func (m *Memory) Close() error {
	return nil
}
