// Package store is the persistence port for the storefront: a namespaced
// key-value blob store with typed load/save helpers on top. Collections are
// serialized as JSON, matching the shapes the original local-storage data used.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
)

// Storage keys for the four persisted collections.
const (
	KeyProducts = "legoLandProducts"
	KeyCart     = "legoLandCart"
	KeyUser     = "legoLandUser"
	KeyOrders   = "legoLandOrders"
)

// Store is the narrow persistence interface the storefront depends on.
// Get reports found=false for an absent key; that is not an error.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// Load returns the decoded value stored under key, or fallback when the key is
// absent, unreadable, or holds a value that does not parse. Corruption is
// logged and swallowed: a broken blob degrades to the fallback, never to an
// error the caller has to handle.
func Load[T any](ctx context.Context, s Store, key string, fallback T) T {
	raw, found, err := s.Get(ctx, key)
	if err != nil {
		log.Printf("store: reading %q: %v", key, err)
		return fallback
	}
	if !found {
		return fallback
	}
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		log.Printf("store: discarding corrupt value under %q: %v", key, err)
		return fallback
	}
	return value
}

// Save serializes value and persists it under key, replacing whatever was
// there before.
func Save[T any](ctx context.Context, s Store, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	if err := s.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("persist %q: %w", key, err)
	}
	return nil
}
