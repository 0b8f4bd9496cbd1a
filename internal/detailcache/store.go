// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package detailcache

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/gamescout/internal/catalog"
)

// ErrCacheCorrupt reports a persisted cache that could not be decoded.
// The cache treats it as empty; it is never fatal.
var ErrCacheCorrupt = errors.New("detail cache corrupt")

// Entry is one cached app detail and the time it was fetched.
type Entry struct {
	Data     catalog.ItemDetail `json:"data"`
	CachedAt time.Time          `json:"cached_at"`
}

// expired reports whether the entry is outside the validity window at now.
func (e Entry) expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.CachedAt) > ttl
}

// Store persists cache entries keyed by app id.
type Store interface {
	// LoadAll returns every persisted entry. A store that exists but cannot
	// be decoded returns an empty map and an error wrapping ErrCacheCorrupt.
	LoadAll(ctx context.Context) (map[int64]Entry, error)

	// Save persists one entry, replacing any previous value for id.
	Save(ctx context.Context, id int64, entry Entry) error

	// Delete removes entries. Unknown ids are ignored.
	Delete(ctx context.Context, ids []int64) error

	// Name identifies the backend in logs and metrics.
	Name() string

	Close() error
}

// MemoryStore is a Store that persists nothing.
type MemoryStore struct{}

// NewMemoryStore creates a non-persistent store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// LoadAll implements Store.
func (MemoryStore) LoadAll(context.Context) (map[int64]Entry, error) {
	return map[int64]Entry{}, nil
}

// Save implements Store.
func (MemoryStore) Save(context.Context, int64, Entry) error { return nil }

// Delete implements Store.
func (MemoryStore) Delete(context.Context, []int64) error { return nil }

// Name implements Store.
func (MemoryStore) Name() string { return "memory" }

// Close implements Store.
func (MemoryStore) Close() error { return nil }
