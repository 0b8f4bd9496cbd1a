// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package detailcache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/gamescout/internal/catalog"
	"github.com/tomtom215/gamescout/internal/metrics"
)

// DefaultTTL is the validity window used when New is given ttl <= 0.
const DefaultTTL = 24 * time.Hour

// Cache is an in-memory map of app details backed by a Store.
type Cache struct {
	mu      sync.RWMutex
	entries map[int64]Entry

	store  Store
	ttl    time.Duration
	now    func() time.Time
	logger zerolog.Logger

	loaded atomic.Bool
}

// New creates a cache over store. Call Load before serving traffic to warm
// it from the persisted entries.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func New(store Store, ttl time.Duration, logger zerolog.Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if store == nil {
		store = NewMemoryStore()
	}
	return &Cache{
		entries: make(map[int64]Entry),
		store:   store,
		ttl:     ttl,
		now:     time.Now,
		logger:  logger.With().Str("component", "detailcache").Str("backend", store.Name()).Logger(),
	}
}

// Load replaces the in-memory contents with the persisted entries that are
// still inside the validity window. Expired entries are deleted from the
// store. A corrupt store is logged and treated as empty.
func (c *Cache) Load(ctx context.Context) error {
	persisted, err := c.store.LoadAll(ctx)
	if err != nil {
		if !errors.Is(err, ErrCacheCorrupt) {
			return fmt.Errorf("load detail cache: %w", err)
		}
		c.logger.Warn().Err(err).Msg("Detail cache is corrupt, continuing with readable entries")
	}

	now := c.now()
	fresh := make(map[int64]Entry, len(persisted))
	var stale []int64
	for id, entry := range persisted {
		if entry.expired(now, c.ttl) {
			stale = append(stale, id)
			continue
		}
		fresh[id] = entry
	}

	c.mu.Lock()
	c.entries = fresh
	c.mu.Unlock()
	c.loaded.Store(true)

	metrics.DetailCacheEntries.Set(float64(len(fresh)))
	if len(stale) > 0 {
		metrics.DetailCacheEvictions.Add(float64(len(stale)))
		if err := c.store.Delete(ctx, stale); err != nil {
			c.persistFailed(err, "Failed to delete expired entries")
		}
	}

	c.logger.Info().Int("entries", len(fresh)).Int("expired", len(stale)).Msg("Detail cache loaded")
	return nil
}

// Get returns the cached detail for id. Entries outside the validity window
// are reported as absent.
func (c *Cache) Get(id int64) (catalog.ItemDetail, bool) {
	c.mu.RLock()
	entry, ok := c.entries[id]
	c.mu.RUnlock()

	if !ok || entry.expired(c.now(), c.ttl) {
		metrics.RecordDetailCacheLookup(false)
		return catalog.ItemDetail{}, false
	}
	metrics.RecordDetailCacheLookup(true)
	return entry.Data, true
}

// Put stores detail for id stamped with the current time and writes it
// through to the store. The in-memory entry is kept even when the write
// fails; the returned error only reports lost durability.
func (c *Cache) Put(ctx context.Context, id int64, detail catalog.ItemDetail) error {
	entry := Entry{Data: detail, CachedAt: c.now().UTC()}

	c.mu.Lock()
	c.entries[id] = entry
	size := len(c.entries)
	c.mu.Unlock()

	metrics.DetailCacheEntries.Set(float64(size))

	if err := c.store.Save(ctx, id, entry); err != nil {
		c.persistFailed(err, "Failed to persist detail")
		return fmt.Errorf("persist detail %d: %w", id, err)
	}
	return nil
}

// Sweep drops expired entries from memory and the store and returns how
// many were removed.
func (c *Cache) Sweep(ctx context.Context) int {
	now := c.now()

	c.mu.Lock()
	var stale []int64
	for id, entry := range c.entries {
		if entry.expired(now, c.ttl) {
			stale = append(stale, id)
			delete(c.entries, id)
		}
	}
	size := len(c.entries)
	c.mu.Unlock()

	metrics.DetailCacheEntries.Set(float64(size))
	if len(stale) == 0 {
		return 0
	}

	metrics.DetailCacheEvictions.Add(float64(len(stale)))
	if err := c.store.Delete(ctx, stale); err != nil {
		c.persistFailed(err, "Failed to delete expired entries")
	}
	c.logger.Debug().Int("removed", len(stale)).Int("remaining", size).Msg("Detail cache swept")
	return len(stale)
}

// Len returns the number of entries held in memory, expired or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Loaded reports whether Load has completed at least once.
func (c *Cache) Loaded() bool {
	return c.loaded.Load()
}

// TTL returns the validity window.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Backend returns the store name.
func (c *Cache) Backend() string {
	return c.store.Name()
}

// Close releases the store.
func (c *Cache) Close() error {
	return c.store.Close()
}

func (c *Cache) persistFailed(err error, msg string) {
	metrics.DetailCachePersistErrors.WithLabelValues(c.store.Name()).Inc()
	c.logger.Warn().Err(err).Msg(msg)
}
