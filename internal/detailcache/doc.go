// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

/*
Package detailcache memoizes Steam app detail records with a bounded age.

The cache never fetches on its own. Callers look up an app with Get, fetch
it from the catalog on a miss, and hand the result back with Put. Put
stamps the entry with the current time and writes it through to the
backing Store before returning, so a restart keeps every warm entry.

# Lifecycle

	store, _ := detailcache.NewFileStore("data/game_cache.json")
	cache := detailcache.New(store, 24*time.Hour, logger)
	if err := cache.Load(ctx); err != nil { ... }  // sweeps expired entries
	defer cache.Close()

Entries older than the validity window are treated as absent by Get and
are physically dropped by Load and Sweep.

# Stores

  - FileStore: one JSON document, rewritten atomically on every save.
    A missing, empty or corrupt file loads as an empty cache.
  - BadgerStore: embedded dgraph-io/badger key-value store.
  - RedisStore: shared cache for multi-instance deployments.
  - MemoryStore: no persistence, for tests and one-shot CLI runs.

# Thread Safety

Cache is safe for concurrent use. Reads take a shared lock; Put and Sweep
take the exclusive lock. Last write wins per app id.
*/
package detailcache
