// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package detailcache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

// badgerKeyPrefix namespaces detail entries inside the badger keyspace.
const badgerKeyPrefix = "detail:"

// BadgerStore persists entries in an embedded BadgerDB.
type BadgerStore struct {
	db  *badger.DB
	ttl time.Duration
}

// OpenBadgerStore opens (or creates) a BadgerDB at dir. Entries are written
// with a badger TTL of ttl so stale keys are also reclaimed by compaction.
func OpenBadgerStore(dir string, ttl time.Duration) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %s: %w", dir, err)
	}
	return NewBadgerStore(db, ttl), nil
}

// NewBadgerStore wraps an already opened database.
func NewBadgerStore(db *badger.DB, ttl time.Duration) *BadgerStore {
	return &BadgerStore{db: db, ttl: ttl}
}

func badgerKey(id int64) []byte {
	return []byte(badgerKeyPrefix + strconv.FormatInt(id, 10))
}

// LoadAll implements Store. Values that fail to decode are skipped.
func (s *BadgerStore) LoadAll(_ context.Context) (map[int64]Entry, error) {
	out := make(map[int64]Entry)
	skipped := 0

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(badgerKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			id, err := strconv.ParseInt(strings.TrimPrefix(string(item.Key()), badgerKeyPrefix), 10, 64)
			if err != nil {
				skipped++
				continue
			}
			var entry Entry
			err = item.Value(func(val []byte) error {
				return json.Unmarshal(val, &entry)
			})
			if err != nil {
				skipped++
				continue
			}
			out[id] = entry
		}
		return nil
	})
	if err != nil {
		return map[int64]Entry{}, fmt.Errorf("iterate detail entries: %w", err)
	}
	if skipped > 0 {
		return out, fmt.Errorf("%w: %d undecodable badger entries skipped", ErrCacheCorrupt, skipped)
	}
	return out, nil
}

// Save implements Store.
func (s *BadgerStore) Save(_ context.Context, id int64, entry Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry(badgerKey(id), data)
		if s.ttl > 0 {
			e = e.WithTTL(s.ttl)
		}
		if err := txn.SetEntry(e); err != nil {
			return fmt.Errorf("set entry: %w", err)
		}
		return nil
	})
}

// Delete implements Store.
func (s *BadgerStore) Delete(_ context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return s.db.Update(func(txn *badger.Txn) error {
		for _, id := range ids {
			if err := txn.Delete(badgerKey(id)); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("delete entry %d: %w", id, err)
			}
		}
		return nil
	})
}

// Name implements Store.
func (s *BadgerStore) Name() string { return "badger" }

// Close implements Store.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}
