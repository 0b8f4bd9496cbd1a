// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package detailcache

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// redisScanCount is the SCAN hint and MGET batch size used by LoadAll.
const redisScanCount = 200

// RedisStore persists entries in Redis so several instances share one cache.
// Keys expire on their own after ttl.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore creates a store on an existing client.
func NewRedisStore(client *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *RedisStore) key(id int64) string {
	return s.prefix + strconv.FormatInt(id, 10)
}

// LoadAll implements Store.
func (s *RedisStore) LoadAll(ctx context.Context) (map[int64]Entry, error) {
	out := make(map[int64]Entry)
	skipped := 0

	var keys []string
	iter := s.client.Scan(ctx, 0, s.prefix+"*", redisScanCount).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return out, fmt.Errorf("scan %s*: %w", s.prefix, err)
	}

	for start := 0; start < len(keys); start += redisScanCount {
		end := min(start+redisScanCount, len(keys))
		batch := keys[start:end]

		values, err := s.client.MGet(ctx, batch...).Result()
		if err != nil {
			return out, fmt.Errorf("mget detail entries: %w", err)
		}
		for i, v := range values {
			raw, ok := v.(string)
			if !ok {
				// Expired between SCAN and MGET.
				continue
			}
			id, err := strconv.ParseInt(strings.TrimPrefix(batch[i], s.prefix), 10, 64)
			if err != nil {
				skipped++
				continue
			}
			var entry Entry
			if err := json.Unmarshal([]byte(raw), &entry); err != nil {
				skipped++
				continue
			}
			out[id] = entry
		}
	}

	if skipped > 0 {
		return out, fmt.Errorf("%w: %d undecodable redis entries skipped", ErrCacheCorrupt, skipped)
	}
	return out, nil
}

// Save implements Store.
func (s *RedisStore) Save(ctx context.Context, id int64, entry Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}
	if err := s.client.Set(ctx, s.key(id), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", s.key(id), err)
	}
	return nil
}

// Delete implements Store.
func (s *RedisStore) Delete(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.key(id)
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("delete detail entries: %w", err)
	}
	return nil
}

// Name implements Store.
func (s *RedisStore) Name() string { return "redis" }

// Close implements Store.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
