// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package detailcache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tomtom215/gamescout/internal/config"
)

// Backend names accepted by OpenStore.
const (
	BackendFile   = "file"
	BackendBadger = "badger"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// redisPingTimeout bounds the connectivity check when opening a redis store.
const redisPingTimeout = 5 * time.Second

// OpenStore builds the Store selected by cfg.Backend. The redis backend is
// pinged once so a wrong address fails at startup rather than on first use.
func OpenStore(ctx context.Context, cfg *config.CacheConfig, rcfg *config.RedisConfig) (Store, error) {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	switch cfg.Backend {
	case BackendFile, "":
		return NewFileStore(cfg.Path)

	case BackendBadger:
		return OpenBadgerStore(cfg.Path, ttl)

	case BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     rcfg.Addr,
			Password: rcfg.Password,
			DB:       rcfg.DB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("connect to redis at %s: %w", rcfg.Addr, err)
		}
		return NewRedisStore(client, rcfg.KeyPrefix, ttl), nil

	case BackendMemory:
		return NewMemoryStore(), nil

	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}
