// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package detailcache

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/tomtom215/gamescout/internal/config"
)

func TestOpenStore(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)

	tests := []struct {
		name     string
		cache    config.CacheConfig
		redis    config.RedisConfig
		wantName string
		wantErr  bool
	}{
		{"file", config.CacheConfig{Backend: BackendFile, Path: "cache.json"}, config.RedisConfig{}, "file", false},
		{"empty backend means file", config.CacheConfig{Path: "cache.json"}, config.RedisConfig{}, "file", false},
		{"badger", config.CacheConfig{Backend: BackendBadger, Path: "badger", TTL: time.Hour}, config.RedisConfig{}, "badger", false},
		{"redis", config.CacheConfig{Backend: BackendRedis}, config.RedisConfig{Addr: mr.Addr(), KeyPrefix: "t:"}, "redis", false},
		{"redis unreachable", config.CacheConfig{Backend: BackendRedis}, config.RedisConfig{Addr: "127.0.0.1:1"}, "", true},
		{"memory", config.CacheConfig{Backend: BackendMemory}, config.RedisConfig{}, "memory", false},
		{"unknown", config.CacheConfig{Backend: "sqlite"}, config.RedisConfig{}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cacheCfg := tt.cache
			if cacheCfg.Path != "" {
				cacheCfg.Path = filepath.Join(t.TempDir(), cacheCfg.Path)
			}

			store, err := OpenStore(context.Background(), &cacheCfg, &tt.redis)
			if tt.wantErr {
				if err == nil {
					_ = store.Close()
					t.Fatal("OpenStore() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("OpenStore() error = %v", err)
			}
			t.Cleanup(func() { _ = store.Close() })

			if store.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", store.Name(), tt.wantName)
			}
			exerciseStore(t, store)
		})
	}
}
