// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type fakeDetailCache struct {
	mu        sync.Mutex
	loaded    bool
	loadErr   error
	loads     int
	sweeps    atomic.Int32
	swept     int
	entries   int
	sweptOnce chan struct{}
}

func newFakeDetailCache() *fakeDetailCache {
	return &fakeDetailCache{sweptOnce: make(chan struct{}, 1), swept: 2, entries: 5}
}

func (c *fakeDetailCache) Load(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loads++
	if c.loadErr != nil {
		return c.loadErr
	}
	c.loaded = true
	return nil
}

func (c *fakeDetailCache) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

func (c *fakeDetailCache) Sweep(context.Context) int {
	c.sweeps.Add(1)
	select {
	case c.sweptOnce <- struct{}{}:
	default:
	}
	return c.swept
}

func (c *fakeDetailCache) Len() int { return c.entries }

func (c *fakeDetailCache) loadCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loads
}

type fakePurger struct{ calls atomic.Int32 }

func (p *fakePurger) PurgeExpired() int {
	p.calls.Add(1)
	return 1
}

func TestCacheMaintenanceService_LoadsThenSweeps(t *testing.T) {
	t.Parallel()

	cache := newFakeDetailCache()
	purger := &fakePurger{}
	svc := NewCacheMaintenanceService(cache, purger, CacheMaintenanceConfig{SweepInterval: 10 * time.Millisecond}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	select {
	case <-cache.sweptOnce:
	case <-time.After(2 * time.Second):
		t.Fatal("no sweep ran")
	}
	cancel()

	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}
	if !cache.Loaded() || cache.loadCount() != 1 {
		t.Errorf("loaded=%v loads=%d, want one load", cache.Loaded(), cache.loadCount())
	}
	if purger.calls.Load() < 1 {
		t.Error("response purge did not run with the sweep")
	}
}

func TestCacheMaintenanceService_SkipsReloadOnRestart(t *testing.T) {
	t.Parallel()

	cache := newFakeDetailCache()
	cache.loaded = true
	svc := NewCacheMaintenanceService(cache, nil, CacheMaintenanceConfig{SweepInterval: time.Hour}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := svc.Serve(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}
	if cache.loadCount() != 0 {
		t.Errorf("Load called %d times on an already loaded cache", cache.loadCount())
	}
}

func TestCacheMaintenanceService_LoadFailureIsReturned(t *testing.T) {
	t.Parallel()

	cache := newFakeDetailCache()
	cache.loadErr = errors.New("store unreachable")
	svc := NewCacheMaintenanceService(cache, nil, CacheMaintenanceConfig{}, zerolog.Nop())

	if err := svc.Serve(context.Background()); !errors.Is(err, cache.loadErr) {
		t.Errorf("Serve() = %v, want load error", err)
	}
}

func TestCacheMaintenanceService_SweepCounts(t *testing.T) {
	t.Parallel()

	cache := newFakeDetailCache()
	svc := NewCacheMaintenanceService(cache, &fakePurger{}, CacheMaintenanceConfig{}, zerolog.Nop())

	details, responses := svc.sweep(context.Background())
	if details != 2 || responses != 1 {
		t.Errorf("sweep() = %d, %d, want 2, 1", details, responses)
	}
	if svc.config.SweepInterval != time.Hour || svc.config.LoadTimeout != 2*time.Minute {
		t.Errorf("defaults not applied: %+v", svc.config)
	}
}
