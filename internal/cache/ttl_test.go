// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package cache

import (
	"sync"
	"testing"
	"time"
)

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newTestTTL(t *testing.T, ttl time.Duration) (*TTL[string], *clock) {
	t.Helper()
	clk := &clock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewTTLWithCleanup[string](ttl, 0)
	c.now = clk.now
	t.Cleanup(c.Close)
	return c, clk
}

func TestTTL_GetSet(t *testing.T) {
	t.Parallel()

	c, _ := newTestTTL(t, time.Minute)
	if _, ok := c.Get("missing"); ok {
		t.Error("Get on empty cache returned ok")
	}

	c.Set("k", "v")
	if got, ok := c.Get("k"); !ok || got != "v" {
		t.Errorf("Get = %q, %v; want v, true", got, ok)
	}

	s := c.Stats()
	if s.Hits != 1 || s.Misses != 1 || s.Keys != 1 {
		t.Errorf("Stats = %+v, want 1 hit, 1 miss, 1 key", s)
	}
	if s.HitRate() != 50 {
		t.Errorf("HitRate = %v, want 50", s.HitRate())
	}
}

func TestTTL_Expiry(t *testing.T) {
	t.Parallel()

	c, clk := newTestTTL(t, 10*time.Minute)
	c.Set("short", "a")
	c.SetWithTTL("long", "b", time.Hour)

	clk.advance(11 * time.Minute)
	if _, ok := c.Get("short"); ok {
		t.Error("expired entry returned")
	}
	if _, ok := c.Get("long"); !ok {
		t.Error("custom TTL entry expired early")
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1 after lazy eviction", c.Len())
	}
}

func TestTTL_Cleanup(t *testing.T) {
	t.Parallel()

	c, clk := newTestTTL(t, time.Minute)
	c.Set("a", "1")
	c.Set("b", "2")
	clk.advance(30 * time.Second)
	c.Set("c", "3")
	clk.advance(45 * time.Second)

	if removed := c.Cleanup(); removed != 2 {
		t.Errorf("Cleanup removed %d, want 2", removed)
	}
	if c.Stats().Evictions != 2 {
		t.Errorf("Evictions = %d, want 2", c.Stats().Evictions)
	}
}

func TestTTL_DeleteAndClear(t *testing.T) {
	t.Parallel()

	c, _ := newTestTTL(t, time.Minute)
	c.Set("a", "1")
	c.Set("b", "2")
	c.Delete("a")
	c.Delete("not-there")
	if c.Len() != 1 {
		t.Errorf("Len after Delete = %d, want 1", c.Len())
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", c.Len())
	}
	if c.Stats().Evictions != 2 {
		t.Errorf("Evictions = %d, want 2", c.Stats().Evictions)
	}
}

func TestTTL_CloseIdempotent(t *testing.T) {
	t.Parallel()

	c := NewTTLWithCleanup[int](time.Minute, time.Millisecond)
	c.Close()
	c.Close()
}

func TestGenerateKey(t *testing.T) {
	t.Parallel()

	type params struct {
		Identity string
		Sort     string
	}
	a := GenerateKey("rec", params{"gaben", "price"})
	b := GenerateKey("rec", params{"gaben", "price"})
	c := GenerateKey("rec", params{"gaben", "match"})

	if a != b {
		t.Errorf("equal params produced different keys: %s vs %s", a, b)
	}
	if a == c {
		t.Error("different params produced the same key")
	}
	if len(a) != len("rec:")+32 {
		t.Errorf("key %q has unexpected length", a)
	}
}
