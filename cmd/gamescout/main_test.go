// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package main

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/gamescout/internal/catalog"
	"github.com/tomtom215/gamescout/internal/detailcache"
	"github.com/tomtom215/gamescout/internal/recommend"
)

// setTestEnv points configuration at a file cache under a temp dir and
// returns the cache path. Tests using it cannot run in parallel.
func setTestEnv(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game_cache.json")
	t.Setenv("STEAM_API_KEY", "test-key-1234")
	t.Setenv("CACHE_BACKEND", "file")
	t.Setenv("CACHE_PATH", path)
	t.Setenv("CACHE_TTL", "24h")
	t.Setenv("LOG_LEVEL", "error")
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--env-file", ""}, args...))
	err := cmd.ExecuteContext(t.Context())
	return stdout.String(), err
}

func seedFileStore(t *testing.T, path string, entries map[int64]time.Time) {
	t.Helper()
	store, err := detailcache.NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	for id, at := range entries {
		entry := detailcache.Entry{
			Data:     catalog.ItemDetail{ID: id, Name: "Game"},
			CachedAt: at,
		}
		if err := store.Save(t.Context(), id, entry); err != nil {
			t.Fatalf("Save(%d): %v", id, err)
		}
	}
}

func TestCacheStats(t *testing.T) {
	path := setTestEnv(t)
	now := time.Now()
	seedFileStore(t, path, map[int64]time.Time{
		10: now,
		20: now.Add(-time.Hour),
		30: now.Add(-48 * time.Hour),
	})

	out, err := execute(t, "cache", "stats")
	if err != nil {
		t.Fatalf("cache stats: %v", err)
	}

	var got cacheStats
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	if got.Backend != "file" {
		t.Errorf("Backend = %q, want file", got.Backend)
	}
	if got.Entries != 2 {
		t.Errorf("Entries = %d, want 2", got.Entries)
	}
	if got.TTL != "24h0m0s" {
		t.Errorf("TTL = %q, want 24h0m0s", got.TTL)
	}
}

func TestCacheSweep(t *testing.T) {
	path := setTestEnv(t)
	now := time.Now()
	seedFileStore(t, path, map[int64]time.Time{
		10: now,
		20: now.Add(-25 * time.Hour),
		30: now.Add(-48 * time.Hour),
	})

	out, err := execute(t, "cache", "sweep")
	if err != nil {
		t.Fatalf("cache sweep: %v", err)
	}
	var got sweepResult
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	if got.Removed != 2 || got.Remaining != 1 {
		t.Errorf("sweep = %+v, want removed=2 remaining=1", got)
	}

	// A second sweep finds nothing left to remove.
	out, err = execute(t, "cache", "sweep")
	if err != nil {
		t.Fatalf("second cache sweep: %v", err)
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	if got.Removed != 0 || got.Remaining != 1 {
		t.Errorf("second sweep = %+v, want removed=0 remaining=1", got)
	}
}

func TestMissingAPIKey(t *testing.T) {
	setTestEnv(t)
	t.Setenv("STEAM_API_KEY", "")

	_, err := execute(t, "cache", "stats")
	if err == nil || !strings.Contains(err.Error(), "STEAM_API_KEY") {
		t.Fatalf("err = %v, want STEAM_API_KEY validation error", err)
	}
}

// fakeSteam answers vanity lookups with no match and owned-games calls
// with an empty library.
func fakeSteam(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasPrefix(r.URL.Path, "/ISteamUser/ResolveVanityURL/"):
			_, _ = w.Write([]byte(`{"response":{"success":42,"message":"No match"}}`))
		case strings.HasPrefix(r.URL.Path, "/IPlayerService/GetOwnedGames/"):
			_, _ = w.Write([]byte(`{"response":{}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRecommendErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{
			name: "empty library",
			args: []string{"recommend", "76561197960287930"},
			want: recommend.ErrNoOwnedGames,
		},
		{
			name: "unknown vanity name",
			args: []string{"recommend", "nobody-here"},
			want: recommend.ErrIdentityNotFound,
		},
		{
			name: "rating out of range",
			args: []string{"recommend", "76561197960287930", "--min-rating", "150"},
			want: recommend.ErrInvalidRequest,
		},
		{
			name: "inverted price range",
			args: []string{"recommend", "76561197960287930", "--price-min", "30", "--price-max", "10"},
			want: recommend.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setTestEnv(t)
			srv := fakeSteam(t)
			t.Setenv("STEAM_API_BASE_URL", srv.URL)
			t.Setenv("STEAM_STORE_BASE_URL", srv.URL)
			t.Setenv("STEAM_MAX_RETRIES", "0")

			out, err := execute(t, tt.args...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if out != "" {
				t.Errorf("stdout = %q, want empty on error", out)
			}
		})
	}
}

func TestRecommendRequiresIdentity(t *testing.T) {
	setTestEnv(t)
	if _, err := execute(t, "recommend"); err == nil {
		t.Fatal("expected an argument error")
	}
}
