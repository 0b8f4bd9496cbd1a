// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/gamescout/internal/models"
)

func TestHealth(t *testing.T) {
	t.Parallel()

	srv := newTestServer(&fakeRecommender{}, &fakeCache{}, nil, WithVersion("1.2.3"))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body models.HealthResponse
	if err := json.Unmarshal(decodeEnvelope(t, rec).Data, &body); err != nil {
		t.Fatal(err)
	}
	if body.Status != healthOK || body.Version != "1.2.3" {
		t.Errorf("health = %+v", body)
	}
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("security headers missing on API route")
	}
}

func TestHealthReady(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		cache      CacheInspector
		wantStatus int
		wantState  string
	}{
		{"cache loaded", &fakeCache{loaded: true}, http.StatusOK, healthReady},
		{"cache loading", &fakeCache{loaded: false}, http.StatusServiceUnavailable, healthNotReady},
		{"no cache configured", nil, http.StatusServiceUnavailable, healthNotReady},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			breakers := fakeBreakers{"steam-web-api": "closed", "steam-store-api": "open"}
			srv := newTestServer(&fakeRecommender{}, tt.cache, nil, WithBreakers(breakers))
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health/ready", nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			env := decodeEnvelope(t, rec)
			var body models.HealthResponse
			if err := json.Unmarshal(env.Data, &body); err != nil {
				t.Fatal(err)
			}
			if body.Status != tt.wantState || body.Checks["detail_cache"] != tt.wantState {
				t.Errorf("ready body = %+v, want %s", body, tt.wantState)
			}
			// Open breakers never fail readiness on their own.
			if body.Breakers["steam-store-api"] != "open" {
				t.Errorf("breakers = %v", body.Breakers)
			}
			if tt.wantStatus != http.StatusOK && (env.Error == nil || env.Error.Code != CodeNotReady) {
				t.Errorf("error = %+v, want %s", env.Error, CodeNotReady)
			}
		})
	}
}

func TestStats(t *testing.T) {
	t.Parallel()

	engine := &fakeRecommender{resp: sampleResponse()}
	srv := newTestServer(engine, &fakeCache{loaded: true, entries: 17}, nil,
		WithBreakers(fakeBreakers{"steam-store-api": "open"}))

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, jsonRequest(t, `{"steam_id":"gaben"}`))
	if rec.Code != http.StatusOK {
		t.Fatalf("recommend status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("stats status = %d", rec.Code)
	}

	var stats StatsResponse
	if err := json.Unmarshal(decodeEnvelope(t, rec).Data, &stats); err != nil {
		t.Fatal(err)
	}
	if stats.Engine.Requests != 1 {
		t.Errorf("engine.requests = %d, want 1", stats.Engine.Requests)
	}
	if stats.DetailCache == nil || stats.DetailCache.Entries != 17 || stats.DetailCache.TTLSeconds != 86400 {
		t.Errorf("detail_cache = %+v", stats.DetailCache)
	}
	if !stats.OpenBreaker {
		t.Error("open_breaker should be true")
	}

	found := false
	for _, e := range stats.Endpoints {
		if e.Endpoint == "POST /api/v1/recommendations" && e.RequestCount == 1 {
			found = true
		}
	}
	if !found {
		t.Errorf("endpoints = %+v, want POST /api/v1/recommendations recorded", stats.Endpoints)
	}
}
