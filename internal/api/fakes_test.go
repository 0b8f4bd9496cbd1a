// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/gamescout/internal/models"
	"github.com/tomtom215/gamescout/internal/recommend"
)

// fakeRecommender records the last request and returns a canned result.
type fakeRecommender struct {
	mu    sync.Mutex
	resp  *recommend.Response
	err   error
	got   recommend.Request
	calls int
}

func (f *fakeRecommender) Recommend(_ context.Context, req recommend.Request) (*recommend.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.got = req
	f.calls++
	return f.resp, f.err
}

func (f *fakeRecommender) Stats() recommend.EngineStats {
	f.mu.Lock()
	defer f.mu.Unlock()
	return recommend.EngineStats{Requests: int64(f.calls), Workers: 10, DedupPolicy: recommend.DedupFirstArrival}
}

func (f *fakeRecommender) lastRequest() recommend.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.got
}

type fakeCache struct {
	loaded  bool
	entries int
}

func (c *fakeCache) Loaded() bool       { return c.loaded }
func (c *fakeCache) Len() int           { return c.entries }
func (c *fakeCache) Backend() string    { return "memory" }
func (c *fakeCache) TTL() time.Duration { return 24 * time.Hour }

type fakeBreakers map[string]string

func (b fakeBreakers) BreakerStates() map[string]string { return b }

// sampleResponse is a small successful engine result.
func sampleResponse() *recommend.Response {
	return &recommend.Response{
		MeanUsageHours:    12.5,
		AboveAverageCount: 3,
		TotalPlayedCount:  9,
		TopTags:           []string{"Action", "RPG"},
		RegularRecommendations: []recommend.CandidateResult{
			{ID: 620, Name: "Portal 2", MatchScore: 8, Rating: 95},
		},
		SaleRecommendations: []recommend.CandidateResult{},
		Metadata: recommend.ResponseMetadata{
			SteamID:   "76561197960287930",
			SortBy:    recommend.SortRating,
			LatencyMS: 42,
		},
	}
}

// envelope mirrors models.APIResponse with a raw payload.
type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not a JSON envelope: %v\n%s", err, rec.Body.String())
	}
	return env
}

// newTestServer builds the full router around the given fakes.
func newTestServer(engine Recommender, cache CacheInspector, mwCfg *ChiMiddlewareConfig, opts ...HandlerOption) http.Handler {
	handler := NewHandler(engine, cache, opts...)
	return NewRouter(handler, NewChiMiddleware(mwCfg), zerolog.Nop()).SetupChi()
}

func jsonRequest(t *testing.T, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}
