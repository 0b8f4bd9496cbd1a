// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package recommend

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/gamescout/internal/cache"
	"github.com/tomtom215/gamescout/internal/catalog"
	"github.com/tomtom215/gamescout/internal/logging"
	"github.com/tomtom215/gamescout/internal/metrics"
)

// Engine answers recommendation requests end to end.
// It is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	source    catalog.Source
	extractor *PreferenceExtractor
	evaluator *Evaluator

	// responses is nil when response caching is disabled.
	responses *cache.TTL[*Response]

	requestCount atomic.Int64
	cacheHits    atomic.Int64
	cacheMisses  atomic.Int64
	errorCount   atomic.Int64
}

// EngineStats is a snapshot of engine counters.
type EngineStats struct {
	Requests      int64       `json:"requests"`
	CacheHits     int64       `json:"cache_hits"`
	CacheMisses   int64       `json:"cache_misses"`
	Errors        int64       `json:"errors"`
	Candidates    int         `json:"candidates"`
	Workers       int         `json:"workers"`
	DedupPolicy   DedupPolicy `json:"dedup_policy"`
	ResponseCache cache.Stats `json:"response_cache"`
}

// NewEngine wires an engine. details is the cache-or-source lookup shared by
// extraction and scoring; classifier may be nil for the default.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(source catalog.Source, details DetailSource, classifier BaseProductClassifier, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if source == nil || details == nil {
		return nil, errors.New("source and detail lookup are required")
	}

	logger = logger.With().Str("component", "recommend").Logger()
	e := &Engine{
		config:    cfg,
		logger:    logger,
		source:    source,
		extractor: NewPreferenceExtractor(details, cfg.Workers),
		evaluator: NewEvaluator(NewScorer(details, classifier), cfg.Workers, cfg.DedupPolicy, logger),
	}
	if cfg.ResponseCacheTTL > 0 {
		e.responses = cache.NewTTL[*Response](cfg.ResponseCacheTTL)
	}
	return e, nil
}

// Recommend runs the full pipeline for req. Errors are ErrInvalidRequest,
// ErrIdentityNotFound, ErrNoOwnedGames, ErrNoEngagementData, a wrapped
// catalog.ErrSourceUnavailable, or the context error.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	req = req.normalize()
	if err := req.Validate(); err != nil {
		e.fail("invalid", start)
		return nil, err
	}

	lc := e.logger.With()
	if id := logging.RequestIDFromContext(ctx); id != "" {
		lc = lc.Str("request_id", id)
	}
	logger := lc.
		Str("identity", req.Identity).
		Str("sort_by", string(req.SortBy)).
		Logger()

	key := cache.GenerateKey("recommend", req)
	if resp, ok := e.cached(key); ok {
		resp.Metadata.LatencyMS = time.Since(start).Milliseconds()
		logger.Debug().Msg("Response cache hit")
		metrics.RecordRecommendation("cache_hit", time.Since(start))
		return resp, nil
	}

	runCtx, cancel := context.WithTimeout(ctx, e.config.RequestTimeout)
	defer cancel()

	resp, err := e.run(runCtx, req, logger)
	if err != nil {
		e.fail(outcomeLabel(err), start)
		return nil, err
	}

	resp.Metadata.LatencyMS = time.Since(start).Milliseconds()
	resp.Metadata.GeneratedAt = time.Now().UTC()
	if e.responses != nil {
		e.responses.Set(key, resp.clone())
	}

	logger.Info().
		Str("steam_id", resp.Metadata.SteamID).
		Int("regular", len(resp.RegularRecommendations)).
		Int("sale", len(resp.SaleRecommendations)).
		Int("duplicates", resp.Metadata.Duplicates).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("Recommendations generated")
	metrics.RecordRecommendation("success", time.Since(start))
	return resp, nil
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) run(ctx context.Context, req Request, logger zerolog.Logger) (*Response, error) {
	steamID, err := e.resolve(ctx, req.Identity)
	if err != nil {
		return nil, err
	}

	history, err := e.source.ListEngagement(ctx, steamID)
	if err != nil {
		return nil, fmt.Errorf("list owned games: %w", err)
	}

	signals, stats, err := e.extractor.Extract(ctx, history)
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Int("owned", len(history)).
		Int("played", stats.TotalPlayedCount).
		Int("above_average", stats.AboveAverageCount).
		Strs("top_tags", signals.TopTags).
		Msg("Preferences extracted")

	owned := make([]int64, len(history))
	for i, r := range history {
		owned[i] = r.ItemID
	}

	results, evalStats, err := e.evaluator.Evaluate(ctx, e.config.Candidates, NewScoreInput(&req, owned, signals))
	if err != nil {
		return nil, err
	}

	resp := Assemble(results, req.SortBy, signals, stats)
	resp.Metadata = ResponseMetadata{
		SteamID:             steamID,
		SortBy:              req.SortBy,
		CandidatesEvaluated: evalStats.Evaluated,
		Duplicates:          evalStats.Duplicates,
	}
	return resp, nil
}

// resolve maps a raw identity to a Steam ID.
func (e *Engine) resolve(ctx context.Context, raw string) (string, error) {
	ident, ok := catalog.ParseIdentity(raw)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrIdentityNotFound, raw)
	}
	if ident.IsID {
		return ident.Value, nil
	}

	id, found, err := e.source.ResolveIdentity(ctx, ident.Value)
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf("%w: %q", ErrIdentityNotFound, ident.Value)
	}
	return id, nil
}

func (e *Engine) cached(key string) (*Response, bool) {
	if e.responses == nil {
		return nil, false
	}
	resp, ok := e.responses.Get(key)
	metrics.RecordResponseCache(ok)
	if !ok {
		e.cacheMisses.Add(1)
		return nil, false
	}
	e.cacheHits.Add(1)
	out := resp.clone()
	out.Metadata.CacheHit = true
	return out, true
}

func (e *Engine) fail(outcome string, start time.Time) {
	e.errorCount.Add(1)
	metrics.RecordRecommendation(outcome, time.Since(start))
}

// outcomeLabel maps an error to a bounded metrics label.
func outcomeLabel(err error) string {
	switch {
	case errors.Is(err, ErrIdentityNotFound):
		return "identity_not_found"
	case errors.Is(err, ErrNoOwnedGames):
		return "no_owned_games"
	case errors.Is(err, ErrNoEngagementData):
		return "no_engagement"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	case errors.Is(err, catalog.ErrSourceUnavailable):
		return "upstream_error"
	default:
		return "error"
	}
}

// Stats returns a snapshot of engine counters.
func (e *Engine) Stats() EngineStats {
	s := EngineStats{
		Requests:    e.requestCount.Load(),
		CacheHits:   e.cacheHits.Load(),
		CacheMisses: e.cacheMisses.Load(),
		Errors:      e.errorCount.Load(),
		Candidates:  len(e.config.Candidates),
		Workers:     e.config.Workers,
		DedupPolicy: e.config.DedupPolicy,
	}
	if e.responses != nil {
		s.ResponseCache = e.responses.Stats()
	}
	return s
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() Config {
	c := *e.config
	c.Candidates = slices.Clone(e.config.Candidates)
	return c
}

// PurgeExpired drops expired cached responses and returns how many.
func (e *Engine) PurgeExpired() int {
	if e.responses == nil {
		return 0
	}
	return e.responses.Cleanup()
}

// ClearResponses drops every cached response.
func (e *Engine) ClearResponses() {
	if e.responses != nil {
		e.responses.Clear()
	}
}

// Close stops the response cache janitor.
func (e *Engine) Close() {
	if e.responses != nil {
		e.responses.Close()
	}
}
