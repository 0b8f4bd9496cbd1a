// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package api

import (
	"context"
	"time"

	"github.com/tomtom215/gamescout/internal/middleware"
	"github.com/tomtom215/gamescout/internal/recommend"
)

// Recommender is the engine surface the handlers need.
type Recommender interface {
	Recommend(ctx context.Context, req recommend.Request) (*recommend.Response, error)
	Stats() recommend.EngineStats
}

// CacheInspector reports detail cache state for readiness and stats.
type CacheInspector interface {
	Loaded() bool
	Len() int
	Backend() string
	TTL() time.Duration
}

// BreakerReporter exposes upstream circuit breaker states.
type BreakerReporter interface {
	BreakerStates() map[string]string
}

// Handler holds the dependencies of every HTTP handler.
type Handler struct {
	engine    Recommender
	cache     CacheInspector
	breakers  BreakerReporter
	perf      *middleware.PerformanceMonitor
	version   string
	startTime time.Time
}

// HandlerOption configures optional Handler dependencies.
type HandlerOption func(*Handler)

// WithBreakers includes circuit breaker states in health and stats output.
func WithBreakers(b BreakerReporter) HandlerOption {
	return func(h *Handler) { h.breakers = b }
}

// WithVersion sets the version reported by the health endpoint.
func WithVersion(v string) HandlerOption {
	return func(h *Handler) { h.version = v }
}

// WithPerformanceMonitor replaces the default latency monitor.
func WithPerformanceMonitor(pm *middleware.PerformanceMonitor) HandlerOption {
	return func(h *Handler) { h.perf = pm }
}

// NewHandler creates the handler set.
func NewHandler(engine Recommender, cache CacheInspector, opts ...HandlerOption) *Handler {
	h := &Handler{
		engine:    engine,
		cache:     cache,
		perf:      middleware.NewPerformanceMonitor(middleware.DefaultLatencyWindow),
		startTime: time.Now(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}
