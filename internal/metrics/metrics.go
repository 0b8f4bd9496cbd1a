// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Recommendation Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of recommendation runs by outcome",
		},
		[]string{"outcome"}, // success, identity_not_found, no_owned_games, no_engagement, error
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "End-to-end recommendation latency in seconds",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
	)

	RecommendCandidates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_candidates_total",
			Help: "Candidate evaluation outcomes",
		},
		[]string{"outcome"},
	)

	RecommendResponseCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_response_cache_total",
			Help: "Response cache lookups by result",
		},
		[]string{"result"}, // hit, miss
	)

	// Steam API Metrics
	SteamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "steam_requests_total",
			Help: "Total number of Steam API requests",
		},
		[]string{"endpoint", "result"}, // result: success, not_found, error
	)

	SteamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "steam_request_duration_seconds",
			Help:    "Steam API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	SteamRateLimited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "steam_rate_limited_total",
			Help: "Total number of 429 responses from Steam",
		},
		[]string{"endpoint"},
	)

	// Detail Cache Metrics
	DetailCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "detail_cache_lookups_total",
			Help: "Detail cache lookups by result",
		},
		[]string{"result"}, // hit, miss
	)

	DetailCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "detail_cache_entries",
			Help: "Current number of cached app detail records",
		},
	)

	DetailCacheEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "detail_cache_evictions_total",
			Help: "Total number of expired detail records dropped",
		},
	)

	DetailCachePersistErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "detail_cache_persist_errors_total",
			Help: "Total number of failed write-through saves",
		},
		[]string{"backend"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records the outcome and latency of one recommendation run
func RecordRecommendation(outcome string, duration time.Duration) {
	RecommendRequests.WithLabelValues(outcome).Inc()
	RecommendDuration.Observe(duration.Seconds())
}

// RecordCandidateOutcome counts one evaluated candidate
func RecordCandidateOutcome(outcome string) {
	RecommendCandidates.WithLabelValues(outcome).Inc()
}

// RecordResponseCache records a response cache hit or miss
func RecordResponseCache(hit bool) {
	if hit {
		RecommendResponseCache.WithLabelValues("hit").Inc()
		return
	}
	RecommendResponseCache.WithLabelValues("miss").Inc()
}

// RecordSteamRequest records one Steam API call
func RecordSteamRequest(endpoint, result string, duration time.Duration) {
	SteamRequests.WithLabelValues(endpoint, result).Inc()
	SteamRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordDetailCacheLookup records a detail cache hit or miss
func RecordDetailCacheLookup(hit bool) {
	if hit {
		DetailCacheLookups.WithLabelValues("hit").Inc()
		return
	}
	DetailCacheLookups.WithLabelValues("miss").Inc()
}
