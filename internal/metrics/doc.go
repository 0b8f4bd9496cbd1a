// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

/*
Package metrics provides Prometheus metrics collection for Gamescout.

Metrics are registered on the default registry through promauto and are
exposed at /metrics by the API router:

	curl http://localhost:5000/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
  - api_active_requests: In-flight requests (gauge)

Recommendation Metrics:
  - recommend_requests_total: Recommendation runs by outcome
  - recommend_duration_seconds: End-to-end recommendation latency
  - recommend_candidates_total: Candidate outcomes (included, owned, missing, not_base, no_match, filtered, duplicate)
  - recommend_response_cache_total: Response cache hits and misses

Steam Metrics:
  - steam_requests_total: Steam API requests by endpoint and result
  - steam_request_duration_seconds: Steam API latency by endpoint
  - steam_rate_limited_total: 429 responses by endpoint

Detail Cache Metrics:
  - detail_cache_lookups_total: Hits and misses
  - detail_cache_entries: Current entry count
  - detail_cache_evictions_total: Expired entries dropped
  - detail_cache_persist_errors_total: Failed write-through saves by backend

Circuit Breaker Metrics:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total: success, failure, rejected
  - circuit_breaker_state_transitions_total
*/
package metrics
