// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

/*
Package middleware provides HTTP middleware shared by the API router.

Components:

  - RequestID: reuses an upstream X-Request-ID or generates a UUID, and
    stores it in the request context for logging.Ctx
  - PrometheusMetrics: request counts, durations and in-flight gauge,
    labelled by the chi route pattern rather than the raw path
  - AccessLog: one zerolog line per request
  - PerformanceMonitor: rolling latency window with per-route percentiles,
    surfaced by the stats endpoint

Typical ordering inside a chi router:

	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)

All components are safe for concurrent use.
*/
package middleware
