// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/gamescout/internal/middleware"
	"github.com/tomtom215/gamescout/internal/models"
	"github.com/tomtom215/gamescout/internal/recommend"
)

// Health and readiness states.
const (
	healthOK       = "healthy"
	healthReady    = "ready"
	healthNotReady = "not_ready"
	breakerOpen    = "open"
)

// Health handles GET /api/v1/health. It answers as long as the process
// can serve HTTP.
//
// @Summary Liveness check
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthResponse}
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, http.StatusOK, &models.HealthResponse{
		Status:  healthOK,
		Version: h.version,
		Uptime:  time.Since(h.startTime).Round(time.Second).String(),
	})
}

// HealthReady handles GET /api/v1/health/ready. The service is ready once
// the detail cache has been loaded from its store. Open breakers are
// reported but do not fail readiness; requests still answer with 502.
//
// @Summary Readiness check
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthResponse}
// @Failure 503 {object} models.APIResponse{data=models.HealthResponse} "Detail cache still loading"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	loaded := h.cache != nil && h.cache.Loaded()

	checks := map[string]string{"detail_cache": healthNotReady}
	if loaded {
		checks["detail_cache"] = healthReady
	}

	body := &models.HealthResponse{
		Status:  healthReady,
		Version: h.version,
		Uptime:  time.Since(h.startTime).Round(time.Second).String(),
		Checks:  checks,
	}
	if h.breakers != nil {
		body.Breakers = h.breakers.BreakerStates()
	}

	if !loaded {
		body.Status = healthNotReady
		respondJSON(w, http.StatusServiceUnavailable, &models.APIResponse{
			Status:   models.StatusError,
			Data:     body,
			Metadata: newMetadata(r),
			Error: &models.APIError{
				Code:    CodeNotReady,
				Message: "Detail cache is still loading",
			},
		})
		return
	}

	respondSuccess(w, r, http.StatusOK, body)
}

// CacheStats describes the detail cache in the stats payload.
type CacheStats struct {
	Backend    string `json:"backend"`
	Entries    int    `json:"entries"`
	TTLSeconds int64  `json:"ttl_seconds"`
	Loaded     bool   `json:"loaded"`
}

// StatsResponse is the payload of GET /api/v1/stats.
type StatsResponse struct {
	Engine      recommend.EngineStats      `json:"engine"`
	DetailCache *CacheStats                `json:"detail_cache,omitempty"`
	Breakers    map[string]string          `json:"circuit_breakers,omitempty"`
	OpenBreaker bool                       `json:"open_breaker"`
	Endpoints   []middleware.EndpointStats `json:"endpoints"`
}

// Stats handles GET /api/v1/stats.
//
// @Summary Engine, cache and latency statistics
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=api.StatsResponse}
// @Router /stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	out := StatsResponse{
		Engine:    h.engine.Stats(),
		Endpoints: h.perf.Stats(),
	}
	if h.cache != nil {
		out.DetailCache = &CacheStats{
			Backend:    h.cache.Backend(),
			Entries:    h.cache.Len(),
			TTLSeconds: int64(h.cache.TTL().Seconds()),
			Loaded:     h.cache.Loaded(),
		}
	}
	if h.breakers != nil {
		out.Breakers = h.breakers.BreakerStates()
		for _, state := range out.Breakers {
			if state == breakerOpen {
				out.OpenBreaker = true
			}
		}
	}

	respondSuccess(w, r, http.StatusOK, out)
}
