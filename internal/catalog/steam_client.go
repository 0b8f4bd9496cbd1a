// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/gamescout/internal/config"
	"github.com/tomtom215/gamescout/internal/metrics"
)

// maxErrorBodySize limits the amount of response body read for error reporting
const maxErrorBodySize = 64 * 1024

// maxResponseSize bounds successful payloads. Owned-games lists for large
// libraries are the biggest responses and stay well below this.
const maxResponseSize = 16 << 20

// Endpoint labels used for metrics and breaker names.
const (
	endpointVanity     = "resolve_vanity"
	endpointOwnedGames = "owned_games"
	endpointAppDetails = "appdetails"
)

// readBodyForError reads the response body for error reporting (max 64KB)
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

// SteamClient implements Source against the Steam Web API and store API.
//
//	client := catalog.NewSteamClient(&cfg.Steam, logger)
//	id, ok, err := client.ResolveIdentity(ctx, "gaben")
type SteamClient struct {
	apiBaseURL   string
	storeBaseURL string
	apiKey       string
	countryCode  string
	language     string

	client         *http.Client
	storeLimiter   *rate.Limiter
	maxRetries     int
	retryBaseDelay time.Duration

	webBreaker   *breaker
	storeBreaker *breaker
	identities   *expirable.LRU[string, string]

	logger zerolog.Logger
}

// NewSteamClient creates a Steam client from configuration.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewSteamClient(cfg *config.SteamConfig, logger zerolog.Logger) *SteamClient {
	logger = logger.With().Str("component", "catalog").Logger()

	cacheSize := cfg.IdentityCacheSize
	if cacheSize <= 0 {
		cacheSize = 1024
	}
	cacheTTL := cfg.IdentityCacheTTL
	if cacheTTL <= 0 {
		cacheTTL = 6 * time.Hour
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	return &SteamClient{
		apiBaseURL:     strings.TrimRight(cfg.APIBaseURL, "/"),
		storeBaseURL:   strings.TrimRight(cfg.StoreBaseURL, "/"),
		apiKey:         cfg.APIKey,
		countryCode:    cfg.CountryCode,
		language:       cfg.Language,
		client:         &http.Client{Timeout: cfg.Timeout},
		storeLimiter:   rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst),
		maxRetries:     cfg.MaxRetries,
		retryBaseDelay: time.Second,
		webBreaker:     newBreaker("steam-web-api", logger),
		storeBreaker:   newBreaker("steam-store-api", logger),
		identities:     expirable.NewLRU[string, string](cacheSize, nil, cacheTTL),
		logger:         logger,
	}
}

// ResolveIdentity maps a vanity profile name to a 64-bit Steam ID.
func (c *SteamClient) ResolveIdentity(ctx context.Context, name string) (string, bool, error) {
	key := strings.ToLower(name)
	if id, ok := c.identities.Get(key); ok {
		return id, true, nil
	}

	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("vanityurl", name)
	reqURL := c.apiBaseURL + "/ISteamUser/ResolveVanityURL/v1/?" + params.Encode()

	result, err := castResult[*vanityResponse](c.webBreaker.execute(func() (any, error) {
		var out vanityResponse
		if err := c.getJSON(ctx, endpointVanity, reqURL, &out); err != nil {
			return nil, err
		}
		return &out, nil
	}))
	if errors.Is(err, ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("resolve vanity %q: %w: %w", name, ErrSourceUnavailable, err)
	}

	// success=1 on match, 42 on no match.
	if result.Response.Success != 1 || result.Response.SteamID == "" {
		return "", false, nil
	}

	c.identities.Add(key, result.Response.SteamID)
	return result.Response.SteamID, true, nil
}

// ListEngagement returns owned apps with lifetime playtime. Free-to-play
// titles that have been played are included.
func (c *SteamClient) ListEngagement(ctx context.Context, userID string) ([]EngagementRecord, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("steamid", userID)
	params.Set("include_appinfo", "1")
	params.Set("include_played_free_games", "1")
	reqURL := c.apiBaseURL + "/IPlayerService/GetOwnedGames/v1/?" + params.Encode()

	result, err := castResult[*ownedGamesResponse](c.webBreaker.execute(func() (any, error) {
		var out ownedGamesResponse
		if err := c.getJSON(ctx, endpointOwnedGames, reqURL, &out); err != nil {
			return nil, err
		}
		return &out, nil
	}))
	if err != nil {
		return nil, fmt.Errorf("owned games for %s: %w: %w", userID, ErrSourceUnavailable, err)
	}

	if result.Response.Games == nil {
		return []EngagementRecord{}, nil
	}
	return result.Response.Games, nil
}

// FetchDetail returns the store record for one app. Every failure mode
// collapses to ok=false; the reason is logged at debug level.
func (c *SteamClient) FetchDetail(ctx context.Context, id int64) (ItemDetail, bool) {
	if err := c.storeLimiter.Wait(ctx); err != nil {
		return ItemDetail{}, false
	}

	idStr := strconv.FormatInt(id, 10)
	params := url.Values{}
	params.Set("appids", idStr)
	params.Set("cc", c.countryCode)
	params.Set("l", c.language)
	reqURL := c.storeBaseURL + "/api/appdetails?" + params.Encode()

	detail, err := castResult[ItemDetail](c.storeBreaker.execute(func() (any, error) {
		var envelope appDetailsEnvelope
		if err := c.getJSON(ctx, endpointAppDetails, reqURL, &envelope); err != nil {
			return nil, err
		}
		entry, ok := envelope[idStr]
		if !ok || !entry.Success || len(entry.Data) == 0 {
			return nil, ErrNotFound
		}
		var data steamAppData
		if err := json.Unmarshal(entry.Data, &data); err != nil {
			return nil, fmt.Errorf("decode app %d: %w", id, err)
		}
		return data.toItemDetail(id), nil
	}))
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			c.logger.Debug().Err(err).Int64("app_id", id).Msg("App details unavailable")
		}
		return ItemDetail{}, false
	}
	return detail, true
}

// getJSON performs a GET and decodes a JSON body into out.
// A 404 or an empty body maps to ErrNotFound.
func (c *SteamClient) getJSON(ctx context.Context, endpoint, reqURL string, out any) error {
	start := time.Now()

	resp, err := c.doRequestWithRateLimit(ctx, endpoint, reqURL)
	if err != nil {
		metrics.RecordSteamRequest(endpoint, "error", time.Since(start))
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		metrics.RecordSteamRequest(endpoint, "not_found", time.Since(start))
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		metrics.RecordSteamRequest(endpoint, "error", time.Since(start))
		body := readBodyForError(resp.Body)
		return fmt.Errorf("%s request failed with status %d: %s", endpoint, resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		metrics.RecordSteamRequest(endpoint, "error", time.Since(start))
		return fmt.Errorf("read %s response: %w", endpoint, err)
	}
	// The store answers "null" for unknown ids.
	if trimmed := strings.TrimSpace(string(body)); trimmed == "" || trimmed == "null" {
		metrics.RecordSteamRequest(endpoint, "not_found", time.Since(start))
		return ErrNotFound
	}
	if err := json.Unmarshal(body, out); err != nil {
		metrics.RecordSteamRequest(endpoint, "error", time.Since(start))
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}

	metrics.RecordSteamRequest(endpoint, "success", time.Since(start))
	return nil
}

// doRequestWithRateLimit performs an HTTP request with automatic 429 handling.
// Backoff doubles from retryBaseDelay unless Retry-After says otherwise.
func (c *SteamClient) doRequestWithRateLimit(ctx context.Context, endpoint, reqURL string) (*http.Response, error) {
	for attempt := 0; ; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("HTTP request failed: %w", err)
		}
		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}

		_ = resp.Body.Close()
		metrics.SteamRateLimited.WithLabelValues(endpoint).Inc()

		if attempt >= c.maxRetries {
			return nil, fmt.Errorf("rate limit exceeded after %d retries (HTTP 429)", c.maxRetries)
		}

		delay := c.retryBaseDelay * time.Duration(1<<uint(attempt))
		if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
			if seconds, err := strconv.Atoi(retryAfter); err == nil && seconds >= 0 {
				delay = time.Duration(seconds) * time.Second
			}
		}

		c.logger.Debug().Str("endpoint", endpoint).Dur("delay", delay).Int("attempt", attempt+1).Msg("Rate limited by Steam, backing off")

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// BreakerStates reports the state of each circuit breaker for health checks.
func (c *SteamClient) BreakerStates() map[string]string {
	return map[string]string{
		c.webBreaker.name:   c.webBreaker.State(),
		c.storeBreaker.name: c.storeBreaker.State(),
	}
}
