// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateSteam(); err != nil {
		return err
	}

	if err := c.validateCache(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateRateLimits(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateSteam validates Steam API access settings
func (c *Config) validateSteam() error {
	if c.Steam.APIKey == "" {
		return fmt.Errorf("STEAM_API_KEY is required")
	}
	if containsPlaceholder(c.Steam.APIKey) {
		return fmt.Errorf("STEAM_API_KEY contains a placeholder value")
	}
	for name, raw := range map[string]string{
		"STEAM_API_BASE_URL":   c.Steam.APIBaseURL,
		"STEAM_STORE_BASE_URL": c.Steam.StoreBaseURL,
	} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s must be an absolute URL, got %q", name, raw)
		}
	}
	if c.Steam.RequestsPerSecond <= 0 {
		return fmt.Errorf("STEAM_REQUESTS_PER_SECOND must be positive")
	}
	if c.Steam.Burst < 1 {
		return fmt.Errorf("STEAM_BURST must be at least 1")
	}
	if c.Steam.Timeout <= 0 {
		return fmt.Errorf("STEAM_TIMEOUT must be positive")
	}
	if c.Steam.MaxRetries < 0 {
		return fmt.Errorf("STEAM_MAX_RETRIES must not be negative")
	}
	return nil
}

// validCacheBackends defines the allowed detail cache backends
var validCacheBackends = map[string]bool{
	"file":   true,
	"badger": true,
	"redis":  true,
	"memory": true,
}

// validateCache validates detail cache settings
func (c *Config) validateCache() error {
	if !validCacheBackends[c.Cache.Backend] {
		return fmt.Errorf("CACHE_BACKEND must be one of: file, badger, redis, memory")
	}
	if (c.Cache.Backend == "file" || c.Cache.Backend == "badger") && c.Cache.Path == "" {
		return fmt.Errorf("CACHE_PATH is required for the %s backend", c.Cache.Backend)
	}
	if c.Cache.Backend == "redis" && c.Redis.Addr == "" {
		return fmt.Errorf("REDIS_ADDR is required for the redis backend")
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}
	if c.Cache.SweepInterval < 0 {
		return fmt.Errorf("CACHE_SWEEP_INTERVAL must not be negative")
	}
	return nil
}

// Worker bounds for the fan-out evaluator
const (
	minWorkers = 1
	maxWorkers = 64
)

// validDedupPolicies defines the allowed dedup policies
var validDedupPolicies = map[string]bool{
	"first_arrival": true,
	"deterministic": true,
	"highest_score": true,
}

// validateRecommend validates recommendation engine settings
func (c *Config) validateRecommend() error {
	if c.Recommend.Workers < minWorkers || c.Recommend.Workers > maxWorkers {
		return fmt.Errorf("RECOMMEND_WORKERS must be between %d and %d", minWorkers, maxWorkers)
	}
	if !validDedupPolicies[c.Recommend.DedupPolicy] {
		return fmt.Errorf("RECOMMEND_DEDUP_POLICY must be one of: first_arrival, deterministic, highest_score")
	}
	for _, id := range c.Recommend.Candidates {
		if id <= 0 {
			return fmt.Errorf("RECOMMEND_CANDIDATES contains invalid app id %d", id)
		}
	}
	if c.Recommend.ResponseCacheTTL < 0 {
		return fmt.Errorf("RECOMMEND_RESPONSE_CACHE_TTL must not be negative")
	}
	if c.Recommend.RequestTimeout <= 0 {
		return fmt.Errorf("RECOMMEND_REQUEST_TIMEOUT must be positive")
	}
	return nil
}

// validateServer validates HTTP server settings
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// placeholderPatterns are values people paste from example configs and forget to replace.
var placeholderPatterns = []string{
	"REPLACE",
	"CHANGEME",
	"CHANGE_ME",
	"YOUR_API_KEY",
	"YOUR_KEY",
	"PLACEHOLDER",
}

// containsPlaceholder checks if a value contains common placeholder patterns.
func containsPlaceholder(value string) bool {
	upperValue := strings.ToUpper(value)
	for _, pattern := range placeholderPatterns {
		if strings.Contains(upperValue, pattern) {
			return true
		}
	}
	return false
}
