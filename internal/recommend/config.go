// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package recommend

import (
	"errors"
	"fmt"
	"slices"
	"time"

	appconfig "github.com/tomtom215/gamescout/internal/config"
)

// Config holds engine settings.
type Config struct {
	// Workers bounds concurrent candidate evaluations.
	Workers int `json:"workers"`

	DedupPolicy DedupPolicy `json:"dedup_policy"`

	// Candidates is the reference catalog scored for every request.
	Candidates []int64 `json:"candidates"`

	// ResponseCacheTTL is how long a full response is reused. Zero disables
	// response caching.
	ResponseCacheTTL time.Duration `json:"response_cache_ttl"`

	// RequestTimeout bounds one uncached recommendation run.
	RequestTimeout time.Duration `json:"request_timeout"`
}

// DefaultConfig returns production defaults.
func DefaultConfig() *Config {
	return &Config{
		Workers:          DefaultFetchPool,
		DedupPolicy:      DedupFirstArrival,
		Candidates:       DefaultCandidates(),
		ResponseCacheTTL: 10 * time.Minute,
		RequestTimeout:   2 * time.Minute,
	}
}

// ConfigFrom maps application configuration onto engine settings. An empty
// candidate list keeps the built-in one.
func ConfigFrom(rc *appconfig.RecommendConfig) (*Config, error) {
	policy, err := ParseDedupPolicy(rc.DedupPolicy)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	cfg.Workers = rc.Workers
	cfg.DedupPolicy = policy
	cfg.ResponseCacheTTL = rc.ResponseCacheTTL
	cfg.RequestTimeout = rc.RequestTimeout
	if len(rc.Candidates) > 0 {
		cfg.Candidates = slices.Clone(rc.Candidates)
	}
	return cfg, cfg.Validate()
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if _, err := ParseDedupPolicy(string(c.DedupPolicy)); err != nil {
		return err
	}
	if len(c.Candidates) == 0 {
		return errors.New("candidate list is empty")
	}
	if c.ResponseCacheTTL < 0 {
		return errors.New("response cache TTL must not be negative")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("request timeout must be positive")
	}
	return nil
}
