// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

// Package config loads Gamescout configuration from defaults, an optional
// YAML file and environment variables, in that order of precedence.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml) or CONFIG_PATH
//  3. Environment Variables: Override any setting via environment variables
//
// Only STEAM_API_KEY is required. Everything else has a working default:
// a JSON file detail cache, ten fan-out workers and the built-in candidate
// catalog.
package config

import (
	"time"
)

// Config holds all application configuration.
type Config struct {
	Steam     SteamConfig     `koanf:"steam"`
	Cache     CacheConfig     `koanf:"cache"`
	Redis     RedisConfig     `koanf:"redis"`
	Recommend RecommendConfig `koanf:"recommend"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// SteamConfig configures access to the Steam Web API and the Steam store API.
type SteamConfig struct {
	// APIKey is the Steam Web API key used for vanity resolution and owned games.
	// Required.
	APIKey string `koanf:"api_key"`

	// APIBaseURL is the Steam Web API root.
	// Default: https://api.steampowered.com
	APIBaseURL string `koanf:"api_base_url"`

	// StoreBaseURL is the Steam store API root used for app details.
	// Default: https://store.steampowered.com
	StoreBaseURL string `koanf:"store_base_url"`

	// CountryCode and Language are passed to appdetails (prices are per-country).
	CountryCode string `koanf:"country_code"`
	Language    string `koanf:"language"`

	// RequestsPerSecond limits store API calls. The store endpoint throttles
	// aggressively (roughly 200 requests per 5 minutes per IP).
	// Default: 5
	RequestsPerSecond float64 `koanf:"requests_per_second"`

	// Burst is the limiter bucket size.
	// Default: 10
	Burst int `koanf:"burst"`

	// Timeout is the per-request HTTP timeout.
	// Default: 10s
	Timeout time.Duration `koanf:"timeout"`

	// MaxRetries is how many times a 429 response is retried with backoff.
	// Default: 3
	MaxRetries int `koanf:"max_retries"`

	// IdentityCacheSize and IdentityCacheTTL bound the vanity-name memo.
	IdentityCacheSize int           `koanf:"identity_cache_size"`
	IdentityCacheTTL  time.Duration `koanf:"identity_cache_ttl"`
}

// CacheConfig configures the persistent app detail cache.
type CacheConfig struct {
	// Backend selects the store: file, badger, redis or memory.
	// Default: file
	Backend string `koanf:"backend"`

	// Path is the JSON file (file backend) or directory (badger backend).
	// Default: data/game_cache.json
	Path string `koanf:"path"`

	// TTL is the validity window of a cached detail record.
	// Default: 24h
	TTL time.Duration `koanf:"ttl"`

	// SweepInterval is how often expired entries are purged while running.
	// Default: 1h
	SweepInterval time.Duration `koanf:"sweep_interval"`
}

// RedisConfig configures the redis cache backend.
type RedisConfig struct {
	Addr      string `koanf:"addr"`
	Password  string `koanf:"password"`
	DB        int    `koanf:"db"`
	KeyPrefix string `koanf:"key_prefix"`
}

// RecommendConfig configures the recommendation engine.
type RecommendConfig struct {
	// Workers is the fan-out concurrency when evaluating candidates.
	// Default: 10
	Workers int `koanf:"workers"`

	// DedupPolicy decides which variant survives when two candidates share
	// a normalized base name: first_arrival, deterministic or highest_score.
	// Default: first_arrival
	DedupPolicy string `koanf:"dedup_policy"`

	// Candidates overrides the built-in candidate app id list.
	// Empty means use the built-in list.
	Candidates []int64 `koanf:"candidates"`

	// ResponseCacheTTL is how long a full response is reused for an identical
	// request. Zero disables response caching.
	// Default: 10m
	ResponseCacheTTL time.Duration `koanf:"response_cache_ttl"`

	// RequestTimeout bounds a single recommendation run.
	// Default: 2m
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// SecurityConfig holds CORS and rate limiting settings for the HTTP API.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// Load reads configuration from built-in defaults, an optional config file
// and environment variables. See LoadWithKoanf.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// Defaults returns the built-in configuration without reading a file or
// the environment. Tests and tools start from it.
func Defaults() *Config {
	return defaultConfig()
}
