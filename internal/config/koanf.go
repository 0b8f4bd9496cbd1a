// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are tried in order when CONFIG_PATH is unset or missing.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/gamescout/config.yaml",
	"/etc/gamescout/config.yml",
}

// ConfigPathEnvVar names the variable holding an explicit config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
func defaultConfig() *Config {
	return &Config{
		Steam: SteamConfig{
			APIBaseURL:        "https://api.steampowered.com",
			StoreBaseURL:      "https://store.steampowered.com",
			CountryCode:       "us",
			Language:          "english",
			RequestsPerSecond: 5,
			Burst:             10,
			Timeout:           10 * time.Second,
			MaxRetries:        3,
			IdentityCacheSize: 1024,
			IdentityCacheTTL:  6 * time.Hour,
		},
		Cache: CacheConfig{
			Backend:       "file",
			Path:          "data/game_cache.json",
			TTL:           24 * time.Hour,
			SweepInterval: time.Hour,
		},
		Redis: RedisConfig{
			Addr:      "127.0.0.1:6379",
			DB:        0,
			KeyPrefix: "gamescout:detail:",
		},
		Recommend: RecommendConfig{
			Workers:          10,
			DedupPolicy:      "first_arrival",
			ResponseCacheTTL: 10 * time.Minute,
			RequestTimeout:   2 * time.Minute,
		},
		Server: ServerConfig{
			Port:            5000,
			Host:            "0.0.0.0",
			Timeout:         2 * time.Minute,
			ShutdownTimeout: 10 * time.Second,
		},
		Security: SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   30,
			RateLimitWindow: time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadWithKoanf builds a Config from three layers, later ones winning:
// built-in defaults, the first YAML file found (see configFile), and the
// environment variables listed in envMappings. The result is validated.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}
	if path := configFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}
	if err := splitListValues(k); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// configFile returns CONFIG_PATH if that file exists, else the first of
// DefaultConfigPaths that exists, else "".
func configFile() string {
	candidates := DefaultConfigPaths
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		candidates = append([]string{p}, candidates...)
	}
	for _, p := range candidates {
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			return p
		}
	}
	return ""
}

// listKeys are settings that arrive from the environment as one
// comma-separated string.
var listKeys = []string{
	"security.cors_origins",
	"recommend.candidates",
}

// splitListValues turns "a, b,,c" into ["a" "b" "c"] for listKeys. Values
// that are already lists (from YAML) are left alone.
func splitListValues(k *koanf.Koanf) error {
	for _, key := range listKeys {
		raw, ok := k.Get(key).(string)
		if !ok {
			continue
		}
		var items []string
		for _, item := range strings.Split(raw, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		if len(items) == 0 {
			continue
		}
		if err := k.Set(key, items); err != nil {
			return fmt.Errorf("split %s: %w", key, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to koanf paths.
var envMappings = map[string]string{
	"steam_api_key":             "steam.api_key",
	"steam_api_base_url":        "steam.api_base_url",
	"steam_store_base_url":      "steam.store_base_url",
	"steam_country_code":        "steam.country_code",
	"steam_language":            "steam.language",
	"steam_requests_per_second": "steam.requests_per_second",
	"steam_burst":               "steam.burst",
	"steam_timeout":             "steam.timeout",
	"steam_max_retries":         "steam.max_retries",
	"steam_identity_cache_size": "steam.identity_cache_size",
	"steam_identity_cache_ttl":  "steam.identity_cache_ttl",

	"cache_backend":        "cache.backend",
	"cache_path":           "cache.path",
	"cache_ttl":            "cache.ttl",
	"cache_sweep_interval": "cache.sweep_interval",

	"redis_addr":       "redis.addr",
	"redis_password":   "redis.password",
	"redis_db":         "redis.db",
	"redis_key_prefix": "redis.key_prefix",

	"recommend_workers":            "recommend.workers",
	"recommend_dedup_policy":       "recommend.dedup_policy",
	"recommend_candidates":         "recommend.candidates",
	"recommend_response_cache_ttl": "recommend.response_cache_ttl",
	"recommend_request_timeout":    "recommend.request_timeout",

	"http_port":             "server.port",
	"http_host":             "server.host",
	"http_timeout":          "server.timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",

	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps an environment variable name to its config key.
// Names missing from envMappings map to "" and are ignored by the env
// provider, so unrelated variables never reach the config tree.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
