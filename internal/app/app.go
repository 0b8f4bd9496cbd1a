// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

// Package app assembles the recommendation stack from configuration. It is
// shared by the HTTP server and the command-line client so both run the
// same cache, Steam client and engine wiring.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/gamescout/internal/catalog"
	"github.com/tomtom215/gamescout/internal/config"
	"github.com/tomtom215/gamescout/internal/detailcache"
	"github.com/tomtom215/gamescout/internal/recommend"
)

// Components is the wired stack.
type Components struct {
	Config      *config.Config
	Store       detailcache.Store
	DetailCache *detailcache.Cache
	Steam       *catalog.SteamClient
	Details     *recommend.CachedSource
	Engine      *recommend.Engine
}

// Build opens the cache store and constructs every component. The detail
// cache is not loaded; callers either call DetailCache.Load directly or
// hand it to the cache maintenance service.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func Build(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*Components, error) {
	store, err := detailcache.OpenStore(ctx, &cfg.Cache, &cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("open detail cache store: %w", err)
	}

	detailCache := detailcache.New(store, cfg.Cache.TTL, logger)
	steam := catalog.NewSteamClient(&cfg.Steam, logger)
	details := recommend.NewCachedSource(detailCache, steam, logger)

	engineCfg, err := recommend.ConfigFrom(&cfg.Recommend)
	if err != nil {
		_ = detailCache.Close()
		return nil, fmt.Errorf("recommend config: %w", err)
	}

	engine, err := recommend.NewEngine(steam, details, recommend.NewKeywordClassifier(nil), engineCfg, logger)
	if err != nil {
		_ = detailCache.Close()
		return nil, fmt.Errorf("create engine: %w", err)
	}

	logger.Info().
		Str("cache_backend", store.Name()).
		Dur("cache_ttl", detailCache.TTL()).
		Int("workers", engineCfg.Workers).
		Str("dedup_policy", string(engineCfg.DedupPolicy)).
		Int("candidates", len(engineCfg.Candidates)).
		Msg("Recommendation stack assembled")

	return &Components{
		Config:      cfg,
		Store:       store,
		DetailCache: detailCache,
		Steam:       steam,
		Details:     details,
		Engine:      engine,
	}, nil
}

// Close releases the engine and the cache store.
func (c *Components) Close() error {
	var errs []error
	if c.Engine != nil {
		c.Engine.Close()
	}
	if c.DetailCache != nil {
		if err := c.DetailCache.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close detail cache: %w", err))
		}
	}
	return errors.Join(errs...)
}
