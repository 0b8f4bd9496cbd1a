// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// DetailCache is the detail cache lifecycle the service drives.
type DetailCache interface {
	Load(ctx context.Context) error
	Loaded() bool
	Sweep(ctx context.Context) int
	Len() int
}

// ResponsePurger drops expired engine responses.
type ResponsePurger interface {
	PurgeExpired() int
}

// CacheMaintenanceConfig configures CacheMaintenanceService.
type CacheMaintenanceConfig struct {
	// SweepInterval is how often expired entries are removed.
	// Default: 1h
	SweepInterval time.Duration

	// LoadTimeout bounds the initial load from the store.
	// Default: 2m
	LoadTimeout time.Duration
}

// CacheMaintenanceService loads the detail cache when it starts, then
// periodically sweeps expired detail records and cached responses.
// Readiness flips once the first load completes.
type CacheMaintenanceService struct {
	cache     DetailCache
	responses ResponsePurger
	config    CacheMaintenanceConfig
	logger    zerolog.Logger
	name      string
}

// NewCacheMaintenanceService creates the service. responses may be nil.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewCacheMaintenanceService(cache DetailCache, responses ResponsePurger, cfg CacheMaintenanceConfig, logger zerolog.Logger) *CacheMaintenanceService {
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = time.Hour
	}
	if cfg.LoadTimeout <= 0 {
		cfg.LoadTimeout = 2 * time.Minute
	}
	return &CacheMaintenanceService{
		cache:     cache,
		responses: responses,
		config:    cfg,
		logger:    logger.With().Str("service", "cache-maintenance").Logger(),
		name:      "cache-maintenance",
	}
}

// Serve implements suture.Service.
func (s *CacheMaintenanceService) Serve(ctx context.Context) error {
	// A restart after a crash must not reload over live entries.
	if !s.cache.Loaded() {
		if err := s.load(ctx); err != nil {
			return err
		}
	}

	ticker := time.NewTicker(s.config.SweepInterval)
	defer ticker.Stop()

	s.logger.Info().Dur("sweep_interval", s.config.SweepInterval).Msg("cache maintenance running")

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("cache maintenance shutting down")
			return ctx.Err()

		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *CacheMaintenanceService) load(ctx context.Context) error {
	loadCtx, cancel := context.WithTimeout(ctx, s.config.LoadTimeout)
	defer cancel()

	start := time.Now()
	if err := s.cache.Load(loadCtx); err != nil {
		s.logger.Error().Err(err).Msg("detail cache load failed")
		return err
	}

	s.logger.Info().
		Int("entries", s.cache.Len()).
		Dur("duration", time.Since(start)).
		Msg("detail cache loaded")
	return nil
}

// sweep runs one maintenance pass and reports what it removed.
func (s *CacheMaintenanceService) sweep(ctx context.Context) (details, responses int) {
	details = s.cache.Sweep(ctx)
	if s.responses != nil {
		responses = s.responses.PurgeExpired()
	}

	s.logger.Debug().
		Int("details_removed", details).
		Int("responses_removed", responses).
		Int("entries", s.cache.Len()).
		Msg("cache sweep complete")
	return details, responses
}

// String implements fmt.Stringer for suture logs.
func (s *CacheMaintenanceService) String() string {
	return s.name
}
