// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package recommend

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/gamescout/internal/catalog"
	"github.com/tomtom215/gamescout/internal/detailcache"
)

// DetailSource looks up store details, from cache or upstream.
type DetailSource interface {
	Detail(ctx context.Context, id int64) (catalog.ItemDetail, bool)
}

// SharedFetchTimeout bounds one upstream detail fetch shared by
// concurrent callers.
const SharedFetchTimeout = 30 * time.Second

// CachedSource reads through the detail cache to the catalog source and
// stores every successful fetch. Concurrent misses for the same id share a
// single upstream call, which is not tied to any one caller's context: a
// caller that gives up does not fail the others.
type CachedSource struct {
	cache        *detailcache.Cache
	source       catalog.Source
	group        singleflight.Group
	fetchTimeout time.Duration
	logger       zerolog.Logger
}

// NewCachedSource composes cache and source.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewCachedSource(cache *detailcache.Cache, source catalog.Source, logger zerolog.Logger) *CachedSource {
	return &CachedSource{
		cache:        cache,
		source:       source,
		fetchTimeout: SharedFetchTimeout,
		logger:       logger.With().Str("component", "detail_source").Logger(),
	}
}

// Detail implements DetailSource.
func (s *CachedSource) Detail(ctx context.Context, id int64) (catalog.ItemDetail, bool) {
	if d, ok := s.cache.Get(id); ok {
		return d, true
	}

	ch := s.group.DoChan(strconv.FormatInt(id, 10), func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.fetchTimeout)
		defer cancel()

		d, ok := s.source.FetchDetail(fetchCtx, id)
		if !ok {
			return nil, nil
		}
		if err := s.cache.Put(fetchCtx, id, d); err != nil {
			s.logger.Debug().Err(err).Int64("app_id", id).Msg("Detail cached in memory only")
		}
		return d, nil
	})

	select {
	case res := <-ch:
		d, ok := res.Val.(catalog.ItemDetail)
		return d, ok
	case <-ctx.Done():
		return catalog.ItemDetail{}, false
	}
}
