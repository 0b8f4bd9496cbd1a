// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package recommend

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/gamescout/internal/catalog"
)

// Extraction limits.
const (
	MaxTopPlayed     = 30
	MaxSignalTags    = 20
	MaxSignalCats    = 15
	DefaultFetchPool = 10
)

// PreferenceExtractor builds Signals from an engagement history.
type PreferenceExtractor struct {
	details DetailSource
	workers int
}

// NewPreferenceExtractor creates an extractor. workers bounds concurrent
// detail fetches; values < 1 use DefaultFetchPool.
func NewPreferenceExtractor(details DetailSource, workers int) *PreferenceExtractor {
	if workers < 1 {
		workers = DefaultFetchPool
	}
	return &PreferenceExtractor{details: details, workers: workers}
}

// ExtractPreferences is PreferenceExtractor.Extract with the default pool.
func ExtractPreferences(ctx context.Context, history []catalog.EngagementRecord, details DetailSource) (Signals, PreferenceStats, error) {
	return NewPreferenceExtractor(details, DefaultFetchPool).Extract(ctx, history)
}

// Extract derives preference signals:
//
//   - played games (usage > 0) are averaged;
//   - games strictly above the mean are sorted by usage, most played first,
//     and cut to MaxTopPlayed;
//   - the game at rank i of N adds weight N-i to each of its tags, and each
//     of its categories counts once.
//
// A game whose detail is unavailable still consumes its rank.
func (p *PreferenceExtractor) Extract(ctx context.Context, history []catalog.EngagementRecord) (Signals, PreferenceStats, error) {
	if len(history) == 0 {
		return Signals{}, PreferenceStats{}, ErrNoOwnedGames
	}

	played := make([]catalog.EngagementRecord, 0, len(history))
	var total int64
	for _, r := range history {
		if r.UsageMinutes > 0 {
			played = append(played, r)
			total += r.UsageMinutes
		}
	}
	if len(played) == 0 {
		return Signals{}, PreferenceStats{}, ErrNoEngagementData
	}

	mean := float64(total) / float64(len(played))
	above := aboveMean(played, mean)

	stats := PreferenceStats{
		MeanUsageMinutes:  mean,
		AboveAverageCount: len(above),
		TotalPlayedCount:  len(played),
	}

	slices.SortStableFunc(above, func(a, b catalog.EngagementRecord) int {
		switch {
		case a.UsageMinutes > b.UsageMinutes:
			return -1
		case a.UsageMinutes < b.UsageMinutes:
			return 1
		default:
			return 0
		}
	})
	if len(above) > MaxTopPlayed {
		above = above[:MaxTopPlayed]
	}

	stats.TopPlayed = make([]int64, len(above))
	for i, r := range above {
		stats.TopPlayed[i] = r.ItemID
	}

	details, err := p.fetchAll(ctx, stats.TopPlayed)
	if err != nil {
		return Signals{}, PreferenceStats{}, err
	}

	tags := newRankedCounter()
	cats := newRankedCounter()
	n := len(above)
	for i, d := range details {
		if d == nil {
			continue
		}
		weight := float64(PositionalWeight(n, i))
		for _, tag := range d.Tags {
			tags.add(tag, weight)
		}
		for _, c := range d.Categories {
			cats.add(c, 1)
		}
	}

	return Signals{
		TagWeights: tags.weights,
		TopTags:    tags.top(MaxSignalTags),
		Categories: cats.top(MaxSignalCats),
	}, stats, nil
}

// PositionalWeight is the weight of the game at rank i among n top games.
func PositionalWeight(n, i int) int {
	return n - i
}

// aboveMean returns the records whose usage is strictly above mean.
func aboveMean(played []catalog.EngagementRecord, mean float64) []catalog.EngagementRecord {
	out := make([]catalog.EngagementRecord, 0, len(played))
	for _, r := range played {
		if float64(r.UsageMinutes) > mean {
			out = append(out, r)
		}
	}
	return out
}

// fetchAll fetches details concurrently into rank order. Missing details
// are left nil.
func (p *PreferenceExtractor) fetchAll(ctx context.Context, ids []int64) ([]*catalog.ItemDetail, error) {
	out := make([]*catalog.ItemDetail, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, id := range ids {
		g.Go(func() error {
			if d, ok := p.details.Detail(gctx, id); ok {
				out[i] = &d
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// rankedCounter accumulates weights and remembers first-insertion order
// for tie-breaking.
type rankedCounter struct {
	weights map[string]float64
	order   []string
}

func newRankedCounter() *rankedCounter {
	return &rankedCounter{weights: make(map[string]float64)}
}

func (c *rankedCounter) add(key string, w float64) {
	if _, ok := c.weights[key]; !ok {
		c.order = append(c.order, key)
	}
	c.weights[key] += w
}

// top returns up to limit keys by descending weight, ties in insertion order.
func (c *rankedCounter) top(limit int) []string {
	keys := slices.Clone(c.order)
	slices.SortStableFunc(keys, func(a, b string) int {
		wa, wb := c.weights[a], c.weights[b]
		switch {
		case wa > wb:
			return -1
		case wa < wb:
			return 1
		default:
			return 0
		}
	})
	if len(keys) > limit {
		keys = keys[:limit]
	}
	return keys
}
