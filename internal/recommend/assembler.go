// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package recommend

import (
	"cmp"
	"math"
	"slices"
)

// Bucket thresholds and limits.
const (
	MinSaleScore    = 2
	MinRegularScore = 4
	MaxBucketSize   = 30
	MaxResponseTags = 10
)

// Assemble splits survivors into sale and regular buckets, orders each by
// mode, truncates them and attaches library statistics.
//
// On-sale results need a match score of at least MinSaleScore; regular
// results need MinRegularScore.
func Assemble(results []CandidateResult, mode SortMode, signals Signals, stats PreferenceStats) *Response {
	sale := make([]CandidateResult, 0)
	regular := make([]CandidateResult, 0)
	for _, r := range results {
		switch {
		case r.OnSale && r.MatchScore >= MinSaleScore:
			sale = append(sale, r)
		case !r.OnSale && r.MatchScore >= MinRegularScore:
			regular = append(regular, r)
		}
	}

	sortResults(sale, mode)
	sortResults(regular, mode)

	topTags := signals.TopTags
	if len(topTags) > MaxResponseTags {
		topTags = topTags[:MaxResponseTags]
	}

	return &Response{
		MeanUsageHours:         hours(stats.MeanUsageMinutes),
		AboveAverageCount:      stats.AboveAverageCount,
		TotalPlayedCount:       stats.TotalPlayedCount,
		TopTags:                slices.Clone(topTags),
		RegularRecommendations: truncate(regular, MaxBucketSize),
		SaleRecommendations:    truncate(sale, MaxBucketSize),
	}
}

// sortResults orders in place. Every mode breaks ties by ascending id so
// the output does not depend on arrival order.
func sortResults(rs []CandidateResult, mode SortMode) {
	var primary func(a, b *CandidateResult) int
	switch mode {
	case SortPrice:
		primary = func(a, b *CandidateResult) int { return cmp.Compare(a.EffectivePrice(), b.EffectivePrice()) }
	case SortMatch:
		primary = func(a, b *CandidateResult) int { return cmp.Compare(b.MatchScore, a.MatchScore) }
	case SortReleaseDate:
		primary = func(a, b *CandidateResult) int { return cmp.Compare(b.ReleaseTimestamp, a.ReleaseTimestamp) }
	default:
		primary = func(a, b *CandidateResult) int { return cmp.Compare(b.Rating, a.Rating) }
	}

	slices.SortStableFunc(rs, func(a, b CandidateResult) int {
		if c := primary(&a, &b); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

func truncate(rs []CandidateResult, n int) []CandidateResult {
	if len(rs) > n {
		return rs[:n]
	}
	return rs
}

// hours converts minutes to hours rounded to one decimal.
func hours(minutes float64) float64 {
	return math.Round(minutes/60*10) / 10
}
