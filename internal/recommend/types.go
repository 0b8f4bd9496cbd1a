// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package recommend

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/gamescout/internal/validation"
)

// SortMode orders the result buckets.
type SortMode string

const (
	SortRating      SortMode = "rating"
	SortMatch       SortMode = "match"
	SortPrice       SortMode = "price"
	SortReleaseDate SortMode = "release_date"
)

// ParseSortMode maps a request value to a SortMode. Unknown and empty
// values fall back to SortRating.
func ParseSortMode(s string) SortMode {
	switch SortMode(strings.ToLower(strings.TrimSpace(s))) {
	case SortMatch:
		return SortMatch
	case SortPrice:
		return SortPrice
	case SortReleaseDate:
		return SortReleaseDate
	default:
		return SortRating
	}
}

// Price bounds. A range of [0, DefaultPriceMax] means unrestricted.
const (
	DefaultPriceMax = 999.0

	// MaxRating is the upper bound of derived ratings.
	MaxRating = 100.0
)

// Request is one recommendation query.
type Request struct {
	// Identity is a numeric Steam ID, a vanity name or a profile URL.
	Identity string `json:"identity" validate:"required,max=256,steam_identity"`

	// MinRating drops candidates rated below it. On-sale candidates get a
	// 20 point grace margin; unrated candidates are never dropped.
	MinRating float64 `json:"min_rating" validate:"gte=0,lte=100"`

	SortBy SortMode `json:"sort_by"`

	// PriceMin and PriceMax are in dollars. The range is only applied when
	// PriceMin > 0 or PriceMax < DefaultPriceMax.
	PriceMin float64 `json:"price_min" validate:"gte=0"`
	PriceMax float64 `json:"price_max" validate:"gte=0"`

	// RecentOnly keeps only titles released within the last 365 days.
	RecentOnly bool `json:"recent_only"`
}

// NewRequest returns a request for identity with default filters.
func NewRequest(identity string) Request {
	return Request{
		Identity: identity,
		SortBy:   SortRating,
		PriceMax: DefaultPriceMax,
	}
}

// PriceRangeActive reports whether the price filter applies.
func (r *Request) PriceRangeActive() bool {
	return r.PriceMin > 0 || r.PriceMax < DefaultPriceMax
}

// Validate checks value ranges that the scorer relies on.
func (r *Request) Validate() error {
	if strings.TrimSpace(r.Identity) == "" {
		return fmt.Errorf("%w: identity is required", ErrInvalidRequest)
	}
	if verr := validation.ValidateStruct(r); verr != nil {
		return fmt.Errorf("%w: %s", ErrInvalidRequest, verr.Error())
	}
	if r.PriceMin > r.PriceMax {
		return fmt.Errorf("%w: price_min %.2f exceeds price_max %.2f", ErrInvalidRequest, r.PriceMin, r.PriceMax)
	}
	return nil
}

// normalize trims the identity and canonicalizes the sort mode.
func (r Request) normalize() Request {
	r.Identity = strings.TrimSpace(r.Identity)
	r.SortBy = ParseSortMode(string(r.SortBy))
	return r
}

// Signals is the preference profile extracted from the most played games.
type Signals struct {
	// TagWeights holds the accumulated positional weight of every tag seen.
	TagWeights map[string]float64 `json:"tag_weights"`

	// TopTags are the 20 heaviest tags, heaviest first.
	TopTags []string `json:"top_tags"`

	// Categories are the 15 most frequent categories, most frequent first.
	Categories []string `json:"categories"`
}

// PreferenceStats summarizes the library the signals were drawn from.
type PreferenceStats struct {
	MeanUsageMinutes float64 `json:"mean_usage_minutes"`

	// AboveAverageCount counts played games strictly above the mean, before
	// the top-30 cut.
	AboveAverageCount int `json:"above_average_count"`

	// TotalPlayedCount counts games with any playtime.
	TotalPlayedCount int `json:"total_played_count"`

	// TopPlayed are the ids that contributed weights, most played first.
	TopPlayed []int64 `json:"-"`
}

// CandidateResult is one scored, recommendable game.
type CandidateResult struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	BaseName    string   `json:"base_name"`
	MatchScore  int      `json:"match_score"`
	Reasons     []string `json:"reasons"`
	Rating      int      `json:"rating"`
	ReviewCount int64    `json:"review_count"`

	OriginalPrice   float64 `json:"original_price"`
	CurrentPrice    float64 `json:"current_price"`
	DiscountPercent int     `json:"discount_percent"`
	OnSale          bool    `json:"on_sale"`

	ReleaseDate      string `json:"release_date"`
	ReleaseTimestamp int64  `json:"release_timestamp"`

	Tags       []string `json:"tags"`
	Categories []string `json:"categories"`

	StoreURL         string   `json:"store_url"`
	HeaderImage      string   `json:"header_image,omitempty"`
	ShortDescription string   `json:"short_description,omitempty"`
	Developers       []string `json:"developers,omitempty"`
	Publishers       []string `json:"publishers,omitempty"`
}

// EffectivePrice is the price a buyer pays now: the sale price when on
// sale, otherwise the list price.
func (c *CandidateResult) EffectivePrice() float64 {
	if c.OnSale {
		return c.CurrentPrice
	}
	return c.OriginalPrice
}

// Response is the full answer to a Request.
type Response struct {
	MeanUsageHours         float64           `json:"mean_usage_hours"`
	AboveAverageCount      int               `json:"above_average_count"`
	TotalPlayedCount       int               `json:"total_played_count"`
	TopTags                []string          `json:"top_tags"`
	RegularRecommendations []CandidateResult `json:"regular_recommendations"`
	SaleRecommendations    []CandidateResult `json:"sale_recommendations"`
	Metadata               ResponseMetadata  `json:"metadata"`
}

// ResponseMetadata describes how a response was produced.
type ResponseMetadata struct {
	SteamID             string    `json:"steam_id"`
	SortBy              SortMode  `json:"sort_by"`
	CandidatesEvaluated int       `json:"candidates_evaluated"`
	Duplicates          int       `json:"duplicates"`
	LatencyMS           int64     `json:"latency_ms"`
	CacheHit            bool      `json:"cache_hit"`
	GeneratedAt         time.Time `json:"generated_at"`
}

// clone copies the slices a caller might mutate.
func (r *Response) clone() *Response {
	out := *r
	out.TopTags = append([]string(nil), r.TopTags...)
	out.RegularRecommendations = append([]CandidateResult(nil), r.RegularRecommendations...)
	out.SaleRecommendations = append([]CandidateResult(nil), r.SaleRecommendations...)
	return &out
}
