// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package recommend

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
)

// Outcome is the result of evaluating one candidate. Every value except
// OutcomeIncluded names the exclusion step that dropped it.
type Outcome string

const (
	OutcomeIncluded    Outcome = "included"
	OutcomeOwned       Outcome = "owned"
	OutcomeUnavailable Outcome = "unavailable"
	OutcomeNotBase     Outcome = "not_base_product"
	OutcomeNoOverlap   Outcome = "no_overlap"
	OutcomePrice       Outcome = "price"
	OutcomeRating      Outcome = "rating"
	OutcomeTooOld      Outcome = "too_old"
	OutcomeDuplicate   Outcome = "duplicate"
	OutcomeCanceled    Outcome = "canceled"
)

const (
	saleRatingGrace   = 20.0
	maxMatchScore     = 10
	maxReasons        = 3
	recentWindow      = 365 * 24 * time.Hour
	storeAppURLPrefix = "https://store.steampowered.com/app/"
)

// ScoreInput is everything about the requester that scoring needs.
type ScoreInput struct {
	Owned      map[int64]struct{}
	Signals    Signals
	MinRating  float64
	PriceMin   float64
	PriceMax   float64
	PriceRange bool
	RecentOnly bool
}

// NewScoreInput derives the scoring input for req.
func NewScoreInput(req *Request, owned []int64, signals Signals) ScoreInput {
	set := make(map[int64]struct{}, len(owned))
	for _, id := range owned {
		set[id] = struct{}{}
	}
	return ScoreInput{
		Owned:      set,
		Signals:    signals,
		MinRating:  req.MinRating,
		PriceMin:   req.PriceMin,
		PriceMax:   req.PriceMax,
		PriceRange: req.PriceRangeActive(),
		RecentOnly: req.RecentOnly,
	}
}

// Scorer evaluates single candidates against a ScoreInput.
type Scorer struct {
	details    DetailSource
	classifier BaseProductClassifier
	now        func() time.Time
}

// NewScorer creates a scorer. A nil classifier uses the default edition
// keyword classifier.
func NewScorer(details DetailSource, classifier BaseProductClassifier) *Scorer {
	if classifier == nil {
		classifier = NewKeywordClassifier(nil)
	}
	return &Scorer{details: details, classifier: classifier, now: time.Now}
}

// Score returns the candidate result and whether it survived every filter.
//
//nolint:gocritic // hugeParam: input is read-only and shared across workers
func (s *Scorer) Score(ctx context.Context, id int64, in ScoreInput) (CandidateResult, bool) {
	res, outcome := s.Evaluate(ctx, id, in)
	return res, outcome == OutcomeIncluded
}

// Evaluate runs the exclusion chain, cheapest checks first, and reports
// which step (if any) dropped the candidate.
//
//nolint:gocritic // hugeParam: input is read-only and shared across workers
func (s *Scorer) Evaluate(ctx context.Context, id int64, in ScoreInput) (CandidateResult, Outcome) {
	if _, owned := in.Owned[id]; owned {
		return CandidateResult{}, OutcomeOwned
	}

	d, ok := s.details.Detail(ctx, id)
	if !ok {
		if ctx.Err() != nil {
			return CandidateResult{}, OutcomeCanceled
		}
		return CandidateResult{}, OutcomeUnavailable
	}

	if !s.classifier.IsBaseProduct(d.Name, d.Type) {
		return CandidateResult{}, OutcomeNotBase
	}

	matchingTags := intersect(d.Tags, in.Signals.TopTags)
	matchingCats := intersect(d.Categories, in.Signals.Categories)
	score := MatchScore(WeightedScore(matchingTags, len(matchingCats), in.Signals.TagWeights))
	if score == 0 {
		return CandidateResult{}, OutcomeNoOverlap
	}

	rating := DeriveRating(d.CriticScore, d.ReviewCount)

	res := CandidateResult{
		ID:               id,
		Name:             d.Name,
		BaseName:         BaseName(d.Name),
		MatchScore:       score,
		Reasons:          reasons(matchingTags),
		Rating:           rating,
		ReviewCount:      d.ReviewCount,
		ReleaseDate:      d.ReleaseDate,
		Tags:             d.Tags,
		Categories:       d.Categories,
		StoreURL:         fmt.Sprintf("%s%d", storeAppURLPrefix, id),
		HeaderImage:      d.HeaderImage,
		ShortDescription: d.ShortDescription,
		Developers:       d.Developers,
		Publishers:       d.Publishers,
	}
	if d.Price != nil {
		res.OriginalPrice = float64(d.Price.InitialCents) / 100
		res.CurrentPrice = float64(d.Price.FinalCents) / 100
		res.DiscountPercent = d.Price.DiscountPercent
		res.OnSale = d.Price.DiscountPercent > 0
	}

	if in.PriceRange {
		p := res.EffectivePrice()
		if p < in.PriceMin || p > in.PriceMax {
			return CandidateResult{}, OutcomePrice
		}
	}

	minRating := in.MinRating
	if res.OnSale {
		minRating = math.Max(0, minRating-saleRatingGrace)
	}
	if rating > 0 && float64(rating) < minRating {
		return CandidateResult{}, OutcomeRating
	}

	if released, ok := ParseReleaseDate(d.ReleaseDate); ok {
		res.ReleaseTimestamp = released.Unix()
		if in.RecentOnly && s.now().Sub(released) > recentWindow {
			return CandidateResult{}, OutcomeTooOld
		}
	}

	return res, OutcomeIncluded
}

// WeightedScore sums the weight of each matching tag (1 when the tag has no
// recorded weight) plus one per matching category.
func WeightedScore(matchingTags []string, matchingCategories int, weights map[string]float64) float64 {
	var sum float64
	for _, tag := range matchingTags {
		if w, ok := weights[tag]; ok {
			sum += w
		} else {
			sum++
		}
	}
	return sum + float64(matchingCategories)
}

// MatchScore scales a weighted score to [0, 10], rounding half away from zero.
func MatchScore(weighted float64) int {
	s := int(math.Round(weighted / 10))
	switch {
	case s < 0:
		return 0
	case s > maxMatchScore:
		return maxMatchScore
	default:
		return s
	}
}

// DeriveRating prefers the critic score; otherwise it buckets the review
// volume. No reviews means unrated (0).
func DeriveRating(criticScore int, reviews int64) int {
	if criticScore > 0 {
		return criticScore
	}
	switch {
	case reviews <= 0:
		return 0
	case reviews > 100000:
		return 90
	case reviews > 50000:
		return 85
	case reviews > 10000:
		return 80
	case reviews > 1000:
		return 75
	default:
		return 70
	}
}

// BaseName collapses subtitle and edition variants: the name is cut at the
// first ':' and then at the first '-'. A name that would collapse to
// nothing keeps its full text.
func BaseName(name string) string {
	base, _, _ := strings.Cut(name, ":")
	base, _, _ = strings.Cut(base, "-")
	base = strings.TrimSpace(base)
	if base == "" {
		return strings.TrimSpace(name)
	}
	return base
}

// releaseLayouts are the date shapes the store uses across locales.
var releaseLayouts = []string{
	"2 Jan, 2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	"January 2, 2006",
	"2 January 2006",
	"Jan 2006",
	"January 2006",
	"2006-01-02",
	"2006",
}

// ParseReleaseDate parses a store release date. "TBA", "Coming soon" and
// anything unparsable report ok=false.
func ParseReleaseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "TBA") {
		return time.Time{}, false
	}
	for _, layout := range releaseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// intersect returns the members of have that appear in want, in have's order.
func intersect(have, want []string) []string {
	if len(have) == 0 || len(want) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(want))
	for _, w := range want {
		set[w] = struct{}{}
	}
	var out []string
	for _, h := range have {
		if _, ok := set[h]; ok {
			out = append(out, h)
		}
	}
	return out
}

func reasons(matchingTags []string) []string {
	n := min(len(matchingTags), maxReasons)
	out := make([]string, n)
	for i := range n {
		out[i] = "You enjoy " + matchingTags[i] + " games"
	}
	return out
}
