// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package recommend

import (
	"strings"

	"github.com/tomtom215/gamescout/internal/cache"
)

// BaseProductClassifier decides whether a store entry is a standalone game
// rather than DLC, a soundtrack or a re-bundled edition of another entry.
type BaseProductClassifier interface {
	IsBaseProduct(name, productType string) bool
}

// EditionKeywords are title fragments that mark an entry as an add-on or an
// alternate edition. Matching is case-insensitive substring matching, so
// short entries such as "pack" or "season" also hit legitimate titles.
var EditionKeywords = []string{
	"dlc", "expansion", "season pass", "bundle", "pack",
	"premium edition", "deluxe edition", "ultimate edition", "gold edition",
	"complete edition", "goty", "game of the year", "collector",
	"special edition", "enhanced edition", "soundtrack", "artbook",
	"cosmetic", "upgrade", "definitive edition", "digital deluxe",
	"limited edition", "founders", "starter pack", "bonus content",
	"cosmetic pack", "season", "chapter", "episode", "supporter pack",
	"imperial edition", "royal edition", "legendary edition",
	"exclusive edition", "premium upgrade", "upgrade pack", "content pack",
	"bonus pack", "pre-order", "special pack", "collection pack", "mega pack",
	"master collection", "anniversary edition", "remastered", "game + ",
	"+ dlc", "complete pack", "full pack", "everything pack", "all dlc",
}

// KeywordClassifier accepts entries of type "game" whose name contains none
// of its keywords.
type KeywordClassifier struct {
	matcher *cache.KeywordMatcher
}

// NewKeywordClassifier builds a classifier over keywords. A nil slice uses
// EditionKeywords.
func NewKeywordClassifier(keywords []string) *KeywordClassifier {
	if keywords == nil {
		keywords = EditionKeywords
	}
	return &KeywordClassifier{matcher: cache.NewKeywordMatcher(keywords)}
}

// IsBaseProduct implements BaseProductClassifier.
func (k *KeywordClassifier) IsBaseProduct(name, productType string) bool {
	if !strings.EqualFold(productType, "game") {
		return false
	}
	return !k.matcher.Contains(name)
}

// MatchedKeyword returns the keyword that disqualifies name, if any.
func (k *KeywordClassifier) MatchedKeyword(name string) (string, bool) {
	return k.matcher.Match(name)
}
