// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package recommend

import "testing"

func TestKeywordClassifier_IsBaseProduct(t *testing.T) {
	t.Parallel()

	c := NewKeywordClassifier(nil)

	tests := []struct {
		name        string
		productType string
		want        bool
	}{
		{"Great Game", "game", true},
		{"Great Game", "Game", true},
		{"Great Game: Deluxe Edition", "game", false},
		{"GREAT GAME GOTY", "game", false},
		{"Great Game Soundtrack", "game", false},
		{"Great Game - Season Pass", "game", false},
		{"Great Game", "dlc", false},
		{"Great Game", "music", false},
		{"Great Game", "", false},
		{"Mass Effect Legendary Edition", "game", false},
		{"Doom + DLC", "game", false},
		// Substring matching also catches legitimate titles.
		{"Backpack Hero", "game", false},
		{"Half-Life 2: Episode One", "game", false},
	}
	for _, tt := range tests {
		if got := c.IsBaseProduct(tt.name, tt.productType); got != tt.want {
			t.Errorf("IsBaseProduct(%q, %q) = %v, want %v", tt.name, tt.productType, got, tt.want)
		}
	}
}

func TestKeywordClassifier_CustomKeywords(t *testing.T) {
	t.Parallel()

	c := NewKeywordClassifier([]string{"demo"})
	if !c.IsBaseProduct("Great Game: Deluxe Edition", "game") {
		t.Error("custom keyword list still applied defaults")
	}
	if c.IsBaseProduct("Great Game Demo", "game") {
		t.Error("custom keyword ignored")
	}
	if kw, ok := c.MatchedKeyword("Great Game DEMO"); !ok || kw != "demo" {
		t.Errorf("MatchedKeyword = %q, %v", kw, ok)
	}
}

// allowAll is a classifier that accepts everything, to show the scorer
// does not depend on the keyword list.
type allowAll struct{}

func (allowAll) IsBaseProduct(string, string) bool { return true }

func TestScorer_PluggableClassifier(t *testing.T) {
	t.Parallel()

	d := game(1, "Great Game: Deluxe Edition", "Action")
	s := NewScorer(newMapDetails(d), allowAll{})
	if _, ok := s.Score(t.Context(), 1, baseInput()); !ok {
		t.Error("custom classifier not consulted")
	}
}
