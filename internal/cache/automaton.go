// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package cache

import (
	"strings"
	"sync"
)

// Automaton is an Aho-Corasick matcher over a fixed keyword set. A search
// over text of length n with total keyword length m costs O(n + m + z)
// for z matches, independent of how many keywords are registered.
//
//	a := NewAutomaton[string]()
//	a.Add("season pass", "dlc")
//	a.Add("soundtrack", "media")
//	a.Build()
//	hit, ok := a.First("Game - Season Pass")  // hit.Keyword == "season pass"
type Automaton[T any] struct {
	mu            sync.RWMutex
	root          *acState
	keywords      []Keyword[T]
	built         bool
	caseSensitive bool
}

// acState is one trie node plus its failure link.
type acState struct {
	next   map[rune]*acState
	fail   *acState
	output []int // keyword indices ending here, including via fail links
}

// Keyword is a registered pattern and the value attached to it.
type Keyword[T any] struct {
	Text  string
	Value T
}

// Hit is one keyword occurrence. Offset is the byte offset of the match
// start in the folded text.
type Hit[T any] struct {
	Keyword string
	Value   T
	Offset  int
}

// NewAutomaton creates a case-insensitive automaton.
func NewAutomaton[T any]() *Automaton[T] {
	return &Automaton[T]{root: newACState()}
}

// NewCaseSensitiveAutomaton creates an automaton that matches case exactly.
func NewCaseSensitiveAutomaton[T any]() *Automaton[T] {
	return &Automaton[T]{root: newACState(), caseSensitive: true}
}

func newACState() *acState {
	return &acState{next: make(map[rune]*acState)}
}

func (a *Automaton[T]) fold(s string) string {
	if a.caseSensitive {
		return s
	}
	return strings.ToLower(s)
}

// Add registers a keyword. Adding after Build marks the automaton stale;
// call Build again before searching. Empty keywords are ignored.
func (a *Automaton[T]) Add(keyword string, value T) {
	if keyword == "" {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.keywords = append(a.keywords, Keyword[T]{Text: keyword, Value: value})
	a.built = false
}

// AddAll registers every keyword with the same value.
func (a *Automaton[T]) AddAll(keywords []string, value T) {
	for _, k := range keywords {
		a.Add(k, value)
	}
}

// Build compiles the trie and failure links. It is a no-op when nothing
// changed since the last Build.
func (a *Automaton[T]) Build() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.built {
		return
	}

	a.root = newACState()
	for i, k := range a.keywords {
		state := a.root
		for _, r := range a.fold(k.Text) {
			child, ok := state.next[r]
			if !ok {
				child = newACState()
				state.next[r] = child
			}
			state = child
		}
		state.output = append(state.output, i)
	}

	// Breadth-first so every state's fail target is finished first.
	queue := make([]*acState, 0, len(a.root.next))
	for _, child := range a.root.next {
		child.fail = a.root
		queue = append(queue, child)
	}
	for len(queue) > 0 {
		state := queue[0]
		queue = queue[1:]

		for r, child := range state.next {
			queue = append(queue, child)

			f := state.fail
			for f != nil && f.next[r] == nil {
				f = f.fail
			}
			if f == nil {
				child.fail = a.root
				continue
			}
			child.fail = f.next[r]
			child.output = append(child.output, child.fail.output...)
		}
	}

	a.built = true
}

// scan walks text and calls visit for each hit until visit returns false.
// Must be called with at least the read lock held.
func (a *Automaton[T]) scan(text string, visit func(Hit[T]) bool) {
	if !a.built || len(a.keywords) == 0 {
		return
	}

	folded := a.fold(text)
	state := a.root
	for pos, r := range folded {
		for state != a.root && state.next[r] == nil {
			state = state.fail
		}
		next, ok := state.next[r]
		if !ok {
			continue
		}
		state = next

		end := pos + len(string(r))
		for _, idx := range state.output {
			k := a.keywords[idx]
			hit := Hit[T]{Keyword: k.Text, Value: k.Value, Offset: end - len(a.fold(k.Text))}
			if !visit(hit) {
				return
			}
		}
	}
}

// FindAll returns every keyword occurrence in text.
func (a *Automaton[T]) FindAll(text string) []Hit[T] {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var hits []Hit[T]
	a.scan(text, func(h Hit[T]) bool {
		hits = append(hits, h)
		return true
	})
	return hits
}

// First returns the keyword occurrence that ends earliest in text.
func (a *Automaton[T]) First(text string) (Hit[T], bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var (
		first Hit[T]
		found bool
	)
	a.scan(text, func(h Hit[T]) bool {
		first, found = h, true
		return false
	})
	return first, found
}

// Contains reports whether any keyword occurs in text.
func (a *Automaton[T]) Contains(text string) bool {
	_, ok := a.First(text)
	return ok
}

// Len returns the number of registered keywords.
func (a *Automaton[T]) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.keywords)
}

// KeywordMatcher is a built, read-only keyword set without attached values.
type KeywordMatcher struct {
	a *Automaton[struct{}]
}

// NewKeywordMatcher compiles keywords into a case-insensitive matcher.
func NewKeywordMatcher(keywords []string) *KeywordMatcher {
	a := NewAutomaton[struct{}]()
	a.AddAll(keywords, struct{}{})
	a.Build()
	return &KeywordMatcher{a: a}
}

// Contains reports whether text contains any keyword.
func (m *KeywordMatcher) Contains(text string) bool {
	return m.a.Contains(text)
}

// Match returns the first keyword found in text.
func (m *KeywordMatcher) Match(text string) (string, bool) {
	h, ok := m.a.First(text)
	return h.Keyword, ok
}
