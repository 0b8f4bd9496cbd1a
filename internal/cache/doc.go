// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

/*
Package cache provides the in-process data structures shared by the
recommendation pipeline.

  - TTL: a generic expiring map used for whole-response memoization.
  - Automaton: an Aho-Corasick multi-pattern matcher used to spot edition,
    bundle and DLC keywords in store titles in a single pass.

Both are safe for concurrent use once constructed.

# TTL

	responses := cache.NewTTL[*recommend.Response](10 * time.Minute)
	defer responses.Close()

	key := cache.GenerateKey("recommend", req)
	if resp, ok := responses.Get(key); ok {
	    return resp, nil
	}

Expired entries read as absent. A janitor goroutine removes them every
cleanup interval until Close is called.

# Automaton

	matcher := cache.NewKeywordMatcher([]string{"deluxe edition", "soundtrack"})
	matcher.Contains("Great Game: DELUXE Edition") // true

Matching is case-insensitive unless the automaton is built with
NewCaseSensitiveAutomaton.
*/
package cache
