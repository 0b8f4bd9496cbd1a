// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

// Package recommend turns a player's Steam play history into game
// recommendations.
//
// # Pipeline
//
// A request flows through four stages:
//
//  1. ExtractPreferences keeps the above-average titles of the library, takes
//     the 30 most played and folds their genres into positional tag weights
//     (most played = highest weight) plus an unweighted category count.
//  2. Evaluator fans the fixed candidate list out over a bounded errgroup.
//     Each worker runs Scorer.Score, which fetches the detail (cache first),
//     applies the exclusion chain and produces a CandidateResult.
//  3. A seen-registry collapses variants of the same product ("Title: Deluxe",
//     "The Title") onto one normalized key while results stream in.
//  4. Assemble splits survivors into sale and regular buckets, sorts and
//     truncates them, and attaches library statistics.
//
// Engine wires the stages together, resolves vanity names, and memoizes whole
// responses for a short TTL.
//
// # Dedup Policy
//
// The default DedupFirstArrival keeps whichever variant finishes first. With
// more than one worker that is decided by fetch latency, so the winning
// variant can differ between runs while the set of normalized keys does not.
// DedupDeterministic and DedupHighestScore give reproducible winners.
//
// # Usage
//
//	engine, err := recommend.NewEngine(source, details, recommend.DefaultConfig(), logger)
//	resp, err := engine.Recommend(ctx, recommend.Request{
//	    Identity:  "gaben",
//	    MinRating: 70,
//	    SortBy:    recommend.SortPrice,
//	    PriceMax:  999,
//	})
//
// # Thread Safety
//
// Engine, Evaluator and Scorer are safe for concurrent use. Shared mutable
// state is limited to the detail cache and the per-run seen registry, both
// mutex guarded.
package recommend
