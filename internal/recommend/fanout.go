// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package recommend

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/gamescout/internal/metrics"
)

// DedupPolicy picks the surviving variant when several candidates share a
// normalized base name.
type DedupPolicy string

const (
	// DedupFirstArrival keeps whichever variant finishes scoring first.
	// With more than one worker the winner depends on fetch latency.
	DedupFirstArrival DedupPolicy = "first_arrival"

	// DedupDeterministic keeps the lowest app id.
	DedupDeterministic DedupPolicy = "deterministic"

	// DedupHighestScore keeps the best match score, ties to the lowest id.
	DedupHighestScore DedupPolicy = "highest_score"
)

// ParseDedupPolicy validates a policy name. Empty selects DedupFirstArrival.
func ParseDedupPolicy(s string) (DedupPolicy, error) {
	switch p := DedupPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DedupFirstArrival, nil
	case DedupFirstArrival, DedupDeterministic, DedupHighestScore:
		return p, nil
	default:
		return "", fmt.Errorf("unknown dedup policy %q", s)
	}
}

var keyStripper = strings.NewReplacer(":", "", "-", "", " ", "")

// NormalizeKey folds a base name for duplicate detection: lowercase, a
// leading "the " removed, then colons, hyphens and spaces dropped.
func NormalizeKey(baseName string) string {
	k := strings.ToLower(baseName)
	k = strings.TrimPrefix(k, "the ")
	return keyStripper.Replace(k)
}

// seenRegistry records normalized keys already taken during one run.
type seenRegistry struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

func newSeenRegistry() *seenRegistry {
	return &seenRegistry{keys: make(map[string]struct{})}
}

// claim inserts key and reports whether it was absent.
func (r *seenRegistry) claim(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.keys[key]; ok {
		return false
	}
	r.keys[key] = struct{}{}
	return true
}

// EvaluationStats counts outcomes of one fan-out run.
type EvaluationStats struct {
	Evaluated  int             `json:"evaluated"`
	Included   int             `json:"included"`
	Duplicates int             `json:"duplicates"`
	Excluded   map[Outcome]int `json:"excluded"`
}

// Evaluator scores a candidate list concurrently and removes duplicates.
type Evaluator struct {
	scorer  *Scorer
	workers int
	policy  DedupPolicy
	logger  zerolog.Logger
}

// NewEvaluator creates an evaluator with a bounded worker pool.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewEvaluator(scorer *Scorer, workers int, policy DedupPolicy, logger zerolog.Logger) *Evaluator {
	if workers < 1 {
		workers = DefaultFetchPool
	}
	if policy == "" {
		policy = DedupFirstArrival
	}
	return &Evaluator{
		scorer:  scorer,
		workers: workers,
		policy:  policy,
		logger:  logger.With().Str("component", "evaluator").Logger(),
	}
}

// Policy returns the configured dedup policy.
func (e *Evaluator) Policy() DedupPolicy {
	return e.policy
}

// scored is one candidate's outcome, kept for the ordered policies.
type scored struct {
	result  CandidateResult
	outcome Outcome
}

// Evaluate scores every candidate and returns one survivor per normalized
// base name. A candidate that fails for any reason is left out; the run only
// fails when ctx is done.
//
//nolint:gocritic // hugeParam: input is read-only and shared across workers
func (e *Evaluator) Evaluate(ctx context.Context, candidates []int64, in ScoreInput) ([]CandidateResult, EvaluationStats, error) {
	ids := dedupIDs(candidates)

	var (
		results []CandidateResult
		stats   EvaluationStats
		err     error
	)
	switch e.policy {
	case DedupDeterministic, DedupHighestScore:
		results, stats, err = e.evaluateOrdered(ctx, ids, in)
	default:
		results, stats, err = e.evaluateFirstArrival(ctx, ids, in)
	}
	if err != nil {
		return nil, stats, err
	}

	e.logger.Debug().
		Str("policy", string(e.policy)).
		Int("evaluated", stats.Evaluated).
		Int("included", stats.Included).
		Int("duplicates", stats.Duplicates).
		Msg("Candidates evaluated")
	return results, stats, nil
}

// evaluateFirstArrival dedups as results arrive. With one worker, g.Go
// blocks until the previous candidate finished, so the run is sequential in
// list order.
//
//nolint:gocritic // hugeParam: input is read-only and shared across workers
func (e *Evaluator) evaluateFirstArrival(ctx context.Context, ids []int64, in ScoreInput) ([]CandidateResult, EvaluationStats, error) {
	seen := newSeenRegistry()
	var (
		mu      sync.Mutex
		results []CandidateResult
	)
	tally := newTally(len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for _, id := range ids {
		g.Go(func() error {
			res, outcome := e.scorer.Evaluate(gctx, id, in)
			if outcome == OutcomeIncluded && !seen.claim(NormalizeKey(res.BaseName)) {
				outcome = OutcomeDuplicate
			}
			tally.record(outcome)
			if outcome == OutcomeIncluded {
				mu.Lock()
				results = append(results, res)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, tally.stats(), err
	}
	return results, tally.stats(), nil
}

// evaluateOrdered scores everything first, then dedups in ascending id
// order so the outcome does not depend on scheduling.
//
//nolint:gocritic // hugeParam: input is read-only and shared across workers
func (e *Evaluator) evaluateOrdered(ctx context.Context, ids []int64, in ScoreInput) ([]CandidateResult, EvaluationStats, error) {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)

	slots := make([]scored, len(sorted))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, id := range sorted {
		g.Go(func() error {
			res, outcome := e.scorer.Evaluate(gctx, id, in)
			slots[i] = scored{result: res, outcome: outcome}
			return nil
		})
	}
	_ = g.Wait()

	tally := newTally(len(sorted))
	if err := ctx.Err(); err != nil {
		return nil, tally.stats(), err
	}

	winners := make(map[string]int) // normalized key -> slot index
	var order []string
	for i := range slots {
		if slots[i].outcome != OutcomeIncluded {
			continue
		}
		key := NormalizeKey(slots[i].result.BaseName)
		cur, ok := winners[key]
		switch {
		case !ok:
			winners[key] = i
			order = append(order, key)
		case e.policy == DedupHighestScore && slots[i].result.MatchScore > slots[cur].result.MatchScore:
			slots[cur].outcome = OutcomeDuplicate
			winners[key] = i
		default:
			slots[i].outcome = OutcomeDuplicate
		}
	}

	for i := range slots {
		tally.record(slots[i].outcome)
	}

	results := make([]CandidateResult, 0, len(order))
	for _, key := range order {
		results = append(results, slots[winners[key]].result)
	}
	slices.SortFunc(results, func(a, b CandidateResult) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return results, tally.stats(), nil
}

// tally is a concurrency-safe outcome counter that also feeds metrics.
type tally struct {
	mu sync.Mutex
	s  EvaluationStats
}

func newTally(n int) *tally {
	return &tally{s: EvaluationStats{Evaluated: n, Excluded: make(map[Outcome]int)}}
}

func (t *tally) record(o Outcome) {
	metrics.RecordCandidateOutcome(string(o))

	t.mu.Lock()
	defer t.mu.Unlock()
	switch o {
	case OutcomeIncluded:
		t.s.Included++
	case OutcomeDuplicate:
		t.s.Duplicates++
	default:
		t.s.Excluded[o]++
	}
}

func (t *tally) stats() EvaluationStats {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := t.s
	out.Excluded = make(map[Outcome]int, len(t.s.Excluded))
	for k, v := range t.s.Excluded {
		out.Excluded[k] = v
	}
	return out
}
