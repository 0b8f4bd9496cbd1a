// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package recommend

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tomtom215/gamescout/internal/catalog"
)

// mapDetails is an in-memory DetailSource with optional per-id latency.
type mapDetails struct {
	mu      sync.Mutex
	details map[int64]catalog.ItemDetail
	delay   map[int64]time.Duration
	calls   atomic.Int64
}

func newMapDetails(ds ...catalog.ItemDetail) *mapDetails {
	m := &mapDetails{details: make(map[int64]catalog.ItemDetail), delay: make(map[int64]time.Duration)}
	for _, d := range ds {
		m.details[d.ID] = d
	}
	return m
}

func (m *mapDetails) Detail(ctx context.Context, id int64) (catalog.ItemDetail, bool) {
	m.calls.Add(1)

	m.mu.Lock()
	d, ok := m.details[id]
	delay := m.delay[id]
	m.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return catalog.ItemDetail{}, false
		}
	}
	if ctx.Err() != nil {
		return catalog.ItemDetail{}, false
	}
	return d, ok
}

// fakeSource is a catalog.Source backed by maps.
type fakeSource struct {
	vanity      map[string]string
	libraries   map[string][]catalog.EngagementRecord
	details     map[int64]catalog.ItemDetail
	resolveErr  error
	listErr     error
	listCalls   atomic.Int64
	detailCalls atomic.Int64
}

func (f *fakeSource) ResolveIdentity(_ context.Context, name string) (string, bool, error) {
	if f.resolveErr != nil {
		return "", false, f.resolveErr
	}
	id, ok := f.vanity[name]
	return id, ok, nil
}

func (f *fakeSource) ListEngagement(_ context.Context, userID string) ([]catalog.EngagementRecord, error) {
	f.listCalls.Add(1)
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.libraries[userID], nil
}

func (f *fakeSource) FetchDetail(_ context.Context, id int64) (catalog.ItemDetail, bool) {
	f.detailCalls.Add(1)
	d, ok := f.details[id]
	return d, ok
}

// game builds a base-product detail.
func game(id int64, name string, tags ...string) catalog.ItemDetail {
	return catalog.ItemDetail{
		ID:          id,
		Name:        name,
		Type:        "game",
		Tags:        tags,
		ReviewCount: 20000,
		ReleaseDate: "10 Oct, 2020",
		Price:       &catalog.Price{InitialCents: 2999, FinalCents: 2999},
	}
}

func onSale(d catalog.ItemDetail, discount int) catalog.ItemDetail {
	p := *d.Price
	p.DiscountPercent = discount
	p.FinalCents = p.InitialCents * int64(100-discount) / 100
	d.Price = &p
	return d
}

func withPrice(d catalog.ItemDetail, cents int64) catalog.ItemDetail {
	d.Price = &catalog.Price{InitialCents: cents, FinalCents: cents}
	return d
}

// heavySignals gives "Action" a weight of 45 so a single matching tag
// normalizes to a score of 5.
func heavySignals() Signals {
	return Signals{
		TagWeights: map[string]float64{"Action": 45, "RPG": 20, "Indie": 3},
		TopTags:    []string{"Action", "RPG", "Indie"},
		Categories: []string{"Single-player"},
	}
}
