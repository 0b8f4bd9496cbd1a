// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/v1/recommendations", "200"))

	RecordAPIRequest("POST", "/api/v1/recommendations", "200", 150*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/v1/recommendations", "200"))
	if after != before+1 {
		t.Errorf("api_requests_total = %v, want %v", after, before+1)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("after inc = %v, want %v", got, before+1)
	}

	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("after dec = %v, want %v", got, before)
	}
}

func TestRecordRecommendation(t *testing.T) {
	before := testutil.ToFloat64(RecommendRequests.WithLabelValues("success"))

	RecordRecommendation("success", 2*time.Second)

	if got := testutil.ToFloat64(RecommendRequests.WithLabelValues("success")); got != before+1 {
		t.Errorf("recommend_requests_total{success} = %v, want %v", got, before+1)
	}
}

func TestRecordCacheLookups(t *testing.T) {
	tests := []struct {
		name   string
		record func(bool)
		hit    bool
		label  string
		read   func(string) float64
	}{
		{
			name:   "detail hit",
			record: RecordDetailCacheLookup,
			hit:    true,
			label:  "hit",
			read:   func(l string) float64 { return testutil.ToFloat64(DetailCacheLookups.WithLabelValues(l)) },
		},
		{
			name:   "detail miss",
			record: RecordDetailCacheLookup,
			hit:    false,
			label:  "miss",
			read:   func(l string) float64 { return testutil.ToFloat64(DetailCacheLookups.WithLabelValues(l)) },
		},
		{
			name:   "response hit",
			record: RecordResponseCache,
			hit:    true,
			label:  "hit",
			read:   func(l string) float64 { return testutil.ToFloat64(RecommendResponseCache.WithLabelValues(l)) },
		},
		{
			name:   "response miss",
			record: RecordResponseCache,
			hit:    false,
			label:  "miss",
			read:   func(l string) float64 { return testutil.ToFloat64(RecommendResponseCache.WithLabelValues(l)) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.read(tt.label)
			tt.record(tt.hit)
			if got := tt.read(tt.label); got != before+1 {
				t.Errorf("%s counter = %v, want %v", tt.label, got, before+1)
			}
		})
	}
}

func TestRecordSteamRequest(t *testing.T) {
	before := testutil.ToFloat64(SteamRequests.WithLabelValues("appdetails", "not_found"))

	RecordSteamRequest("appdetails", "not_found", 80*time.Millisecond)

	if got := testutil.ToFloat64(SteamRequests.WithLabelValues("appdetails", "not_found")); got != before+1 {
		t.Errorf("steam_requests_total = %v, want %v", got, before+1)
	}
}

func TestRecordCandidateOutcome(t *testing.T) {
	before := testutil.ToFloat64(RecommendCandidates.WithLabelValues("duplicate"))

	RecordCandidateOutcome("duplicate")
	RecordCandidateOutcome("duplicate")

	if got := testutil.ToFloat64(RecommendCandidates.WithLabelValues("duplicate")); got != before+2 {
		t.Errorf("recommend_candidates_total{duplicate} = %v, want %v", got, before+2)
	}
}
