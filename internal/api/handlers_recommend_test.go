// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/gamescout/internal/catalog"
	"github.com/tomtom215/gamescout/internal/recommend"
)

func TestRecommendations_JSONSuccess(t *testing.T) {
	t.Parallel()

	engine := &fakeRecommender{resp: sampleResponse()}
	srv := newTestServer(engine, &fakeCache{loaded: true}, nil)

	req := jsonRequest(t, `{"steam_id":" 76561197960287930 ","sort_by":"PRICE","min_rating":70}`)
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if env.Status != "success" || env.Error != nil {
		t.Fatalf("unexpected envelope: %+v", env)
	}
	if env.Metadata.RequestID != "req-42" {
		t.Errorf("metadata.request_id = %q, want req-42", env.Metadata.RequestID)
	}
	if env.Metadata.QueryTimeMS != 42 {
		t.Errorf("metadata.query_time_ms = %d, want 42", env.Metadata.QueryTimeMS)
	}

	var data recommend.Response
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(data.RegularRecommendations) != 1 || data.RegularRecommendations[0].ID != 620 {
		t.Errorf("regular_recommendations = %+v", data.RegularRecommendations)
	}
	if data.SaleRecommendations == nil {
		t.Error("sale_recommendations should be an empty list, not null")
	}

	got := engine.lastRequest()
	want := recommend.Request{
		Identity:  "76561197960287930",
		MinRating: 70,
		SortBy:    recommend.SortPrice,
		PriceMax:  recommend.DefaultPriceMax,
	}
	if got != want {
		t.Errorf("engine request = %+v, want %+v", got, want)
	}
}

func TestRecommendations_FormFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		form url.Values
		want recommend.Request
	}{
		{
			name: "only steam_id takes defaults",
			form: url.Values{"steam_id": {"gaben"}},
			want: recommend.Request{Identity: "gaben", SortBy: recommend.SortRating, PriceMax: 999},
		},
		{
			name: "empty optional fields count as omitted",
			form: url.Values{"steam_id": {"gaben"}, "min_rating": {""}, "price_min": {""}, "price_max": {""}, "sort_by": {""}},
			want: recommend.Request{Identity: "gaben", SortBy: recommend.SortRating, PriceMax: 999},
		},
		{
			name: "all fields",
			form: url.Values{
				"steam_id":    {"76561197960287930"},
				"min_rating":  {"80"},
				"sort_by":     {"release_date"},
				"price_min":   {"5"},
				"price_max":   {"29.99"},
				"recent_only": {"on"},
			},
			want: recommend.Request{
				Identity:   "76561197960287930",
				MinRating:  80,
				SortBy:     recommend.SortReleaseDate,
				PriceMin:   5,
				PriceMax:   29.99,
				RecentOnly: true,
			},
		},
		{
			name: "recent_only false",
			form: url.Values{"steam_id": {"gaben"}, "recent_only": {"false"}},
			want: recommend.Request{Identity: "gaben", SortBy: recommend.SortRating, PriceMax: 999},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			engine := &fakeRecommender{resp: sampleResponse()}
			srv := newTestServer(engine, &fakeCache{loaded: true}, nil)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
			}
			if got := engine.lastRequest(); got != tt.want {
				t.Errorf("engine request = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRecommendations_BadInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		body        string
		wantCode    string
		wantMessage string
	}{
		{"malformed json", "application/json", `{"steam_id":`, CodeInvalidBody, "request body must be valid JSON"},
		{"missing steam_id", "application/json", `{}`, CodeValidation, "steam_id is required"},
		{"steam_id with spaces", "application/json", `{"steam_id":"gabe newell"}`, CodeValidation, "steam_id must be a Steam ID"},
		{"rating out of range", "application/json", `{"steam_id":"gaben","min_rating":150}`, CodeValidation, "min_rating must be at most 100"},
		{"unknown sort", "application/json", `{"steam_id":"gaben","sort_by":"name"}`, CodeValidation, "sort_by must be one of"},
		{"negative price", "application/json", `{"steam_id":"gaben","price_min":-1}`, CodeValidation, "price_min must be greater than or equal to 0"},
		{"form price not a number", "application/x-www-form-urlencoded", "steam_id=gaben&price_min=cheap", CodeInvalidBody, "price_min must be a number"},
		{"form rating not a number", "application/x-www-form-urlencoded", "steam_id=gaben&min_rating=high", CodeInvalidBody, "min_rating must be a number"},
		{"form bad checkbox", "application/x-www-form-urlencoded", "steam_id=gaben&recent_only=maybe", CodeInvalidBody, "recent_only must be a boolean"},
		{"bad content type", "text/plain; charset", "x", CodeInvalidBody, "Content-Type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			engine := &fakeRecommender{resp: sampleResponse()}
			srv := newTestServer(engine, &fakeCache{loaded: true}, nil)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
			}
			env := decodeEnvelope(t, rec)
			if env.Status != "error" || env.Error == nil {
				t.Fatalf("expected error envelope, got %+v", env)
			}
			if env.Error.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", env.Error.Code, tt.wantCode)
			}
			if !strings.HasPrefix(env.Error.Message, tt.wantMessage) {
				t.Errorf("message = %q, want prefix %q", env.Error.Message, tt.wantMessage)
			}
			if engine.calls != 0 {
				t.Error("engine should not run for invalid input")
			}
		})
	}
}

func TestRecommendations_EngineErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"identity not found", recommend.ErrIdentityNotFound, http.StatusNotFound, CodeIdentityNotFound},
		{"no owned games", recommend.ErrNoOwnedGames, http.StatusUnprocessableEntity, CodeNoOwnedGames},
		{"no engagement", recommend.ErrNoEngagementData, http.StatusUnprocessableEntity, CodeNoEngagement},
		{"invalid request", fmt.Errorf("%w: price_min 10.00 exceeds price_max 5.00", recommend.ErrInvalidRequest), http.StatusBadRequest, CodeValidation},
		{"steam down", fmt.Errorf("owned games: %w: boom", catalog.ErrSourceUnavailable), http.StatusBadGateway, CodeUpstream},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError, CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := newTestServer(&fakeRecommender{err: tt.err}, &fakeCache{loaded: true}, nil)
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, jsonRequest(t, `{"steam_id":"gaben"}`))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			env := decodeEnvelope(t, rec)
			if env.Error == nil || env.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want code %s", env.Error, tt.wantCode)
			}
			if strings.Contains(rec.Body.String(), "disk on fire") || strings.Contains(rec.Body.String(), "boom") {
				t.Error("internal error text leaked into the response")
			}
		})
	}
}
