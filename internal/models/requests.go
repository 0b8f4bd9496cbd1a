// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package models

// RecommendRequest is the body of POST /api/v1/recommendations.
//
// Pointer fields distinguish "not sent" from zero so the handler can apply
// defaults (price_max 999, sort_by rating) only for omitted values. The
// same names are accepted as HTML form fields.
type RecommendRequest struct {
	SteamID    string   `json:"steam_id" validate:"required,max=256,steam_identity"`
	MinRating  *int     `json:"min_rating,omitempty" validate:"omitempty,min=0,max=100"`
	SortBy     string   `json:"sort_by,omitempty" validate:"omitempty,oneof=match price release_date rating"`
	PriceMin   *float64 `json:"price_min,omitempty" validate:"omitempty,gte=0"`
	PriceMax   *float64 `json:"price_max,omitempty" validate:"omitempty,gte=0"`
	RecentOnly bool     `json:"recent_only,omitempty"`
}
