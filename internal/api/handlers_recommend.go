// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package api

import (
	"errors"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/gamescout/internal/models"
	"github.com/tomtom215/gamescout/internal/recommend"
	"github.com/tomtom215/gamescout/internal/validation"
)

const (
	maxBodyBytes      = 1 << 20
	maxMultipartBytes = 32 << 10
)

// bodyError is a malformed request body or form field.
type bodyError struct {
	field string
	err   error
}

func (e *bodyError) Error() string {
	if e.field == "" {
		return "request body must be valid JSON"
	}
	return e.field + " " + e.err.Error()
}

func (e *bodyError) Unwrap() error { return e.err }

var (
	errNotNumber  = errors.New("must be a number")
	errNotBoolean = errors.New("must be a boolean")
)

// Recommendations handles POST /api/v1/recommendations.
//
// Accepts a JSON body or the form fields steam_id, min_rating, sort_by,
// price_min, price_max and recent_only. Omitted fields take the defaults
// of recommend.NewRequest.
//
// @Summary Recommend games from play history
// @Description Builds a preference profile from the player's most played games and returns scored regular and on-sale recommendations.
// @Tags Recommendations
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body models.RecommendRequest true "Steam identity and filters"
// @Success 200 {object} models.APIResponse{data=recommend.Response} "Recommendations generated"
// @Failure 400 {object} models.APIResponse "Invalid body or failed validation"
// @Failure 404 {object} models.APIResponse "Steam identity not found"
// @Failure 422 {object} models.APIResponse "No owned games or no playtime"
// @Failure 429 {object} models.APIResponse "Rate limit exceeded"
// @Failure 502 {object} models.APIResponse "Steam unavailable"
// @Failure 504 {object} models.APIResponse "Request timed out"
// @Router /recommendations [post]
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	in, err := decodeRecommendRequest(w, r)
	if err != nil {
		var be *bodyError
		if errors.As(err, &be) {
			respondError(w, r, http.StatusBadRequest, CodeInvalidBody, be.Error(), nil)
			return
		}
		respondError(w, r, http.StatusBadRequest, CodeInvalidBody, "Could not read request body", err)
		return
	}

	if verr := validation.ValidateStruct(&in); verr != nil {
		apiErr := verr.ToAPIError()
		respondJSON(w, http.StatusBadRequest, &models.APIResponse{
			Status:   models.StatusError,
			Metadata: newMetadata(r),
			Error: &models.APIError{
				Code:    apiErr.Code,
				Message: apiErr.Message,
				Details: apiErr.Details,
			},
		})
		return
	}

	resp, err := h.engine.Recommend(r.Context(), toDomainRequest(&in))
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	meta := newMetadata(r)
	meta.QueryTimeMS = resp.Metadata.LatencyMS
	meta.Cached = resp.Metadata.CacheHit
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   models.StatusSuccess,
		Data:     resp,
		Metadata: meta,
	})
}

// decodeRecommendRequest reads JSON or form input into the wire struct.
func decodeRecommendRequest(w http.ResponseWriter, r *http.Request) (models.RecommendRequest, error) {
	var in models.RecommendRequest

	mediaType := "application/json"
	if ct := r.Header.Get("Content-Type"); ct != "" {
		parsed, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return in, &bodyError{field: "Content-Type", err: err}
		}
		mediaType = parsed
	}

	switch mediaType {
	case "application/x-www-form-urlencoded":
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := r.ParseForm(); err != nil {
			return in, err
		}
		return formRequest(r)
	case "multipart/form-data":
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := r.ParseMultipartForm(maxMultipartBytes); err != nil {
			return in, err
		}
		return formRequest(r)
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&in); err != nil {
		return in, &bodyError{err: err}
	}
	in.SteamID = strings.TrimSpace(in.SteamID)
	in.SortBy = strings.ToLower(strings.TrimSpace(in.SortBy))
	return in, nil
}

// formRequest maps HTML form fields onto the wire struct. Empty values
// count as omitted.
func formRequest(r *http.Request) (models.RecommendRequest, error) {
	in := models.RecommendRequest{
		SteamID: strings.TrimSpace(r.FormValue("steam_id")),
		SortBy:  strings.ToLower(strings.TrimSpace(r.FormValue("sort_by"))),
	}

	if v := strings.TrimSpace(r.FormValue("min_rating")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return in, &bodyError{field: "min_rating", err: errNotNumber}
		}
		in.MinRating = &n
	}

	for _, f := range []struct {
		name string
		dst  **float64
	}{
		{"price_min", &in.PriceMin},
		{"price_max", &in.PriceMax},
	} {
		v := strings.TrimSpace(r.FormValue(f.name))
		if v == "" {
			continue
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return in, &bodyError{field: f.name, err: errNotNumber}
		}
		*f.dst = &n
	}

	if v := strings.TrimSpace(r.FormValue("recent_only")); v != "" {
		on, err := parseCheckbox(v)
		if err != nil {
			return in, &bodyError{field: "recent_only", err: err}
		}
		in.RecentOnly = on
	}

	return in, nil
}

// parseCheckbox accepts HTML checkbox "on" as well as strconv booleans.
func parseCheckbox(v string) (bool, error) {
	if strings.EqualFold(v, "on") {
		return true, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errNotBoolean
	}
	return b, nil
}

// toDomainRequest applies wire values over the engine defaults.
func toDomainRequest(in *models.RecommendRequest) recommend.Request {
	req := recommend.NewRequest(in.SteamID)
	if in.MinRating != nil {
		req.MinRating = float64(*in.MinRating)
	}
	if in.SortBy != "" {
		req.SortBy = recommend.ParseSortMode(in.SortBy)
	}
	if in.PriceMin != nil {
		req.PriceMin = *in.PriceMin
	}
	if in.PriceMax != nil {
		req.PriceMax = *in.PriceMax
	}
	req.RecentOnly = in.RecentOnly
	return req
}
