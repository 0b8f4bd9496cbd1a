// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/gamescout/internal/catalog"
	"github.com/tomtom215/gamescout/internal/recommend"
)

// Error codes returned in the envelope.
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeInvalidBody      = "INVALID_BODY"
	CodeIdentityNotFound = "IDENTITY_NOT_FOUND"
	CodeNoOwnedGames     = "NO_OWNED_GAMES"
	CodeNoEngagement     = "NO_ENGAGEMENT_DATA"
	CodeUpstream         = "UPSTREAM_UNAVAILABLE"
	CodeTimeout          = "TIMEOUT"
	CodeRateLimited      = "RATE_LIMITED"
	CodeNotFound         = "NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeNotReady         = "NOT_READY"
	CodeInternal         = "INTERNAL_ERROR"
)

// apiFailure is the HTTP rendering of a domain error.
type apiFailure struct {
	status  int
	code    string
	message string
}

// classifyError maps an engine error to a status, code and user-facing
// message. Unknown errors become a generic 500.
func classifyError(err error) apiFailure {
	switch {
	case errors.Is(err, recommend.ErrInvalidRequest):
		return apiFailure{http.StatusBadRequest, CodeValidation, err.Error()}
	case errors.Is(err, recommend.ErrIdentityNotFound):
		return apiFailure{http.StatusNotFound, CodeIdentityNotFound,
			"Could not find Steam user. Make sure your profile is public and the username is correct!"}
	case errors.Is(err, recommend.ErrNoOwnedGames):
		return apiFailure{http.StatusUnprocessableEntity, CodeNoOwnedGames,
			"Could not retrieve games. Make sure your profile is public!"}
	case errors.Is(err, recommend.ErrNoEngagementData):
		return apiFailure{http.StatusUnprocessableEntity, CodeNoEngagement, "No games with playtime found!"}
	case errors.Is(err, catalog.ErrSourceUnavailable):
		return apiFailure{http.StatusBadGateway, CodeUpstream,
			"Steam is not responding right now. Please try again shortly."}
	case errors.Is(err, context.DeadlineExceeded):
		return apiFailure{http.StatusGatewayTimeout, CodeTimeout, "Generating recommendations took too long"}
	default:
		return apiFailure{http.StatusInternalServerError, CodeInternal, "Failed to generate recommendations"}
	}
}
