// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

// Package validation wraps go-playground/validator v10 with a shared
// singleton, json-tag field names and messages in the API error format.
//
// Custom tags:
//   - steam_identity: non-empty, printable, no whitespace
//
// Both the HTTP request body (models.RecommendRequest) and the domain
// request (recommend.Request) are checked through ValidateStruct.
package validation
