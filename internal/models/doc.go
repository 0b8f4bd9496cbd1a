// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

// Package models defines the JSON shapes exchanged over the HTTP API:
// the response envelope, the recommendation request body and the health
// and stats payloads. Domain types live in internal/recommend; this package
// only carries what the wire format adds around them.
package models
