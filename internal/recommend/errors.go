// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package recommend

import "errors"

// Errors surfaced to callers. Per-candidate failures never appear here; a
// candidate that cannot be fetched or scored is simply left out.
var (
	// ErrIdentityNotFound means a vanity name did not resolve to an account.
	ErrIdentityNotFound = errors.New("steam profile not found")

	// ErrNoOwnedGames means the account's library is empty or private.
	ErrNoOwnedGames = errors.New("no games found in library (is the profile public?)")

	// ErrNoEngagementData means games are owned but none have been played.
	ErrNoEngagementData = errors.New("no playtime recorded for any owned game")

	// ErrInvalidRequest wraps request validation failures.
	ErrInvalidRequest = errors.New("invalid recommendation request")
)
