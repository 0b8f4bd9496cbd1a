// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

/*
Package catalog is the boundary to the external game catalog (Steam).

It defines the Source contract consumed by the recommendation engine and a
production implementation, SteamClient, backed by three endpoints:

  - ISteamUser/ResolveVanityURL: profile name to 64-bit Steam ID
  - IPlayerService/GetOwnedGames: owned apps with cumulative playtime
  - store appdetails: per-app metadata (genres, categories, price, reviews)

# Failure Semantics

ResolveIdentity reports "not found" as ok=false with a nil error; only
transport failures are returned as errors. ListEngagement returns an empty
slice for private or empty libraries. FetchDetail never returns an error:
not-found, malformed payloads and transient failures all collapse to
ok=false, and the caller skips the app.

# Resilience

  - Store calls go through a token bucket (golang.org/x/time/rate)
  - HTTP 429 responses are retried with exponential backoff and Retry-After
  - Each endpoint family sits behind a sony/gobreaker circuit breaker
  - Vanity lookups are memoized in an expiring LRU

# Thread Safety

SteamClient is safe for concurrent use by the fan-out workers.
*/
package catalog
