// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

/*
Package services provides suture.Service wrappers for gamescout components.

Each wrapper translates a component lifecycle into suture's
Serve(ctx) error contract:

  - HTTPServerService: ListenAndServe with graceful Shutdown on cancel
  - CacheMaintenanceService: initial detail cache load, then periodic
    sweeps of expired detail records and cached responses

Returning ctx.Err() on shutdown tells suture the stop was requested; any
other error is treated as a crash and restarted with backoff.
*/
package services
