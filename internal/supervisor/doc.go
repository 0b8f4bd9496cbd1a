// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

/*
Package supervisor runs the long-lived parts of the server under a
suture/v4 supervision tree.

	tree, _ := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddCacheService(services.NewCacheMaintenanceService(detailCache, engine, cfg, logger))
	tree.AddAPIService(services.NewHTTPServerService(srv, shutdownTimeout, logger))
	err := tree.Serve(ctx)

Services that return an error are restarted with backoff; services that
return context.Canceled during shutdown are not. Supervisor events are
logged through the slog adapter in internal/logging so they share the
zerolog output.
*/
package supervisor
