// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

/*
Gamescout server: recommends Steam games from a player's own play history.

The server loads configuration (defaults, optional YAML file, environment),
assembles the detail cache, Steam client and recommendation engine, and
runs them under a suture supervision tree:

	gamescout (root)
	├── cache-layer
	│   └── cache-maintenance   load detail cache, sweep expired entries
	└── api-layer
	    └── http-server         chi router on HTTP_HOST:HTTP_PORT

Required environment:

	STEAM_API_KEY         Steam Web API key

Common overrides:

	HTTP_PORT             listen port (default 5000)
	CACHE_BACKEND         file, badger, redis or memory (default file)
	CACHE_PATH            file or directory for file/badger backends
	REDIS_ADDR            redis address for the redis backend
	RECOMMEND_WORKERS     candidate fan-out concurrency (default 10)
	LOG_LEVEL, LOG_FORMAT logging

SIGINT and SIGTERM trigger a graceful shutdown.
*/
package main
