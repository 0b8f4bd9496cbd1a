// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

// @title Gamescout API
// @version 1.0
// @description Recommends Steam games from a player's own play history.
// @description
// @description The engine weights the tags of the player's most played games,
// @description scores a catalog of candidates against them and splits the result
// @description into regular and on-sale lists.
// @description
// @description ## Error Responses
// @description
// @description Every response uses the same envelope. Failures carry
// @description `error.code` (for example `IDENTITY_NOT_FOUND`, `UPSTREAM_UNAVAILABLE`)
// @description and a human-readable `error.message`.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/gamescout/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Recommendations
// @tag.description Game recommendations for a Steam identity
//
// @tag.name Core
// @tag.description Health checks and runtime statistics
package main

//go:generate swag init -g docs.go -d ./,../../internal/api,../../internal/models,../../internal/recommend -o ../../docs
