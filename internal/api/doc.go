// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

/*
Package api exposes the recommendation engine over HTTP.

Routes:

	POST /api/v1/recommendations   run a recommendation (JSON or form body)
	GET  /api/v1/stats             engine, cache and latency statistics
	GET  /api/v1/health            liveness
	GET  /api/v1/health/ready      readiness (detail cache loaded)
	GET  /metrics                  Prometheus exposition
	GET  /swagger/*                OpenAPI spec and UI

Every JSON response uses the models.APIResponse envelope:

	{"status":"success","data":{...},"metadata":{"timestamp":"...","request_id":"..."}}
	{"status":"error","error":{"code":"IDENTITY_NOT_FOUND","message":"..."},"metadata":{...}}

Domain errors are mapped to status codes in one place (errors.go).
*/
package api
