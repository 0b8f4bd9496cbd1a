// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package catalog

import (
	"context"
	"errors"
	"net/url"
	"strings"
)

// ErrSourceUnavailable wraps transport and upstream failures.
var ErrSourceUnavailable = errors.New("catalog source unavailable")

// ErrNotFound is returned internally when the upstream reports no such record.
var ErrNotFound = errors.New("not found")

// Source supplies owned apps and per-app details.
type Source interface {
	// ResolveIdentity maps a profile name to a Steam ID.
	// ok=false with a nil error means the name does not exist.
	ResolveIdentity(ctx context.Context, name string) (id string, ok bool, err error)

	// ListEngagement returns the user's owned apps with playtime.
	// An empty slice is a valid result.
	ListEngagement(ctx context.Context, userID string) ([]EngagementRecord, error)

	// FetchDetail returns the store record for one app.
	// Every failure collapses to ok=false.
	FetchDetail(ctx context.Context, id int64) (ItemDetail, bool)
}

// Identity is a parsed user identity.
type Identity struct {
	// Value is either a 64-bit Steam ID or a vanity name.
	Value string

	// IsID reports whether Value is already a numeric Steam ID.
	IsID bool
}

// ParseIdentity accepts a raw Steam ID, a vanity name, or a pasted
// steamcommunity.com profile URL (/profiles/<id> or /id/<name>).
func ParseIdentity(raw string) (Identity, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Identity{}, false
	}

	if strings.Contains(raw, "steamcommunity.com") {
		if !strings.Contains(raw, "://") {
			raw = "https://" + raw
		}
		u, err := url.Parse(raw)
		if err != nil {
			return Identity{}, false
		}
		parts := strings.Split(strings.Trim(u.Path, "/"), "/")
		if len(parts) < 2 || parts[1] == "" {
			return Identity{}, false
		}
		switch parts[0] {
		case "profiles":
			if isNumeric(parts[1]) {
				return Identity{Value: parts[1], IsID: true}, true
			}
			return Identity{}, false
		case "id":
			return Identity{Value: parts[1]}, true
		default:
			return Identity{}, false
		}
	}

	return Identity{Value: raw, IsID: isNumeric(raw)}, true
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
