// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package catalog

import (
	"strings"

	"github.com/goccy/go-json"
)

// EngagementRecord is one owned app and its cumulative playtime.
type EngagementRecord struct {
	// ItemID is the Steam app id.
	ItemID int64 `json:"appid"`

	// UsageMinutes is the lifetime playtime in minutes.
	UsageMinutes int64 `json:"playtime_forever"`
}

// Price is the store price block. Amounts are in cents.
type Price struct {
	InitialCents    int64 `json:"initial"`
	FinalCents      int64 `json:"final"`
	DiscountPercent int   `json:"discount_percent"`
}

// ItemDetail is the normalized store record for one app.
// Once stored in the detail cache it is treated as immutable.
type ItemDetail struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`

	// Type is the store product type: game, dlc, demo, music, ...
	Type string `json:"type"`

	// Tags are the store genres ("Action", "RPG").
	Tags []string `json:"tags"`

	// Categories are store feature categories ("Single-player", "Steam Achievements").
	Categories []string `json:"categories"`

	// ReviewCount is the total number of user recommendations.
	ReviewCount int64 `json:"review_count"`

	// CriticScore is the Metacritic score, 0 when absent.
	CriticScore int `json:"critic_score"`

	// Price is nil for free or unpriced apps.
	Price *Price `json:"price,omitempty"`

	// ReleaseDate is the raw store date string ("21 Aug, 2023", "Coming soon", "TBA").
	ReleaseDate string `json:"release_date"`
	ComingSoon  bool   `json:"coming_soon"`

	HeaderImage      string   `json:"header_image,omitempty"`
	ShortDescription string   `json:"short_description,omitempty"`
	Developers       []string `json:"developers,omitempty"`
	Publishers       []string `json:"publishers,omitempty"`
}

// vanityResponse is the ISteamUser/ResolveVanityURL payload.
type vanityResponse struct {
	Response struct {
		SteamID string `json:"steamid"`
		Success int    `json:"success"`
		Message string `json:"message"`
	} `json:"response"`
}

// ownedGamesResponse is the IPlayerService/GetOwnedGames payload.
// A private profile returns an empty response object.
type ownedGamesResponse struct {
	Response struct {
		GameCount int                `json:"game_count"`
		Games     []EngagementRecord `json:"games"`
	} `json:"response"`
}

// appDetailsEnvelope is keyed by the requested app id. Data is kept raw
// because the store sends an empty array instead of an object on failure.
type appDetailsEnvelope map[string]struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

type descriptionList []struct {
	Description string `json:"description"`
}

func (d descriptionList) strings() []string {
	out := make([]string, 0, len(d))
	for _, item := range d {
		if item.Description != "" {
			out = append(out, item.Description)
		}
	}
	return out
}

// steamAppData is the subset of the store appdetails "data" object we use.
type steamAppData struct {
	Type            string          `json:"type"`
	Name            string          `json:"name"`
	SteamAppID      int64           `json:"steam_appid"`
	Genres          descriptionList `json:"genres"`
	Categories      descriptionList `json:"categories"`
	Recommendations *struct {
		Total int64 `json:"total"`
	} `json:"recommendations"`
	Metacritic *struct {
		Score int `json:"score"`
	} `json:"metacritic"`
	PriceOverview *Price `json:"price_overview"`
	ReleaseDate   struct {
		ComingSoon bool   `json:"coming_soon"`
		Date       string `json:"date"`
	} `json:"release_date"`
	HeaderImage      string   `json:"header_image"`
	ShortDescription string   `json:"short_description"`
	Developers       []string `json:"developers"`
	Publishers       []string `json:"publishers"`
}

// toItemDetail normalizes a store record. id is the requested app id, which
// wins over steam_appid when the store redirects to a different package.
// A record without a type is treated as a game.
func (d *steamAppData) toItemDetail(id int64) ItemDetail {
	productType := d.Type
	if strings.TrimSpace(productType) == "" {
		productType = "game"
	}
	detail := ItemDetail{
		ID:               id,
		Name:             d.Name,
		Type:             productType,
		Tags:             d.Genres.strings(),
		Categories:       d.Categories.strings(),
		ReleaseDate:      d.ReleaseDate.Date,
		ComingSoon:       d.ReleaseDate.ComingSoon,
		HeaderImage:      d.HeaderImage,
		ShortDescription: d.ShortDescription,
		Developers:       d.Developers,
		Publishers:       d.Publishers,
	}
	if d.Recommendations != nil {
		detail.ReviewCount = d.Recommendations.Total
	}
	if d.Metacritic != nil {
		detail.CriticScore = d.Metacritic.Score
	}
	if d.PriceOverview != nil {
		p := *d.PriceOverview
		detail.Price = &p
	}
	return detail
}
