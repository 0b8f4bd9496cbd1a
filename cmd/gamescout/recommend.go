// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/gamescout/internal/app"
	"github.com/tomtom215/gamescout/internal/recommend"
)

type recommendFlags struct {
	minRating  float64
	sortBy     string
	priceMin   float64
	priceMax   float64
	recentOnly bool
}

func newRecommendCmd(c *cli) *cobra.Command {
	var f recommendFlags

	cmd := &cobra.Command{
		Use:   "recommend <steam-id|vanity-name|profile-url>",
		Short: "Recommend games for a Steam profile",
		Long:  "Loads the detail cache, runs one recommendation for the given profile and prints the response as JSON. New store lookups are written back to the cache.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRecommend(cmd, args[0], f)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&f.minRating, "min-rating", 0, "Drop candidates rated below this (0-100)")
	flags.StringVar(&f.sortBy, "sort-by", string(recommend.SortRating), "Sort order: rating, match, price or release_date")
	flags.Float64Var(&f.priceMin, "price-min", 0, "Minimum effective price in dollars")
	flags.Float64Var(&f.priceMax, "price-max", recommend.DefaultPriceMax, "Maximum effective price in dollars")
	flags.BoolVar(&f.recentOnly, "recent-only", false, "Only titles released in the last 365 days")

	return cmd
}

func (c *cli) runRecommend(cmd *cobra.Command, identity string, f recommendFlags) error {
	ctx := cmd.Context()

	components, err := app.Build(ctx, c.cfg, c.logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := components.Close(); cerr != nil {
			c.logger.Warn().Err(cerr).Msg("Error closing components")
		}
	}()

	if err := components.DetailCache.Load(ctx); err != nil {
		return err
	}

	req := recommend.NewRequest(identity)
	req.MinRating = f.minRating
	req.SortBy = recommend.SortMode(f.sortBy)
	req.PriceMin = f.priceMin
	req.PriceMax = f.priceMax
	req.RecentOnly = f.recentOnly

	resp, err := components.Engine.Recommend(ctx, req)
	if err != nil {
		return fmt.Errorf("recommend %q: %w", identity, err)
	}
	return writeJSON(cmd.OutOrStdout(), resp)
}
