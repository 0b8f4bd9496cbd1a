// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/gamescout/internal/detailcache"
)

// cacheStats is printed by "cache stats".
type cacheStats struct {
	Backend string `json:"backend"`
	Entries int    `json:"entries"`
	TTL     string `json:"ttl"`
}

// sweepResult is printed by "cache sweep".
type sweepResult struct {
	Backend   string `json:"backend"`
	Removed   int    `json:"removed"`
	Remaining int    `json:"remaining"`
}

func newCacheCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and maintain the app detail cache",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "stats",
			Short: "Print backend, live entry count and TTL",
			Args:  cobra.NoArgs,
			RunE:  c.runCacheStats,
		},
		&cobra.Command{
			Use:   "sweep",
			Short: "Delete expired entries from the configured store",
			Args:  cobra.NoArgs,
			RunE:  c.runCacheSweep,
		},
	)
	return cmd
}

func (c *cli) openCache(cmd *cobra.Command) (detailcache.Store, *detailcache.Cache, error) {
	store, err := detailcache.OpenStore(cmd.Context(), &c.cfg.Cache, &c.cfg.Redis)
	if err != nil {
		return nil, nil, fmt.Errorf("open detail cache store: %w", err)
	}
	return store, detailcache.New(store, c.cfg.Cache.TTL, c.logger), nil
}

func (c *cli) runCacheStats(cmd *cobra.Command, _ []string) error {
	_, dc, err := c.openCache(cmd)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err := dc.Load(cmd.Context()); err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), cacheStats{
		Backend: dc.Backend(),
		Entries: dc.Len(),
		TTL:     dc.TTL().String(),
	})
}

// runCacheSweep counts persisted entries, then loads the cache, which drops
// everything outside the validity window from the store.
func (c *cli) runCacheSweep(cmd *cobra.Command, _ []string) error {
	store, dc, err := c.openCache(cmd)
	if err != nil {
		return err
	}
	defer dc.Close()

	ctx := cmd.Context()
	persisted, err := store.LoadAll(ctx)
	if err != nil && !errors.Is(err, detailcache.ErrCacheCorrupt) {
		return fmt.Errorf("read detail cache: %w", err)
	}
	if err := dc.Load(ctx); err != nil {
		return err
	}
	removed := len(persisted) - dc.Len()
	if removed < 0 {
		removed = 0
	}

	return writeJSON(cmd.OutOrStdout(), sweepResult{
		Backend:   dc.Backend(),
		Removed:   removed,
		Remaining: dc.Len(),
	})
}
