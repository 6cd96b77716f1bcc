package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"yts/internal/transcriptcache"
)

const fetchedStampLayout = "2006-01-02 15:04"

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage the transcript cache",
	}

	cacheCmd.AddCommand(newCacheListCommand(ctx))
	cacheCmd.AddCommand(newCacheClearCommand(ctx))

	return cacheCmd
}

func newCacheListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cached transcripts, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, warn, err := openCacheStore(cmd, ctx)
			if warn != "" {
				fmt.Fprintln(cmd.OutOrStdout(), warn)
			}
			if err != nil || store == nil {
				return err
			}
			defer store.Close()

			entries, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeCacheListJSON(cmd, store.Path(), entries)
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No cached transcripts")
				return nil
			}
			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				fetched := "unknown"
				if !entry.FetchedAt.IsZero() {
					fetched = entry.FetchedAt.Local().Format(fetchedStampLayout)
				}
				rows = append(rows, []string{
					entry.VideoID,
					string(entry.Language),
					fmt.Sprintf("%d", len(entry.Transcript.Segments)),
					fetched,
				})
			}
			printTable(out,
				[]string{"Video", "Language", "Segments", "Fetched"},
				rows,
				2,
			)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit cache entries as JSON")
	return cmd
}

func newCacheClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached transcript",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, warn, err := openCacheStore(cmd, ctx)
			if warn != "" {
				fmt.Fprintln(cmd.OutOrStdout(), warn)
			}
			if err != nil || store == nil {
				return err
			}
			defer store.Close()

			removed, err := store.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d cached transcripts\n", removed)
			return nil
		},
	}
}

func openCacheStore(cmd *cobra.Command, ctx *commandContext) (*transcriptcache.Store, string, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, "", err
	}
	if !cfg.Cache.Enabled {
		return nil, "Transcript cache is disabled (set cache.enabled = true in config.toml)", nil
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return nil, "", err
	}
	store, err := transcriptcache.Open(cmd.Context(), cfg.Cache.Path, logger)
	if err != nil {
		return nil, "", fmt.Errorf("open cache: %w", err)
	}
	return store, "", nil
}

func writeCacheListJSON(cmd *cobra.Command, path string, entries []transcriptcache.Entry) error {
	type jsonEntry struct {
		VideoID   string `json:"video_id"`
		Language  string `json:"language"`
		Segments  int    `json:"segments"`
		FetchedAt string `json:"fetched_at"`
	}
	list := make([]jsonEntry, 0, len(entries))
	for _, entry := range entries {
		list = append(list, jsonEntry{
			VideoID:   entry.VideoID,
			Language:  string(entry.Language),
			Segments:  len(entry.Transcript.Segments),
			FetchedAt: entry.FetchedAt.UTC().Format(time.RFC3339),
		})
	}
	return writeJSON(cmd, map[string]any{
		"path":    path,
		"entries": list,
	})
}
