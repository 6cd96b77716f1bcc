package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var (
		configFlag  string
		verboseFlag bool
	)

	ctx := newCommandContext(&configFlag, &verboseFlag)

	root := &cobra.Command{
		Use:   "yts",
		Short: "Fetch YouTube video transcripts from the terminal",
		Long: `yts extracts the caption track list embedded in a video's watch page,
downloads the timed-text document for one language, and renders it as a
readable transcript. Fetched transcripts are cached locally so repeat
lookups skip the network.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	root.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to the config file")
	root.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Log at debug level")

	root.AddCommand(
		newTranscriptCommand(ctx),
		newTracksCommand(ctx),
		newLanguagesCommand(),
		newCacheCommand(ctx),
		newConfigCommand(ctx),
	)

	return root
}
