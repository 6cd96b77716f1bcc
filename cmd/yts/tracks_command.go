package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"yts/internal/captions"
	"yts/internal/language"
	"yts/internal/pipeline"
)

func newTracksCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "tracks <video>",
		Short: "List the caption tracks a video advertises",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withPipeline(cmd, func(p *pipeline.Pipeline) error {
				videoID, details, err := p.Tracks(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if asJSON {
					return writeTracksJSON(cmd, videoID, details)
				}
				out := cmd.OutOrStdout()
				if len(details) == 0 {
					fmt.Fprintf(out, "Video %s has no caption tracks\n", videoID)
					return nil
				}
				rows := make([][]string, 0, len(details))
				for _, d := range details {
					name := d.Name
					if name == "" {
						name = language.Describe(d.Language)
					}
					auto := ""
					if d.Kind == "asr" {
						auto = "yes"
					}
					rows = append(rows, []string{d.Language, name, auto})
				}
				fmt.Fprintf(out, "Caption tracks for %s:\n", videoID)
				printTable(out,
					[]string{"Code", "Name", "Auto-generated"},
					rows,
				)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the track list as JSON")
	return cmd
}

func writeTracksJSON(cmd *cobra.Command, videoID string, details []captions.TrackDetail) error {
	type jsonTrack struct {
		Language string `json:"language"`
		Name     string `json:"name"`
		Kind     string `json:"kind,omitempty"`
		FetchURL string `json:"fetch_url"`
	}
	tracks := make([]jsonTrack, 0, len(details))
	for _, d := range details {
		tracks = append(tracks, jsonTrack{
			Language: d.Language,
			Name:     d.Name,
			Kind:     d.Kind,
			FetchURL: d.FetchURL,
		})
	}
	return writeJSON(cmd, map[string]any{
		"video_id": videoID,
		"tracks":   tracks,
	})
}
