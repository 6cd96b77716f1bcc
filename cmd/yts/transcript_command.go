package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"yts/internal/captions"
	"yts/internal/language"
	"yts/internal/pipeline"
)

func newTranscriptCommand(ctx *commandContext) *cobra.Command {
	var languageFlag string
	var formatFlag string
	var noCacheFlag bool

	cmd := &cobra.Command{
		Use:   "transcript <video>",
		Short: "Fetch and render the transcript of a video",
		Long: `Fetch and render the transcript of a video.

The video may be given as a watch URL, a short youtu.be link, an embed
or shorts link, or the bare 11-character video ID.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			lang := language.Code(cfg.Language)
			if raw := strings.TrimSpace(languageFlag); raw != "" {
				code, err := language.Parse(raw)
				if err != nil {
					return err
				}
				lang = code
			}

			format := cfg.Output.Format
			if raw := strings.TrimSpace(formatFlag); raw != "" {
				switch raw {
				case "text", "json":
					format = raw
				default:
					return fmt.Errorf("unsupported output format %q (expected text or json)", formatFlag)
				}
			}

			var opts []pipeline.Option
			if noCacheFlag {
				opts = append(opts, pipeline.WithoutCache())
			}
			return ctx.withPipeline(cmd, func(p *pipeline.Pipeline) error {
				result, err := p.Transcript(cmd.Context(), args[0], lang)
				if err != nil {
					var langErr *captions.LanguageError
					if errors.As(err, &langErr) {
						printHint(cmd.ErrOrStderr(), fmt.Sprintf(
							"Run 'yts tracks %s' to list the caption languages this video carries.", args[0]))
					}
					return err
				}
				if format == "json" {
					return writeTranscriptJSON(cmd, result)
				}
				fmt.Fprint(cmd.OutOrStdout(), result.Transcript.Render())
				return nil
			}, opts...)
		},
	}

	cmd.Flags().StringVarP(&languageFlag, "language", "l", "", "Caption language code (defaults to the configured language)")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Output format: text or json (defaults to output.format)")
	cmd.Flags().BoolVar(&noCacheFlag, "no-cache", false, "Bypass the transcript cache")
	return cmd
}

func writeTranscriptJSON(cmd *cobra.Command, result pipeline.Result) error {
	type jsonSegment struct {
		Text       string `json:"text"`
		StartMS    int64  `json:"start_ms"`
		DurationMS int64  `json:"duration_ms"`
	}
	segments := make([]jsonSegment, 0, len(result.Transcript.Segments))
	for _, seg := range result.Transcript.Segments {
		segments = append(segments, jsonSegment{
			Text:       seg.Text,
			StartMS:    seg.Start.Milliseconds(),
			DurationMS: seg.Length.Milliseconds(),
		})
	}
	return writeJSON(cmd, map[string]any{
		"video_id":   result.VideoID,
		"language":   string(result.Language),
		"fetch_url":  result.FetchURL,
		"from_cache": result.FromCache,
		"segments":   segments,
	})
}
