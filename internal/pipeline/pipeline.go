package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"yts/internal/captions"
	"yts/internal/config"
	"yts/internal/fetch"
	"yts/internal/language"
	"yts/internal/logging"
	"yts/internal/timedtext"
	"yts/internal/transcript"
	"yts/internal/transcriptcache"
)

// Pipeline runs the fetch, locate, parse, and cache steps behind the
// transcript and tracks operations.
type Pipeline struct {
	cfg     *config.Config
	logger  *slog.Logger
	client  *fetch.Client
	cache   *transcriptcache.Store
	noCache bool
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithoutCache skips the transcript cache for this run, reading and
// writing nothing.
func WithoutCache() Option {
	return func(p *Pipeline) {
		p.noCache = true
	}
}

// Result is a resolved transcript plus where it came from.
type Result struct {
	VideoID    string
	Language   language.Code
	FetchURL   string
	Transcript transcript.Transcript
	FromCache  bool
}

// New builds a Pipeline from configuration. A cache that fails to open
// degrades to a warning; transcript retrieval still works without it.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts ...Option) *Pipeline {
	p := &Pipeline{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "pipeline"),
		client: fetch.New(cfg, logger),
	}
	for _, opt := range opts {
		opt(p)
	}
	if cfg.Cache.Enabled && !p.noCache {
		store, err := transcriptcache.Open(ctx, cfg.Cache.Path, logger)
		if err != nil {
			p.logger.Warn("cache unavailable, continuing without it",
				logging.String(logging.FieldPath, cfg.Cache.Path),
				logging.Error(err))
		} else {
			p.cache = store
		}
	}
	return p
}

// Close releases the cache handle.
func (p *Pipeline) Close() error {
	return p.cache.Close()
}

// Transcript resolves the target to a video ID and returns its
// transcript in the requested language, consulting the cache first.
func (p *Pipeline) Transcript(ctx context.Context, target string, lang language.Code) (Result, error) {
	videoID, err := fetch.ResolveVideoID(target)
	if err != nil {
		return Result{}, err
	}
	logger := p.logger.With(
		logging.String(logging.FieldVideoID, videoID),
		logging.String(logging.FieldLanguage, string(lang)))

	if p.cache != nil {
		entry, err := p.cache.Get(ctx, videoID, lang)
		if err != nil {
			logger.Warn("cache lookup failed", logging.Error(err))
		} else if entry != nil {
			logger.Debug("served from cache")
			return Result{
				VideoID:    videoID,
				Language:   lang,
				FetchURL:   entry.FetchURL,
				Transcript: entry.Transcript,
				FromCache:  true,
			}, nil
		}
	}

	page, err := p.client.WatchPage(ctx, videoID)
	if err != nil {
		return Result{}, fmt.Errorf("fetch watch page: %w", err)
	}

	track, err := captions.Locate(page, p.markers(), lang)
	if err != nil {
		return Result{}, err
	}

	document, err := p.client.TimedText(ctx, track.FetchURL)
	if err != nil {
		return Result{}, fmt.Errorf("fetch timed text: %w", err)
	}

	parsed, err := timedtext.Parse(document)
	if err != nil {
		return Result{}, err
	}

	if p.cache != nil {
		entry := transcriptcache.Entry{
			VideoID:    videoID,
			Language:   lang,
			FetchURL:   track.FetchURL,
			Transcript: parsed,
			FetchedAt:  time.Now(),
		}
		if err := p.cache.Put(ctx, entry); err != nil {
			logger.Warn("cache store failed", logging.Error(err))
		}
	}

	logger.Info("transcript ready", logging.Int("segments", len(parsed.Segments)))
	return Result{
		VideoID:    videoID,
		Language:   lang,
		FetchURL:   track.FetchURL,
		Transcript: parsed,
	}, nil
}

// Tracks resolves the target and lists every caption track its watch
// page advertises.
func (p *Pipeline) Tracks(ctx context.Context, target string) (string, []captions.TrackDetail, error) {
	videoID, err := fetch.ResolveVideoID(target)
	if err != nil {
		return "", nil, err
	}

	page, err := p.client.WatchPage(ctx, videoID)
	if err != nil {
		return "", nil, fmt.Errorf("fetch watch page: %w", err)
	}

	details, err := captions.List(page, p.markers())
	if err != nil {
		return "", nil, err
	}
	return videoID, details, nil
}

func (p *Pipeline) markers() captions.Markers {
	return captions.Markers{
		From: p.cfg.Scrape.FromMarker,
		To:   p.cfg.Scrape.ToMarker,
	}
}
