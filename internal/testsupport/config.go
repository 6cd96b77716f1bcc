package testsupport

import (
	"path/filepath"
	"testing"

	"yts/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with a unique temp cache per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Language = "en"
	cfg.Fetch.UserAgent = "yts-test"
	cfg.Cache.Path = filepath.Join(t.TempDir(), "transcripts.db")
	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithWatchURL points the fetch client at a test server.
func WithWatchURL(url string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Fetch.WatchURL = url
	}
}

// WithCacheDisabled turns the transcript cache off.
func WithCacheDisabled() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Cache.Enabled = false
	}
}
