package config

import (
	"os"
	"path/filepath"
)

const (
	defaultFromMarker             = `playerCaptionsTracklistRenderer":`
	defaultToMarker               = `},"videoDetails"`
	defaultWatchURL               = "https://www.youtube.com/watch?v="
	defaultUserAgent              = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	defaultFetchTimeoutSeconds    = 30
	defaultRetryMaxElapsedSeconds = 30
	defaultMaxBodyMB              = 6
	defaultOutputFormat           = "text"
	defaultLogFormat              = "console"
	defaultLogLevel               = "info"
)

// Default returns a Config populated with repository defaults. Language
// is left empty so normalize can consult the YTS_LANG environment
// variable before falling back.
func Default() Config {
	return Config{
		Scrape: Scrape{
			FromMarker: defaultFromMarker,
			ToMarker:   defaultToMarker,
		},
		Fetch: Fetch{
			WatchURL:               defaultWatchURL,
			UserAgent:              defaultUserAgent,
			TimeoutSeconds:         defaultFetchTimeoutSeconds,
			RetryMaxElapsedSeconds: defaultRetryMaxElapsedSeconds,
			MaxBodyMB:              defaultMaxBodyMB,
		},
		Cache: Cache{
			Enabled: true,
			Path:    defaultCachePath(),
		},
		Output: Output{
			Format: defaultOutputFormat,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

func defaultCachePath() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return "~/.cache/yts/transcripts.db"
	}
	return filepath.Join(base, "yts", "transcripts.db")
}
