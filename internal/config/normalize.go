package config

import (
	"fmt"
	"os"
	"strings"

	"yts/internal/language"
)

func (c *Config) normalize() error {
	c.normalizeLanguage()
	c.normalizeScrape()
	c.normalizeFetch()
	if err := c.normalizeCache(); err != nil {
		return err
	}
	c.normalizeOutput()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeLanguage() {
	c.Language = strings.TrimSpace(c.Language)
	if c.Language == "" {
		if value, ok := os.LookupEnv("YTS_LANG"); ok {
			c.Language = strings.TrimSpace(value)
		}
	}
	if c.Language == "" {
		c.Language = string(language.Default)
	}
}

// normalizeScrape falls back to defaults for empty markers but never
// trims them: marker text is matched byte for byte.
func (c *Config) normalizeScrape() {
	if c.Scrape.FromMarker == "" {
		c.Scrape.FromMarker = defaultFromMarker
	}
	if c.Scrape.ToMarker == "" {
		c.Scrape.ToMarker = defaultToMarker
	}
}

func (c *Config) normalizeFetch() {
	c.Fetch.WatchURL = strings.TrimSpace(c.Fetch.WatchURL)
	if c.Fetch.WatchURL == "" {
		c.Fetch.WatchURL = defaultWatchURL
	}
	c.Fetch.UserAgent = strings.TrimSpace(c.Fetch.UserAgent)
	if c.Fetch.UserAgent == "" {
		c.Fetch.UserAgent = defaultUserAgent
	}
	if c.Fetch.TimeoutSeconds == 0 {
		c.Fetch.TimeoutSeconds = defaultFetchTimeoutSeconds
	}
	if c.Fetch.RetryMaxElapsedSeconds == 0 {
		c.Fetch.RetryMaxElapsedSeconds = defaultRetryMaxElapsedSeconds
	}
	if c.Fetch.MaxBodyMB == 0 {
		c.Fetch.MaxBodyMB = defaultMaxBodyMB
	}
}

func (c *Config) normalizeCache() error {
	c.Cache.Path = strings.TrimSpace(c.Cache.Path)
	if c.Cache.Path == "" {
		c.Cache.Path = defaultCachePath()
	}
	expanded, err := expandPath(c.Cache.Path)
	if err != nil {
		return fmt.Errorf("cache.path: %w", err)
	}
	c.Cache.Path = expanded
	return nil
}

func (c *Config) normalizeOutput() {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
