package config

import (
	"errors"
	"fmt"

	"yts/internal/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLanguage(); err != nil {
		return err
	}
	if err := c.validateScrape(); err != nil {
		return err
	}
	if err := c.validateFetch(); err != nil {
		return err
	}
	if err := c.validateCache(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateLanguage() error {
	if _, err := language.Parse(c.Language); err != nil {
		return fmt.Errorf("language: %w", err)
	}
	return nil
}

func (c *Config) validateScrape() error {
	if c.Scrape.FromMarker == "" {
		return errors.New("scrape.from_marker must be set")
	}
	if c.Scrape.ToMarker == "" {
		return errors.New("scrape.to_marker must be set")
	}
	return nil
}

func (c *Config) validateFetch() error {
	if c.Fetch.WatchURL == "" {
		return errors.New("fetch.watch_url must be set")
	}
	return ensurePositiveMap(map[string]int{
		"fetch.timeout_seconds":           c.Fetch.TimeoutSeconds,
		"fetch.retry_max_elapsed_seconds": c.Fetch.RetryMaxElapsedSeconds,
		"fetch.max_body_mb":               c.Fetch.MaxBodyMB,
	})
}

func (c *Config) validateCache() error {
	if c.Cache.Enabled && c.Cache.Path == "" {
		return errors.New("cache.path must be set when cache.enabled is true")
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("output.format must be %q or %q", "text", "json")
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be %q or %q", "console", "json")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("logging.level must be one of debug, info, warn, error")
	}
	return nil
}

func ensurePositiveMap(values map[string]int) error {
	for name, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}
	return nil
}
