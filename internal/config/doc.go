// Package config loads, normalizes, and validates the TOML
// configuration controlling scraping, fetching, caching, and output.
package config
