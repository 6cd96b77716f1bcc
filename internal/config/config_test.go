package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Setenv("YTS_LANG", "")
	path := filepath.Join(t.TempDir(), "missing.toml")
	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Error("exists = true for missing file")
	}
	if resolved != path {
		t.Errorf("resolved = %q, want %q", resolved, path)
	}
	if cfg.Language != "en" {
		t.Errorf("Language = %q, want en", cfg.Language)
	}
	if cfg.Scrape.FromMarker != `playerCaptionsTracklistRenderer":` {
		t.Errorf("FromMarker = %q", cfg.Scrape.FromMarker)
	}
	if !cfg.Cache.Enabled {
		t.Error("cache disabled by default")
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Output.Format = %q, want text", cfg.Output.Format)
	}
	if cfg.Fetch.Timeout() != 30*time.Second {
		t.Errorf("Fetch.Timeout() = %v, want 30s", cfg.Fetch.Timeout())
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
language = "fr"

[scrape]
from_marker = 'TRACKS":'
to_marker = '},"next"'

[fetch]
watch_url = "https://example.com/watch?v="
timeout_seconds = 5
retry_max_elapsed_seconds = 2
max_body_mb = 1

[cache]
enabled = false
path = "/tmp/yts-test/cache.db"

[output]
format = "json"

[logging]
format = "json"
level = "debug"
`)
	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("exists = false for written file")
	}
	if cfg.Language != "fr" {
		t.Errorf("Language = %q, want fr", cfg.Language)
	}
	if cfg.Scrape.FromMarker != `TRACKS":` || cfg.Scrape.ToMarker != `},"next"` {
		t.Errorf("markers = %q / %q", cfg.Scrape.FromMarker, cfg.Scrape.ToMarker)
	}
	if cfg.Fetch.Timeout() != 5*time.Second {
		t.Errorf("Timeout() = %v, want 5s", cfg.Fetch.Timeout())
	}
	if cfg.Fetch.MaxBodyBytes() != 1<<20 {
		t.Errorf("MaxBodyBytes() = %d, want %d", cfg.Fetch.MaxBodyBytes(), 1<<20)
	}
	if cfg.Cache.Enabled {
		t.Error("cache enabled, want disabled")
	}
	if cfg.Cache.Path != "/tmp/yts-test/cache.db" {
		t.Errorf("Cache.Path = %q", cfg.Cache.Path)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %q, want json", cfg.Output.Format)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadLanguageFromEnv(t *testing.T) {
	t.Setenv("YTS_LANG", "de")
	cfg, _, _, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Language != "de" {
		t.Errorf("Language = %q, want de from YTS_LANG", cfg.Language)
	}
}

func TestLoadConfigPathFromEnv(t *testing.T) {
	path := writeConfig(t, `language = "ja"`)
	t.Setenv("YTS_CONFIG", path)
	cfg, resolved, exists, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved = %q exists = %v, want %q true", resolved, exists, path)
	}
	if cfg.Language != "ja" {
		t.Errorf("Language = %q, want ja", cfg.Language)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"unsupported language", `language = "xx"`, "unsupported language code"},
		{"bad output format", "[output]\nformat = \"yaml\"", "output.format"},
		{"bad log level", "[logging]\nlevel = \"loud\"", "logging.level"},
		{"bad log format", "[logging]\nformat = \"pretty\"", "logging.format"},
		{"negative timeout", "[fetch]\ntimeout_seconds = -1", "fetch.timeout_seconds must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, _, _, err := Load(path)
			if err == nil {
				t.Fatal("Load succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadParseError(t *testing.T) {
	path := writeConfig(t, "language = [broken")
	_, _, _, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %v, want parse failure", err)
	}
}

func TestCreateSampleRoundTrip(t *testing.T) {
	t.Setenv("YTS_LANG", "")
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load of sample: %v", err)
	}
	if !exists {
		t.Fatal("sample file not found after CreateSample")
	}
	if cfg.Language != "en" {
		t.Errorf("sample Language = %q, want en", cfg.Language)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/cache/yts.db")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(home, "cache", "yts.db") {
		t.Errorf("ExpandPath = %q", got)
	}

	got, err = ExpandPath("~")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != home {
		t.Errorf("ExpandPath(~) = %q, want %q", got, home)
	}
}
