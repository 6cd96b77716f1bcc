package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// envConfigPath overrides the config file location when no --config flag
// is given.
const envConfigPath = "YTS_CONFIG"

// Scrape contains the anchor markers that bound the caption track list
// inside a watch page. They are configuration because the host document
// layout changes without notice.
type Scrape struct {
	FromMarker string `toml:"from_marker"`
	ToMarker   string `toml:"to_marker"`
}

// Fetch contains HTTP client configuration.
type Fetch struct {
	WatchURL               string `toml:"watch_url"`
	UserAgent              string `toml:"user_agent"`
	TimeoutSeconds         int    `toml:"timeout_seconds"`
	RetryMaxElapsedSeconds int    `toml:"retry_max_elapsed_seconds"`
	MaxBodyMB              int    `toml:"max_body_mb"`
}

// Timeout returns the per-request timeout.
func (f Fetch) Timeout() time.Duration {
	return time.Duration(f.TimeoutSeconds) * time.Second
}

// RetryMaxElapsed returns the total retry budget across attempts.
func (f Fetch) RetryMaxElapsed() time.Duration {
	return time.Duration(f.RetryMaxElapsedSeconds) * time.Second
}

// MaxBodyBytes returns the response body read limit.
func (f Fetch) MaxBodyBytes() int64 {
	return int64(f.MaxBodyMB) << 20
}

// Cache contains configuration for the local transcript cache.
type Cache struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Output contains configuration for transcript presentation.
type Output struct {
	Format string `toml:"format"`
}

// Logging controls diagnostic output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for yts.
type Config struct {
	Language string  `toml:"language"`
	Scrape   Scrape  `toml:"scrape"`
	Fetch    Fetch   `toml:"fetch"`
	Cache    Cache   `toml:"cache"`
	Output   Output  `toml:"output"`
	Logging  Logging `toml:"logging"`
}

// DefaultConfigPath returns the standard config file location under the
// user's home directory.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "yts", "config.toml"), nil
}

// Load reads the configuration file at path, or at the first discovered
// default location when path is empty. A missing file is not an error;
// defaults apply. The returned config is normalized and validated, with
// path fields expanded.
func Load(path string) (*Config, string, bool, error) {
	resolved, exists, err := locateConfig(path)
	if err != nil {
		return nil, "", false, err
	}

	cfg := Default()
	if exists {
		raw, err := os.ReadFile(resolved)
		if err != nil {
			return nil, "", false, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(raw, &cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolved, exists, nil
}

// locateConfig picks the file Load reads. An explicit path, from the
// argument or from YTS_CONFIG, wins even when the file does not exist
// yet. Otherwise the default location and a project-local yts.toml are
// probed in order.
func locateConfig(explicit string) (string, bool, error) {
	if explicit == "" {
		explicit = strings.TrimSpace(os.Getenv(envConfigPath))
	}
	if explicit != "" {
		expanded, err := expandPath(explicit)
		if err != nil {
			return "", false, err
		}
		switch info, err := os.Stat(expanded); {
		case errors.Is(err, fs.ErrNotExist):
			return expanded, false, nil
		case err != nil:
			return "", false, fmt.Errorf("stat config: %w", err)
		case info.IsDir():
			return "", false, fmt.Errorf("config path %s is a directory", expanded)
		default:
			return expanded, true, nil
		}
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs("yts.toml")
	if err != nil {
		return "", false, err
	}
	for _, candidate := range []string{defaultPath, projectPath} {
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, true, nil
		}
	}
	return defaultPath, false, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if rest, ok := strings.CutPrefix(pathValue, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		switch {
		case rest == "":
			pathValue = home
		case rest[0] == '/' || rest[0] == '\\':
			pathValue = filepath.Join(home, rest[1:])
		}
	}
	absolute, err := filepath.Abs(pathValue)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// ExpandPath resolves a leading ~ and returns an absolute path.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes the embedded sample configuration to path, creating
// parent directories as needed.
func CreateSample(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
