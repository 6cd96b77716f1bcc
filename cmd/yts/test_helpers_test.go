package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
)

const testVideoID = "dQw4w9WgXcQ"

// watchPageTemplate embeds a one-track caption list the way a real watch
// page does, closed off by the "videoDetails" key the locator anchors on.
// The single %s is the test server base URL.
const watchPageTemplate = `<!DOCTYPE html><html><head><title>watch</title></head><body>
<script>var ytInitialPlayerResponse = {"responseContext":{"serviceTrackingParams":[]},"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":[{"baseUrl":"%s/api/timedtext?v=dQw4w9WgXcQ&lang=en","name":{"simpleText":"English"},"vssId":".en","languageCode":"en","isTranslatable":true}],"audioTracks":[{"captionTrackIndices":[0]}],"defaultAudioTrackIndex":0}},"videoDetails":{"videoId":"dQw4w9WgXcQ","title":"Test Video"}};</script>
</body></html>`

const timedtextDoc = `<?xml version="1.0" encoding="utf-8" ?><transcript><text start="0" dur="1.54">hey guys</text><text start="1.54" dur="4.16">this is the new surface go</text></transcript>`

type cliTestEnv struct {
	srv        *httptest.Server
	watchHits  atomic.Int64
	trackHits  atomic.Int64
	configPath string
	cachePath  string
	baseDir    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	t.Setenv("YTS_LANG", "")
	t.Setenv("YTS_CONFIG", "")

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)

	env := &cliTestEnv{baseDir: base}

	mux := http.NewServeMux()
	mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
		env.watchHits.Add(1)
		fmt.Fprintf(w, watchPageTemplate, env.srv.URL)
	})
	mux.HandleFunc("/api/timedtext", func(w http.ResponseWriter, r *http.Request) {
		env.trackHits.Add(1)
		io.WriteString(w, timedtextDoc)
	})
	env.srv = httptest.NewServer(mux)
	t.Cleanup(env.srv.Close)

	env.cachePath = filepath.Join(base, "cache", "transcripts.db")
	env.configPath = filepath.Join(base, "config.toml")
	writeTestConfig(t, env.configPath, env.srv.URL+"/watch?v=", env.cachePath, true)

	return env
}

func writeTestConfig(t *testing.T, path, watchURL, cachePath string, cacheEnabled bool) {
	t.Helper()
	content := fmt.Sprintf(`language = "en"

[fetch]
watch_url = %q
timeout_seconds = 5
retry_max_elapsed_seconds = 1

[cache]
enabled = %t
path = %q

[logging]
level = "error"
`, watchURL, cacheEnabled, cachePath)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
