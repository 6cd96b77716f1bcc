package testsupport

import (
	"context"
	"testing"
	"time"

	"yts/internal/config"
	"yts/internal/language"
	"yts/internal/logging"
	"yts/internal/transcript"
	"yts/internal/transcriptcache"
)

// MustOpenStore opens the transcript cache named by cfg and registers
// cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *transcriptcache.Store {
	t.Helper()

	store, err := transcriptcache.Open(context.Background(), cfg.Cache.Path, logging.NewNop())
	if err != nil {
		t.Fatalf("transcriptcache.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// SeedEntry stores a small canned transcript for videoID so tests can
// exercise cache hits without a prior fetch.
func SeedEntry(t testing.TB, store *transcriptcache.Store, videoID string, lang language.Code) transcriptcache.Entry {
	t.Helper()

	entry := transcriptcache.Entry{
		VideoID:  videoID,
		Language: lang,
		FetchURL: "https://www.youtube.com/api/timedtext?v=" + videoID + "&lang=" + string(lang),
		Transcript: transcript.Transcript{Segments: []transcript.Segment{
			{Text: "seeded line one", Start: 0, Length: 1500 * time.Millisecond},
			{Text: "seeded line two", Start: 1500 * time.Millisecond, Length: 2 * time.Second},
		}},
		FetchedAt: time.Date(2025, time.March, 9, 12, 0, 0, 0, time.UTC),
	}
	if err := store.Put(context.Background(), entry); err != nil {
		t.Fatalf("seed cache entry: %v", err)
	}
	return entry
}
