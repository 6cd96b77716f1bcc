package transcriptcache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"yts/internal/language"
	"yts/internal/logging"
	"yts/internal/transcript"
)

// Store persists fetched transcripts in SQLite keyed by video and language.
type Store struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// Entry is one cached transcript.
type Entry struct {
	VideoID    string
	Language   language.Code
	FetchURL   string
	Transcript transcript.Transcript
	FetchedAt  time.Time
}

// Open initializes or connects to the cache database and applies
// migrations. Concurrent processes serialize schema setup through a
// sibling lock file.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create cache directory: %w", err)
		}
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return nil, fmt.Errorf("acquire cache lock: %w", err)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path, logger: logging.NewComponentLogger(logger, "cache")}
	if err := store.applyMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Get returns the cached entry for the video and language, or nil when absent.
func (s *Store) Get(ctx context.Context, videoID string, lang language.Code) (*Entry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT video_id, language, fetch_url, segments, fetched_at
         FROM transcripts WHERE video_id = ? AND language = ?`,
		videoID, string(lang))
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get transcript: %w", err)
	}
	return entry, nil
}

// Put inserts or replaces the cached entry for its video and language.
func (s *Store) Put(ctx context.Context, entry Entry) error {
	segments, err := encodeSegments(entry.Transcript)
	if err != nil {
		return err
	}
	fetchedAt := entry.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = time.Now()
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO transcripts (video_id, language, fetch_url, segments, fetched_at)
         VALUES (?, ?, ?, ?, ?)
         ON CONFLICT (video_id, language) DO UPDATE SET
             fetch_url = excluded.fetch_url,
             segments = excluded.segments,
             fetched_at = excluded.fetched_at`,
		entry.VideoID,
		string(entry.Language),
		entry.FetchURL,
		segments,
		fetchedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("put transcript: %w", err)
	}
	s.logger.Debug("stored transcript",
		logging.String(logging.FieldVideoID, entry.VideoID),
		logging.String(logging.FieldLanguage, string(entry.Language)))
	return nil
}

// List returns all cached entries, newest first.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT video_id, language, fetch_url, segments, fetched_at
         FROM transcripts ORDER BY fetched_at DESC, video_id`)
	if err != nil {
		return nil, fmt.Errorf("list transcripts: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transcript: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transcripts: %w", err)
	}
	return entries, nil
}

// Count returns the number of cached entries.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var count int64
	row := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM transcripts")
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("count transcripts: %w", err)
	}
	return count, nil
}

// Clear removes every cached entry and reports how many were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM transcripts")
	if err != nil {
		return 0, fmt.Errorf("clear transcripts: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count removed transcripts: %w", err)
	}
	return removed, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*Entry, error) {
	var (
		entry     Entry
		lang      string
		segments  string
		fetchedAt string
	)
	if err := row.Scan(&entry.VideoID, &lang, &entry.FetchURL, &segments, &fetchedAt); err != nil {
		return nil, err
	}
	entry.Language = language.Code(lang)

	decoded, err := decodeSegments(segments)
	if err != nil {
		return nil, err
	}
	entry.Transcript = decoded

	ts, err := time.Parse(time.RFC3339Nano, fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("parse fetched_at: %w", err)
	}
	entry.FetchedAt = ts
	return &entry, nil
}
