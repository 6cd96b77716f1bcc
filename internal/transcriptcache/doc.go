// Package transcriptcache persists fetched transcripts so repeat
// requests for the same video and language never touch the network.
//
// # Storage
//
// Entries live in a SQLite database (WAL mode) keyed by (video_id,
// language). Segment timing is stored as integer milliseconds in a JSON
// column, so a cached transcript renders identically to a freshly
// parsed one. Schema changes ship as embedded migration files tracked
// in a schema_migrations table.
//
// # Concurrency
//
// Open serializes schema setup across processes with a sibling .lock
// file; after that SQLite's busy timeout covers concurrent use.
package transcriptcache
