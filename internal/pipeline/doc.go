// Package pipeline composes fetching, caption track location, timed-text
// parsing, and caching into the transcript retrieval flow.
package pipeline
