// Package transcript defines the timed transcript data model shared by
// the caption extraction packages, plus its human-readable rendering.
package transcript
