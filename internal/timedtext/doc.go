// Package timedtext parses caption documents in the timed-text XML
// format into transcript segments.
package timedtext
