// Package fetch wraps the HTTP retrieval of watch pages and timed-text
// documents with retry and body-size limits.
package fetch
