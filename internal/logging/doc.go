// Package logging builds slog loggers with console and JSON handlers
// and standardized attribute keys.
package logging
