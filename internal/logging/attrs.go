package logging

import (
	"io"
	"log/slog"
	"math"
	"time"
)

type Attr = slog.Attr

func Duration(key string, value time.Duration) Attr { return slog.Duration(key, value) }

func Int(key string, value int) Attr { return slog.Int(key, value) }

func String(key string, value string) Attr { return slog.String(key, value) }

func Error(err error) Attr {
	if err != nil {
		return slog.Any("error", err)
	}
	return slog.String("error", "<nil>")
}

// NewNop returns a logger that drops everything, for tests and for
// components constructed without a logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt32)}))
}

// NewComponentLogger tags every record from one subsystem with its
// component name. A nil base yields a silent logger.
func NewComponentLogger(base *slog.Logger, component string) *slog.Logger {
	if base == nil {
		base = NewNop()
	}
	return base.With(String(FieldComponent, component))
}

// Attribute keys shared across components.
const (
	FieldComponent = "component"
	FieldVideoID   = "video_id"
	FieldLanguage  = "language"
	FieldRequestID = "request_id"
	FieldURL       = "url"
	FieldPath      = "path"
)
