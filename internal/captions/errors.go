package captions

import (
	"fmt"

	"yts/internal/language"
)

// Marker names one of the two anchor strings.
type Marker string

const (
	MarkerFrom Marker = "from"
	MarkerTo   Marker = "to"
)

// AnchorError reports that an anchor marker never occurred where the
// locator expected it. The from anchor is checked first; a missing to
// anchor is only reported once from has matched.
type AnchorError struct {
	Marker Marker
	Anchor string
}

func (e *AnchorError) Error() string {
	return fmt.Sprintf("captions: %s anchor %q not found in document", e.Marker, e.Anchor)
}

// PayloadError reports that the anchor-bounded substring did not decode
// as a caption track list.
type PayloadError struct {
	Reason string
	Err    error
}

func (e *PayloadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("captions: embedded payload: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("captions: embedded payload: %s", e.Reason)
}

func (e *PayloadError) Unwrap() error {
	return e.Err
}

// LanguageError reports that the track list held no entry for the
// requested language.
type LanguageError struct {
	Requested language.Code
}

func (e *LanguageError) Error() string {
	return fmt.Sprintf("captions: no caption track for language %q", e.Requested)
}
