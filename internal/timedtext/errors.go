package timedtext

import "fmt"

// DocumentError wraps an XML syntax failure from the timed-text body.
type DocumentError struct {
	Err error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("timedtext: malformed document: %v", e.Err)
}

func (e *DocumentError) Unwrap() error { return e.Err }

// AttributeError reports a segment attribute that is absent or not a
// non-negative decimal number of seconds. Invalid distinguishes a bad
// value from a missing one.
type AttributeError struct {
	Name    string
	Value   string
	Invalid bool
}

func (e *AttributeError) Error() string {
	if e.Invalid {
		return fmt.Sprintf("timedtext: segment attribute %q has invalid value %q", e.Name, e.Value)
	}
	return fmt.Sprintf("timedtext: segment missing attribute %q", e.Name)
}

// TextError reports a segment element that carries no character data.
type TextError struct{}

func (e *TextError) Error() string {
	return "timedtext: segment has no text"
}
