package language

import (
	"fmt"
	"strings"

	xlang "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Code identifies one caption language that can be requested. The set is
// closed: YouTube serves tracks for more codes than these, but only the
// codes listed here are accepted at the CLI and config boundary. Each
// code has exactly one canonical form, the lowercase code itself.
type Code string

// Default is the language requested when the operator does not pick one.
const Default Code = "en"

// codes lists the supported set in display order (alphabetical by
// English language name).
var codes = []Code{
	"ar", "bn", "bg", "ca", "zh", "hr", "cs", "da", "nl", "en",
	"fil", "fi", "fr", "de", "el", "gu", "iw", "hi", "hu", "id",
	"it", "ja", "kn", "ko", "lv", "lt", "ms", "ml", "mr", "no",
	"pl", "pt", "ro", "ru", "sr", "sk", "sl", "es", "sw", "sv",
	"ta", "te", "th", "tr", "uk", "ur", "vi",
}

var supported map[Code]struct{}

func init() {
	supported = make(map[Code]struct{}, len(codes))
	for _, c := range codes {
		supported[c] = struct{}{}
	}
}

// Parse validates raw against the closed set and returns its canonical
// Code. Surrounding whitespace is ignored; matching is otherwise exact,
// so "EN" and "eng" are rejected.
func Parse(raw string) (Code, error) {
	code := Code(strings.TrimSpace(raw))
	if _, ok := supported[code]; !ok {
		return "", fmt.Errorf("unsupported language code %q (run 'yts languages' for the full list)", raw)
	}
	return code, nil
}

// IsSupported reports whether raw is a member of the closed set.
func IsSupported(raw string) bool {
	_, err := Parse(raw)
	return err == nil
}

// Supported returns the full code set in display order.
func Supported() []Code {
	out := make([]Code, len(codes))
	copy(out, codes)
	return out
}

func (c Code) String() string {
	return string(c)
}

// DisplayName returns the English name of the language, e.g. "German"
// for "de".
func (c Code) DisplayName() string {
	return Describe(string(c))
}

// Describe returns an English display name for any raw language code,
// including regional variants outside the closed set ("zh-Hans",
// "pt-BR") that show up in track listings. Unrecognized input comes
// back unchanged.
func Describe(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "Unknown"
	}
	tag, err := xlang.Parse(raw)
	if err != nil {
		return raw
	}
	name := display.English.Languages().Name(tag)
	if name == "" {
		return raw
	}
	return name
}
