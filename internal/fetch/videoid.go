package fetch

import (
	"fmt"
	"regexp"
	"strings"
)

// videoIDPattern matches the 11-character video ID inside the URL forms
// in circulation: watch, youtu.be, embed, shorts, live, and bare /v/.
var videoIDPattern = regexp.MustCompile(`(?:youtube\.com/(?:[^/]+/.+/|(?:v|e(?:mbed)?|shorts|live)/|.*[?&]v=)|youtu\.be/)([^"&?/\s]{11})`)

// bareIDPattern matches a video ID given directly.
var bareIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// ResolveVideoID extracts the video ID from a link, or returns the input
// unchanged when it already is one.
func ResolveVideoID(target string) (string, error) {
	trimmed := strings.TrimSpace(target)
	if bareIDPattern.MatchString(trimmed) {
		return trimmed, nil
	}
	if match := videoIDPattern.FindStringSubmatch(trimmed); len(match) > 1 {
		return match[1], nil
	}
	return "", fmt.Errorf("cannot extract a video id from %q", target)
}
