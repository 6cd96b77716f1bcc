package transcript

import (
	"fmt"
	"strings"
	"time"
)

// Segment is one timed caption line: its text, the offset at which it
// begins, and how long it stays on screen.
type Segment struct {
	Text   string
	Start  time.Duration
	Length time.Duration
}

// Transcript is the ordered sequence of segments extracted from a single
// timed-text document. Segment order always matches the source document;
// nothing here re-sorts it.
type Transcript struct {
	Segments []Segment
}

// Empty reports whether the transcript holds no segments.
func (t Transcript) Empty() bool {
	return len(t.Segments) == 0
}

// Render produces the human-readable block form of the transcript:
//
//	start at: 0:01 for duration 0:04
//	This is a Microsoft Surface go
//	==========
//
// one block per segment, in segment order. Rendering cannot fail; an
// empty transcript renders as the empty string.
func (t Transcript) Render() string {
	if len(t.Segments) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(t.Segments) * 64)
	for _, seg := range t.Segments {
		b.WriteString("\nstart at: ")
		b.WriteString(Clock(seg.Start))
		b.WriteString(" for duration ")
		b.WriteString(Clock(seg.Length))
		b.WriteByte('\n')
		b.WriteString(seg.Text)
		b.WriteString("\n==========\n\n")
	}
	return b.String()
}

// Clock formats an offset as m:ss, or h:mm:ss once it reaches a full
// hour. Sub-second remainders are dropped.
func Clock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}
