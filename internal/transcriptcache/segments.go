package transcriptcache

import (
	"encoding/json"
	"fmt"
	"time"

	"yts/internal/transcript"
)

// storedSegment is the JSON shape for one cue inside the segments column.
// Timing is integer milliseconds so cached transcripts render identically
// to freshly parsed ones.
type storedSegment struct {
	Text     string `json:"text"`
	StartMS  int64  `json:"start_ms"`
	LengthMS int64  `json:"length_ms"`
}

func encodeSegments(tr transcript.Transcript) (string, error) {
	stored := make([]storedSegment, 0, len(tr.Segments))
	for _, seg := range tr.Segments {
		stored = append(stored, storedSegment{
			Text:     seg.Text,
			StartMS:  seg.Start.Milliseconds(),
			LengthMS: seg.Length.Milliseconds(),
		})
	}
	data, err := json.Marshal(stored)
	if err != nil {
		return "", fmt.Errorf("encode segments: %w", err)
	}
	return string(data), nil
}

func decodeSegments(data string) (transcript.Transcript, error) {
	var stored []storedSegment
	if err := json.Unmarshal([]byte(data), &stored); err != nil {
		return transcript.Transcript{}, fmt.Errorf("decode segments: %w", err)
	}
	segments := make([]transcript.Segment, 0, len(stored))
	for _, seg := range stored {
		segments = append(segments, transcript.Segment{
			Text:   seg.Text,
			Start:  time.Duration(seg.StartMS) * time.Millisecond,
			Length: time.Duration(seg.LengthMS) * time.Millisecond,
		})
	}
	return transcript.Transcript{Segments: segments}, nil
}
