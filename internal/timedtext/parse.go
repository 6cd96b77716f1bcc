package timedtext

import (
	"encoding/xml"
	"math"
	"strconv"
	"time"

	"yts/internal/transcript"
)

// segmentTag is the element name carrying one timed cue.
const segmentTag = "text"

// node is a generic XML element tree. Decoding into it keeps the whole
// document walkable without committing to a schema, since caption
// documents nest their cue elements at varying depths.
type node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Chardata string     `xml:",chardata"`
	Children []node     `xml:",any"`
}

// Parse decodes a timed-text XML document into an ordered transcript.
// Segments appear in document order. Any malformed cue aborts the whole
// parse; a well-formed document with no cues yields an empty transcript.
func Parse(document string) (transcript.Transcript, error) {
	var root node
	if err := xml.Unmarshal([]byte(document), &root); err != nil {
		return transcript.Transcript{}, &DocumentError{Err: err}
	}
	var segments []transcript.Segment
	if err := collect(&root, &segments); err != nil {
		return transcript.Transcript{}, err
	}
	return transcript.Transcript{Segments: segments}, nil
}

// collect walks the tree in document order, appending a segment for
// every cue element at any depth.
func collect(n *node, out *[]transcript.Segment) error {
	if n.XMLName.Local == segmentTag {
		seg, err := segment(n)
		if err != nil {
			return err
		}
		*out = append(*out, seg)
	}
	for i := range n.Children {
		if err := collect(&n.Children[i], out); err != nil {
			return err
		}
	}
	return nil
}

func segment(n *node) (transcript.Segment, error) {
	start, err := duration(n, "start")
	if err != nil {
		return transcript.Segment{}, err
	}
	length, err := duration(n, "dur")
	if err != nil {
		return transcript.Segment{}, err
	}
	// Character data directly inside the element, entities already
	// decoded once. Whitespace counts as text; absence does not.
	if n.Chardata == "" {
		return transcript.Segment{}, &TextError{}
	}
	return transcript.Segment{Text: n.Chardata, Start: start, Length: length}, nil
}

// duration reads a seconds attribute and converts it to the nearest
// millisecond, so "1.54" is exactly 1540ms rather than a float artifact.
func duration(n *node, name string) (time.Duration, error) {
	for _, attr := range n.Attrs {
		if attr.Name.Local != name {
			continue
		}
		seconds, err := strconv.ParseFloat(attr.Value, 64)
		if err != nil || math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
			return 0, &AttributeError{Name: name, Value: attr.Value, Invalid: true}
		}
		return time.Duration(math.Round(seconds*1000.0)) * time.Millisecond, nil
	}
	return 0, &AttributeError{Name: name}
}
