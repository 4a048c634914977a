package headingmarker

import (
	"strconv"

	"github.com/iw2rmb/lapel/editor"
)

// MarkerClass identifies marker segments for pointer hooks.
const MarkerClass = "heading-marker"

// Marker is the gutter decoration for one heading. From is the heading's
// start offset; To its end offset.
type Marker struct {
	Level int
	From  int
	To    int
}

// Label is the visible text, "H1" through "H6".
func (m Marker) Label() string { return "H" + strconv.Itoa(m.Level) }

// StyleKey selects the marker style via editor.Config.GutterStyleForKey.
func (m Marker) StyleKey() string { return "heading_marker_" + strconv.Itoa(m.Level) }

// Segment renders the marker as a gutter segment carrying its level.
func (m Marker) Segment() editor.GutterSegment {
	return editor.GutterSegment{
		Text:     m.Label(),
		StyleKey: m.StyleKey(),
		Class:    MarkerClass,
		Data:     map[string]string{"level": strconv.Itoa(m.Level)},
	}
}

// levelOf reads the level back from a rendered segment.
func levelOf(seg editor.GutterSegment) (int, bool) {
	if !seg.HasClass(MarkerClass) {
		return 0, false
	}
	n, err := strconv.Atoi(seg.Data["level"])
	if err != nil || n < 1 || n > 6 {
		return 0, false
	}
	return n, true
}
