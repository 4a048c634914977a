package headingmarker

import (
	"regexp"

	"github.com/iw2rmb/lapel/editor"
	"github.com/iw2rmb/lapel/syntax"
)

// Document is the part of an editor state the builder reads.
// editor.State implements it.
type Document interface {
	Tree() *syntax.Tree
	LivePreview() bool
}

// HeadingSpan is one heading found in the structural annotation.
type HeadingSpan struct {
	From  int
	To    int
	Level int
}

var headingClassRE = regexp.MustCompile(`header-(\d)$`)

// Headings lists every heading span of doc in document order, regardless
// of display mode and selection. Nodes whose line class does not name a
// level from 1 to 6 are skipped.
func Headings(doc Document) []HeadingSpan {
	if doc == nil {
		return nil
	}
	var out []HeadingSpan
	doc.Tree().Iterate(func(n syntax.Node) bool {
		m := headingClassRE.FindStringSubmatch(n.Type.Prop(syntax.LineClass))
		if m == nil {
			return true
		}
		level := int(m[1][0] - '0')
		if level < 1 || level > 6 {
			return true
		}
		out = append(out, HeadingSpan{From: n.From, To: n.To, Level: level})
		return true
	})
	return out
}

// Build returns the markers to show for doc under selection.
//
// Outside live preview the set is empty. A heading is hidden when every
// selection range touches [From, To] (both ends inclusive); one range lying
// fully outside the heading keeps it visible.
func Build(doc Document, selection []editor.SelectionRange) MarkerSet {
	if doc == nil || !doc.LivePreview() {
		return Empty
	}
	var markers []Marker
	for _, h := range Headings(doc) {
		if inSelection(h, selection) {
			continue
		}
		markers = append(markers, Marker{Level: h.Level, From: h.From, To: h.To})
	}
	return newMarkerSet(markers)
}

func inSelection(h HeadingSpan, selection []editor.SelectionRange) bool {
	if len(selection) == 0 {
		return false
	}
	for _, r := range selection {
		if r.From > h.To || r.To < h.From {
			return false
		}
	}
	return true
}
