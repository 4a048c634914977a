package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/lapel/buffer"
	"github.com/iw2rmb/lapel/internal/grapheme"
)

func (m *Model) renderContent() string {
	b := m.host.buf
	st := m.host.published
	lineCount := b.LineCount()
	placed, _ := m.placeGutters(lineCount)

	cursor := b.Cursor()
	ranges := b.Selections()
	cursors := []buffer.Pos{cursor}
	for _, r := range ranges {
		if r.IsEmpty() && r.Start != cursor {
			cursors = append(cursors, r.Start)
		}
	}

	var classes []string
	if st.LivePreview() && m.cfg.LineStyleForClass != nil {
		classes = st.Tree().LineClasses()
	}

	out := make([]string, 0, lineCount)
	for row := 0; row < lineCount; row++ {
		isCursorRow := row == cursor.Row
		var sb strings.Builder
		for _, pg := range placed {
			g := m.gutters[pg.index]
			cell := m.resolveGutterCell(g, st, row, pg.width, isCursorRow)
			base := m.cfg.Style.Gutter
			if m.highlightActive && m.focused && isCursorRow {
				base = m.cfg.Style.GutterActiveLine.Inherit(base)
			}
			sb.WriteString(renderGutterCell(base, m.gutterStyleForKey, cell))
		}

		text := m.cfg.Style.Text
		if row < len(classes) && classes[row] != "" {
			if ls, ok := m.cfg.LineStyleForClass(classes[row]); ok {
				text = ls.Inherit(text)
			}
		}
		sb.WriteString(renderLine(m.cfg.Style, text, grapheme.Split(b.Line(row)), row, m.focused, cursors, ranges, m.cfg.TabWidth))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// gutterStyleForKey resolves host keys first, then the built-in line number
// keys.
func (m Model) gutterStyleForKey(key string) (lipgloss.Style, bool) {
	if m.cfg.GutterStyleForKey != nil {
		if s, ok := m.cfg.GutterStyleForKey(key); ok {
			return s, true
		}
	}
	switch key {
	case "line_num":
		return m.cfg.Style.LineNum, true
	case "line_num_active":
		return m.cfg.Style.LineNumActive, true
	}
	return lipgloss.Style{}, false
}

type runKind uint8

const (
	runText runKind = iota
	runSelected
	runCursor
)

func renderLine(
	st Style,
	text lipgloss.Style,
	clusters []string,
	row int,
	focused bool,
	cursors []buffer.Pos,
	ranges []buffer.Range,
	tabWidth int,
) string {
	styleFor := func(k runKind) lipgloss.Style {
		switch k {
		case runSelected:
			return st.Selection.Inherit(text)
		case runCursor:
			return st.Cursor.Inherit(text)
		}
		return text
	}

	var sb, run strings.Builder
	kind := runText
	flush := func() {
		if run.Len() == 0 {
			return
		}
		sb.WriteString(styleFor(kind).Render(run.String()))
		run.Reset()
	}

	cell := 0
	for col, gr := range clusters {
		p := buffer.Pos{Row: row, GraphemeCol: col}
		k := runText
		switch {
		case focused && hasCursorAt(cursors, p):
			k = runCursor
		case inRanges(ranges, p):
			k = runSelected
		}
		if k != kind {
			flush()
			kind = k
		}
		w := grapheme.CellWidth(gr, cell, tabWidth)
		if gr == "\t" {
			run.WriteString(strings.Repeat(" ", w))
		} else {
			run.WriteString(gr)
		}
		cell += w
	}
	flush()

	// Cursor at EOL renders as a one-cell placeholder.
	if focused && hasCursorAt(cursors, buffer.Pos{Row: row, GraphemeCol: len(clusters)}) {
		sb.WriteString(styleFor(runCursor).Render(" "))
	}
	return sb.String()
}

func hasCursorAt(cursors []buffer.Pos, p buffer.Pos) bool {
	for _, c := range cursors {
		if c == p {
			return true
		}
	}
	return false
}

func inRanges(ranges []buffer.Range, p buffer.Pos) bool {
	for _, r := range ranges {
		r = buffer.NormalizeRange(r)
		if r.IsEmpty() {
			continue
		}
		if buffer.ComparePos(r.Start, p) <= 0 && buffer.ComparePos(p, r.End) < 0 {
			return true
		}
	}
	return false
}
