package editor

import (
	"github.com/iw2rmb/lapel/buffer"
	"github.com/iw2rmb/lapel/internal/grapheme"
)

// gutterHit is a pointer position resolved against the gutter area.
type gutterHit struct {
	gutter  int
	row     int
	localX  int
	segment GutterSegment
	cell    GutterCell
}

// docRowAt maps a viewport-local y to a document row, clamped.
func (m Model) docRowAt(y int) int {
	return clampInt(m.viewport.YOffset+y, 0, m.host.buf.LineCount()-1)
}

// hitGutter reports which gutter cell lies under viewport-local (x, y).
func (m Model) hitGutter(x, y int) (gutterHit, bool) {
	placed, total := m.placeGutters(m.host.buf.LineCount())
	if x < 0 || x >= total {
		return gutterHit{}, false
	}
	row := m.docRowAt(y)
	for _, pg := range placed {
		if x < pg.x || x >= pg.x+pg.width {
			continue
		}
		cell := m.resolveGutterCell(m.gutters[pg.index], m.host.published, row, pg.width, row == m.host.buf.Cursor().Row)
		return gutterHit{
			gutter:  pg.index,
			row:     row,
			localX:  x - pg.x,
			segment: segmentAt(cell.Segments, x-pg.x),
			cell:    cell,
		}, true
	}
	return gutterHit{}, false
}

// screenToDocPos maps viewport-local mouse coordinates to a document position.
//
// Gutter clicks map to the cell's ClickCol. Coordinates are clamped into
// document bounds.
func (m Model) screenToDocPos(x, y int) buffer.Pos {
	b := m.host.buf
	row := m.docRowAt(y)
	clusters := grapheme.Split(b.Line(row))

	if hit, ok := m.hitGutter(x, y); ok {
		return buffer.Pos{Row: row, GraphemeCol: clampInt(hit.cell.ClickCol, 0, len(clusters))}
	}
	_, gw := m.placeGutters(b.LineCount())
	target := max(x-gw, 0)

	cell := 0
	for col, gr := range clusters {
		w := grapheme.CellWidth(gr, cell, m.cfg.TabWidth)
		if target < cell+w {
			return buffer.Pos{Row: row, GraphemeCol: col}
		}
		cell += w
	}
	return buffer.Pos{Row: row, GraphemeCol: len(clusters)}
}
