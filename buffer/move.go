package buffer

import "github.com/iw2rmb/lapel/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, updates selection anchor/end; if false clears selection
}

func (b *Buffer) Move(m Move) {
	prevCursor := b.cursor
	prevSel := b.sel
	nextCursor := b.clampPos(b.moveCursor(prevCursor, m))

	nextSel := selectionState{}
	if m.Extend {
		anchor := prevCursor
		if prevSel.active && prevSel.anchor != prevSel.end {
			anchor = prevSel.anchor
		}
		if anchor != nextCursor {
			nextSel = selectionState{active: true, anchor: anchor, end: nextCursor}
		}
	}

	if prevCursor == nextCursor && prevSel == nextSel && len(b.extra) == 0 {
		return
	}
	b.cursor = nextCursor
	b.sel = nextSel
	b.extra = nil
	b.version++
}

func (b *Buffer) moveCursor(p Pos, m Move) Pos {
	row, col := p.Row, p.GraphemeCol
	lastRow := len(b.lines) - 1
	line := b.lines[row]

	switch {
	case m.Dir == DirHome && m.Unit == MoveDoc, m.Dir == DirUp && m.Unit == MoveDoc:
		return Pos{}
	case m.Dir == DirEnd && m.Unit == MoveDoc, m.Dir == DirDown && m.Unit == MoveDoc:
		return Pos{Row: lastRow, GraphemeCol: len(b.lines[lastRow])}
	case m.Dir == DirHome:
		return Pos{Row: row}
	case m.Dir == DirEnd:
		return Pos{Row: row, GraphemeCol: len(line)}
	case m.Dir == DirUp:
		if row == 0 {
			return p
		}
		return Pos{Row: row - 1, GraphemeCol: min(col, len(b.lines[row-1]))}
	case m.Dir == DirDown:
		if row == lastRow {
			return p
		}
		return Pos{Row: row + 1, GraphemeCol: min(col, len(b.lines[row+1]))}
	case m.Unit == MoveWord && m.Dir == DirLeft:
		return Pos{Row: row, GraphemeCol: prevWordBoundary(line, col)}
	case m.Unit == MoveWord && m.Dir == DirRight:
		return Pos{Row: row, GraphemeCol: nextWordBoundary(line, col)}
	case m.Dir == DirLeft:
		if col > 0 {
			return Pos{Row: row, GraphemeCol: col - 1}
		}
		if row == 0 {
			return p
		}
		return Pos{Row: row - 1, GraphemeCol: len(b.lines[row-1])}
	case m.Dir == DirRight:
		if col < len(line) {
			return Pos{Row: row, GraphemeCol: col + 1}
		}
		if row == lastRow {
			return p
		}
		return Pos{Row: row + 1}
	}
	return p
}

// Word boundaries skip whitespace, then non-whitespace, within one line.
func prevWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && grapheme.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && grapheme.IsSpace(line[i]) {
		i++
	}
	for i < len(line) && !grapheme.IsSpace(line[i]) {
		i++
	}
	return i
}
