package buffer

import (
	"strings"

	"github.com/iw2rmb/lapel/internal/grapheme"
)

type Options struct {
	HistoryLimit int // default: 1000; negative disables undo
}

type selectionState struct {
	active bool
	anchor Pos
	end    Pos
}

// Buffer is the pure document state: text, cursor, and selections.
type Buffer struct {
	lines   [][]string
	version uint64

	cursor Pos
	sel    selectionState
	// Secondary collapsed cursors added with AddCursor.
	extra []Pos

	opt  Options
	hist historyState

	lastChange Change
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Buffer{
		lines: splitLines(text),
		opt:   opt,
	}
}

func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(grapheme.Join(line))
	}
	return sb.String()
}

// LineCount returns the number of logical rows (always at least 1).
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of row, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return grapheme.Join(b.lines[row])
}

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.extra = nil
	b.version++
}

func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SelectionRaw returns the raw selection anchor/end without normalization.
//
// UI layers use it to keep the selection direction (e.g. shift+click)
// while still treating empty selections as inactive.
func (b *Buffer) SelectionRaw() (Range, bool) {
	if !b.sel.active || b.sel.anchor == b.sel.end {
		return Range{}, false
	}
	return Range{Start: b.sel.anchor, End: b.sel.end}, true
}

func (b *Buffer) SetSelection(r Range) {
	clamped := ClampRange(r, len(b.lines), b.lineLen)
	next := selectionState{active: true, anchor: clamped.Start, end: clamped.End}
	if clamped.Start == clamped.End {
		next = selectionState{}
	}

	prevRange, prevOK := b.Selection()
	b.sel = next
	nextRange, nextOK := b.Selection()
	if prevOK == nextOK && prevRange == nextRange {
		return
	}
	b.version++
}

func (b *Buffer) ClearSelection() {
	hadSel := false
	if _, ok := b.Selection(); ok {
		hadSel = true
	}
	b.sel = selectionState{}
	if hadSel || len(b.extra) > 0 {
		b.extra = nil
		b.version++
	}
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func splitLines(text string) [][]string {
	parts := strings.Split(text, "\n")
	lines := make([][]string, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, grapheme.Split(s))
	}
	return lines
}
