package buffer

import (
	"strings"

	"github.com/iw2rmb/lapel/internal/grapheme"
)

// InsertText inserts text at the cursor, or replaces the active selection.
func (b *Buffer) InsertText(s string) {
	r, ok := b.Selection()
	if !ok {
		if s == "" {
			return
		}
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.editRange(r, s)
}

// InsertNewline inserts a line break at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	if r, ok := b.Selection(); ok {
		b.editRange(r, "")
		return
	}
	row, col := b.cursor.Row, b.cursor.GraphemeCol
	switch {
	case col > 0:
		b.editRange(Range{Start: Pos{Row: row, GraphemeCol: col - 1}, End: b.cursor}, "")
	case row > 0:
		// Join with the previous line.
		b.editRange(Range{Start: Pos{Row: row - 1, GraphemeCol: len(b.lines[row-1])}, End: b.cursor}, "")
	}
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if r, ok := b.Selection(); ok {
		b.editRange(r, "")
		return
	}
	row, col := b.cursor.Row, b.cursor.GraphemeCol
	switch {
	case col < len(b.lines[row]):
		b.editRange(Range{Start: b.cursor, End: Pos{Row: row, GraphemeCol: col + 1}}, "")
	case row < len(b.lines)-1:
		b.editRange(Range{Start: b.cursor, End: Pos{Row: row + 1, GraphemeCol: 0}}, "")
	}
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	if r, ok := b.Selection(); ok {
		b.editRange(r, "")
	}
}

// editRange is the single-edit transaction shared by the typing operations.
func (b *Buffer) editRange(r Range, text string) {
	prev := b.snapshot()
	change := b.beginChange(ChangeSourceLocal)
	nextCursor, applied, changed := b.replaceRange(r, text)
	if !changed {
		return
	}
	change.add(applied)
	b.finishEdit(prev, change, nextCursor)
}

func (b *Buffer) finishEdit(prev bufferSnapshot, change changeBuilder, nextCursor Pos) {
	b.cursor = b.clampPos(nextCursor)
	b.sel = selectionState{}
	b.extra = nil
	b.version++
	b.recordUndo(prev)
	b.commitChange(change)
}

func (b *Buffer) replaceRange(r Range, text string) (nextCursor Pos, applied Edit, changed bool) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	if r.IsEmpty() && text == "" {
		return b.cursor, Edit{}, false
	}
	deletedText := textForLinesRange(b.lines, r)
	if deletedText == text {
		return b.cursor, Edit{}, false
	}

	startRow, startCol := r.Start.Row, r.Start.GraphemeCol
	endRow, endCol := r.End.Row, r.End.GraphemeCol
	prefix := append([]string(nil), b.lines[startRow][:startCol]...)
	suffix := append([]string(nil), b.lines[endRow][endCol:]...)

	parts := strings.Split(text, "\n")
	repl := make([][]string, len(parts))
	for i, p := range parts {
		repl[i] = grapheme.Split(p)
	}
	last := len(repl) - 1
	nextCursor = Pos{Row: startRow + last, GraphemeCol: len(repl[last])}
	if last == 0 {
		nextCursor.GraphemeCol += len(prefix)
	}
	repl[0] = append(prefix, repl[0]...)
	repl[last] = append(repl[last], suffix...)

	out := make([][]string, 0, len(b.lines)-(endRow-startRow)+last)
	out = append(out, b.lines[:startRow]...)
	out = append(out, repl...)
	out = append(out, b.lines[endRow+1:]...)
	b.lines = out

	applied = Edit{
		Before:   r,
		After:    Range{Start: r.Start, End: nextCursor},
		Inserted: text,
		Deleted:  deletedText,
	}
	return nextCursor, applied, true
}

func textForLinesRange(lines [][]string, r Range) string {
	r = NormalizeRange(r)
	if r.IsEmpty() {
		return ""
	}
	if r.Start.Row == r.End.Row {
		return grapheme.Join(lines[r.Start.Row][r.Start.GraphemeCol:r.End.GraphemeCol])
	}

	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		if row > r.Start.Row {
			sb.WriteByte('\n')
		}
		from, to := 0, len(lines[row])
		if row == r.Start.Row {
			from = r.Start.GraphemeCol
		}
		if row == r.End.Row {
			to = r.End.GraphemeCol
		}
		sb.WriteString(grapheme.Join(lines[row][from:to]))
	}
	return sb.String()
}
