package buffer

import "slices"

// AddCursor adds a secondary collapsed cursor at p.
//
// Secondary cursors only contribute to Selections; edits and moves act on
// the primary cursor and drop them.
func (b *Buffer) AddCursor(p Pos) {
	p = b.clampPos(p)
	if p == b.cursor || slices.Contains(b.extra, p) {
		return
	}
	b.extra = append(b.extra, p)
	b.version++
}

// Selections returns every selection range sorted by start: the primary
// selection (or the collapsed primary cursor) plus secondary cursors.
func (b *Buffer) Selections() []Range {
	primary, ok := b.Selection()
	if !ok {
		primary = Range{Start: b.cursor, End: b.cursor}
	}
	out := make([]Range, 0, 1+len(b.extra))
	out = append(out, primary)
	for _, p := range b.extra {
		out = append(out, Range{Start: p, End: p})
	}
	slices.SortStableFunc(out, func(x, y Range) int {
		return ComparePos(x.Start, y.Start)
	})
	return out
}
