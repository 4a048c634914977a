package buffer

// Pos points into the logical document by (row, grapheme column).
type Pos struct {
	Row         int
	GraphemeCol int
}

// Range is a half-open selection in document coordinates: [Start, End).
// Start <= End in document order once normalized.
type Range struct {
	Start Pos
	End   Pos
}

// TextEdit replaces the text in Range with Text (which may contain '\n').
type TextEdit struct {
	Range Range
	Text  string
}

func ComparePos(a, b Pos) int {
	switch {
	case a.Row < b.Row:
		return -1
	case a.Row > b.Row:
		return 1
	case a.GraphemeCol < b.GraphemeCol:
		return -1
	case a.GraphemeCol > b.GraphemeCol:
		return 1
	}
	return 0
}

func NormalizeRange(r Range) Range {
	if ComparePos(r.Start, r.End) <= 0 {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampPos clamps p into document bounds described by rowCount and lineLen.
//
// The returned Pos always satisfies:
// - 0 <= Row < rowCount (with rowCount treated as at least 1)
// - 0 <= GraphemeCol <= lineLen(Row)
func ClampPos(p Pos, rowCount int, lineLen func(row int) int) Pos {
	if rowCount <= 0 {
		rowCount = 1
	}
	row := clampInt(p.Row, 0, rowCount-1)

	maxCol := 0
	if lineLen != nil {
		maxCol = max(lineLen(row), 0)
	}
	return Pos{Row: row, GraphemeCol: clampInt(p.GraphemeCol, 0, maxCol)}
}

func ClampRange(r Range, rowCount int, lineLen func(row int) int) Range {
	return Range{
		Start: ClampPos(r.Start, rowCount, lineLen),
		End:   ClampPos(r.End, rowCount, lineLen),
	}
}
