package editor

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/lapel/internal/grapheme"
)

// Prec orders gutters left to right: higher precedence renders first.
type Prec int

const (
	PrecLow     Prec = -1
	PrecDefault Prec = 0
	PrecHigh    Prec = 1
)

// Gutter configures one custom gutter column.
//
// When Width is nil, the gutter is disabled.
// When Cell is nil, cells render as blanks and clicks map to col 0.
// OnMouseDown and OnClick return true to claim a pointer event; a claimed
// press does not move the cursor.
type Gutter struct {
	// Class names the gutter, e.g. for styling or tests.
	Class string
	Prec  Prec

	Width func(ctx GutterWidthContext) int
	Cell  func(ctx GutterCellContext) GutterCell

	OnMouseDown func(ev GutterEvent) bool
	OnClick     func(ev GutterEvent) bool
}

type GutterWidthContext struct {
	LineCount  int
	Focused    bool
	DocVersion uint64
}

type GutterCellContext struct {
	View View
	// Line is the document line for this row.
	Line        Line
	Row         int
	Width       int
	DigitCount  int
	LineCount   int
	IsCursorRow bool
	Focused     bool
	DocVersion  uint64
}

type GutterCell struct {
	// Segments contains style-addressable text chunks for this gutter cell.
	// Segment text is normalized/clipped/padded to the resolved gutter width.
	Segments []GutterSegment
	// ClickCol maps unclaimed gutter clicks to a document grapheme column.
	// Negative values are clamped to 0.
	ClickCol int
}

type GutterSegment struct {
	Text string
	// StyleKey optionally selects a keyed style via Config.GutterStyleForKey.
	// Empty means use Style.Gutter.
	StyleKey string
	// Style optionally overrides StyleKey for this segment.
	Style *lipgloss.Style
	// Class is a space-separated class list identifying the element for
	// pointer hooks.
	Class string
	Data  map[string]string
}

// HasClass reports whether class is one of the segment's classes.
func (s GutterSegment) HasClass(class string) bool {
	return class != "" && slices.Contains(strings.Fields(s.Class), class)
}

// GutterEvent is a pointer event on a gutter cell. X and Y are
// viewport-local; Target is the segment under the pointer (zero when the
// pointer is over padding).
type GutterEvent struct {
	View   View
	Line   Line
	Target GutterSegment
	X, Y   int
}

// LineNumberGutter returns the built-in line-number gutter behavior.
func LineNumberGutter() Gutter {
	return Gutter{
		Class: "line-numbers",
		Prec:  PrecDefault,
		Width: func(ctx GutterWidthContext) int {
			return LineNumberWidth(ctx.LineCount)
		},
		Cell: func(ctx GutterCellContext) GutterCell {
			return GutterCell{Segments: []GutterSegment{LineNumberSegment(ctx)}}
		},
	}
}

// LineNumberWidth returns the default line-number gutter width for lineCount.
func LineNumberWidth(lineCount int) int {
	return gutterDigits(lineCount) + 1
}

// LineNumberSegment returns the default line-number segment for one gutter row.
func LineNumberSegment(ctx GutterCellContext) GutterSegment {
	if ctx.Width <= 0 {
		return GutterSegment{}
	}
	digits := ctx.DigitCount
	if digits < 1 {
		digits = gutterDigits(ctx.LineCount)
	}
	styleKey := "line_num"
	if ctx.Focused && ctx.IsCursorRow {
		styleKey = "line_num_active"
	}
	return GutterSegment{
		Text:     fmt.Sprintf("%*d ", digits, ctx.Row+1),
		StyleKey: styleKey,
		Class:    "line-number",
	}
}

func gutterDigits(lineCount int) int {
	return len(fmt.Sprintf("%d", max(lineCount, 1)))
}

// orderGutters returns the line-number gutter (when enabled) and extension
// gutters sorted by precedence, stable within one precedence.
func orderGutters(cfg Config) []Gutter {
	var out []Gutter
	if cfg.ShowLineNums {
		out = append(out, LineNumberGutter())
	}
	for _, ext := range cfg.Extensions {
		out = append(out, ext.Gutters...)
	}
	slices.SortStableFunc(out, func(a, b Gutter) int { return int(b.Prec) - int(a.Prec) })
	return out
}

type placedGutter struct {
	index int
	x     int
	width int
}

func (m Model) placeGutters(lineCount int) ([]placedGutter, int) {
	ctx := GutterWidthContext{
		LineCount:  max(lineCount, 1),
		Focused:    m.focused,
		DocVersion: m.host.buf.Version(),
	}
	out := make([]placedGutter, 0, len(m.gutters))
	x := 0
	for i, g := range m.gutters {
		if g.Width == nil {
			continue
		}
		w := g.Width(ctx)
		if w <= 0 {
			continue
		}
		out = append(out, placedGutter{index: i, x: x, width: w})
		x += w
	}
	return out, x
}

func (m Model) resolveGutterCell(g Gutter, st State, row, width int, isCursorRow bool) GutterCell {
	if width <= 0 {
		return GutterCell{}
	}
	cell := GutterCell{}
	if g.Cell != nil {
		cell = g.Cell(GutterCellContext{
			View:        m.host,
			Line:        st.Line(row + 1),
			Row:         row,
			Width:       width,
			DigitCount:  gutterDigits(st.LineCount()),
			LineCount:   st.LineCount(),
			IsCursorRow: isCursorRow,
			Focused:     m.focused,
			DocVersion:  st.Version(),
		})
	}
	cell.Segments = normalizeGutterSegments(cell.Segments, width)
	cell.ClickCol = max(cell.ClickCol, 0)
	return cell
}

// normalizeGutterSegments clips and pads segments to exactly width cells.
// Padding segments carry no class.
func normalizeGutterSegments(in []GutterSegment, width int) []GutterSegment {
	if width <= 0 {
		return nil
	}

	used := 0
	out := make([]GutterSegment, 0, len(in)+1)
	for _, seg := range in {
		text := sanitizeGutterSegmentText(seg.Text)
		if text == "" || used >= width {
			continue
		}
		var sb strings.Builder
		for _, gr := range grapheme.Split(text) {
			w := grapheme.CellWidth(gr, used, 4)
			if used+w > width {
				break
			}
			sb.WriteString(gr)
			used += w
		}
		if sb.Len() == 0 {
			continue
		}
		seg.Text = sb.String()
		out = append(out, seg)
	}
	if used < width {
		out = append(out, GutterSegment{Text: strings.Repeat(" ", width-used)})
	}
	return out
}

// segmentAt returns the segment covering cell x of a normalized cell.
func segmentAt(segments []GutterSegment, x int) GutterSegment {
	used := 0
	for _, seg := range segments {
		w := 0
		for _, gr := range grapheme.Split(seg.Text) {
			w += grapheme.CellWidth(gr, used+w, 4)
		}
		if x >= used && x < used+w {
			return seg
		}
		used += w
	}
	return GutterSegment{}
}

func sanitizeGutterSegmentText(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}

func resolveGutterSegmentStyle(
	base lipgloss.Style,
	styleForKey func(string) (lipgloss.Style, bool),
	seg GutterSegment,
) lipgloss.Style {
	if seg.Style != nil {
		return seg.Style.Inherit(base)
	}
	if styleForKey != nil && seg.StyleKey != "" {
		if keyed, ok := styleForKey(seg.StyleKey); ok {
			return keyed.Inherit(base)
		}
	}
	return base
}

func renderGutterCell(
	base lipgloss.Style,
	styleForKey func(string) (lipgloss.Style, bool),
	cell GutterCell,
) string {
	var sb strings.Builder
	for _, seg := range cell.Segments {
		if seg.Text == "" {
			continue
		}
		sb.WriteString(resolveGutterSegmentStyle(base, styleForKey, seg).Render(seg.Text))
	}
	return sb.String()
}
