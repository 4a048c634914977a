package editor

import (
	"slices"
	"sort"

	"github.com/iw2rmb/lapel/syntax"
)

// SelectionRange is a selection in byte offsets. From <= To; a collapsed
// cursor has From == To.
type SelectionRange struct {
	From int
	To   int
}

func (r SelectionRange) Empty() bool { return r.From == r.To }

// Line describes one document line. Number is 1-based; [From, To] spans the
// line text without its trailing '\n'.
type Line struct {
	Number int
	From   int
	To     int
	Text   string
}

// State is an immutable snapshot of the document, the selections and the
// display mode, handed to view plugins on every update.
type State struct {
	doc         string
	version     uint64
	lineStarts  []int
	selections  []SelectionRange
	livePreview bool
	tree        *syntax.Tree
}

// StateConfig seeds NewState.
type StateConfig struct {
	Doc         string
	Version     uint64
	Selections  []SelectionRange
	LivePreview bool
	// Tree is parsed from Doc when nil.
	Tree *syntax.Tree
}

func NewState(cfg StateConfig) State {
	sel := make([]SelectionRange, 0, len(cfg.Selections))
	for _, r := range cfg.Selections {
		if r.From > r.To {
			r.From, r.To = r.To, r.From
		}
		sel = append(sel, SelectionRange{From: clampInt(r.From, 0, len(cfg.Doc)), To: clampInt(r.To, 0, len(cfg.Doc))})
	}
	if len(sel) == 0 {
		sel = append(sel, SelectionRange{})
	}
	slices.SortStableFunc(sel, func(a, b SelectionRange) int { return a.From - b.From })

	tree := cfg.Tree
	if tree == nil {
		tree = syntax.Parse(cfg.Doc)
	}
	starts := []int{0}
	for i := 0; i < len(cfg.Doc); i++ {
		if cfg.Doc[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return State{
		doc:         cfg.Doc,
		version:     cfg.Version,
		lineStarts:  starts,
		selections:  sel,
		livePreview: cfg.LivePreview,
		tree:        tree,
	}
}

func (s State) Doc() string { return s.doc }

func (s State) Version() uint64 { return s.version }

// Selections returns the selection ranges sorted by From.
func (s State) Selections() []SelectionRange {
	return append([]SelectionRange(nil), s.selections...)
}

func (s State) LivePreview() bool { return s.livePreview }

// Tree returns the document's structural annotation.
func (s State) Tree() *syntax.Tree { return s.tree }

func (s State) LineCount() int { return max(len(s.lineStarts), 1) }

// Line returns line n (1-based), clamped into the document.
func (s State) Line(n int) Line {
	if len(s.lineStarts) == 0 {
		return Line{Number: 1}
	}
	n = clampInt(n, 1, len(s.lineStarts))
	from := s.lineStarts[n-1]
	to := len(s.doc)
	if n < len(s.lineStarts) {
		to = s.lineStarts[n] - 1
	}
	return Line{Number: n, From: from, To: to, Text: s.doc[from:to]}
}

// LineAt returns the line containing byte offset off.
func (s State) LineAt(off int) Line {
	off = clampInt(off, 0, len(s.doc))
	n := sort.Search(len(s.lineStarts), func(i int) bool { return s.lineStarts[i] > off })
	return s.Line(n)
}

func (s State) sameSelections(o State) bool {
	return slices.Equal(s.selections, o.selections)
}
