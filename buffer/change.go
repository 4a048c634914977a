package buffer

// ChangeSource identifies where a text change originated.
type ChangeSource uint8

const (
	ChangeSourceLocal ChangeSource = iota
	ChangeSourceHistory
)

// Edit is one effective replacement inside a Change. Before is the replaced
// range in the old text, After the inserted range in the new text.
type Edit struct {
	Before   Range
	After    Range
	Inserted string
	Deleted  string
}

// Change records one committed text mutation. Cursor moves and selection
// changes bump the buffer version but never produce a Change.
type Change struct {
	// Seq counts text changes since the buffer was created, starting at 1.
	Seq     uint64
	Source  ChangeSource
	Version uint64
	Edits   []Edit
}

type changeBuilder struct {
	source  ChangeSource
	version uint64
	edits   []Edit
}

// ChangeSeq returns the Seq of the most recent text change, or 0.
func (b *Buffer) ChangeSeq() uint64 { return b.lastChange.Seq }

// LastChange returns the most recent text change.
func (b *Buffer) LastChange() (Change, bool) {
	if b.lastChange.Seq == 0 {
		return Change{}, false
	}
	out := b.lastChange
	out.Edits = append([]Edit(nil), b.lastChange.Edits...)
	return out, true
}

func (b *Buffer) beginChange(source ChangeSource) changeBuilder {
	return changeBuilder{source: source, version: b.version}
}

func (cb *changeBuilder) add(e Edit) {
	e.Before = NormalizeRange(e.Before)
	e.After = NormalizeRange(e.After)
	cb.edits = append(cb.edits, e)
}

func (b *Buffer) commitChange(cb changeBuilder) {
	if b.version == cb.version || len(cb.edits) == 0 {
		return
	}
	b.lastChange = Change{
		Seq:     b.lastChange.Seq + 1,
		Source:  cb.source,
		Version: b.version,
		Edits:   append([]Edit(nil), cb.edits...),
	}
}

// wholeDocumentEdit describes history travel as one replacement of the
// entire text.
func wholeDocumentEdit(before, after string) (Edit, bool) {
	if before == after {
		return Edit{}, false
	}
	return Edit{
		Before:   documentRange(before),
		After:    documentRange(after),
		Inserted: after,
		Deleted:  before,
	}, true
}

func documentRange(text string) Range {
	lines := splitLines(text)
	last := len(lines) - 1
	return Range{End: Pos{Row: last, GraphemeCol: len(lines[last])}}
}
