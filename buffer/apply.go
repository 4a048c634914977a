package buffer

// Apply applies a sequence of text edits in order. Each edit's range is
// interpreted against the buffer state at the time that edit is applied.
//
// Semantics:
// - Edit ranges are clamped into current document bounds.
// - Empty range + non-empty text inserts.
// - The whole batch is one undo step and one version bump.
// - Cursor moves to the end of the last effective edit.
// - Selections are cleared if any edit applies.
func (b *Buffer) Apply(edits ...TextEdit) {
	if len(edits) == 0 {
		return
	}

	prev := b.snapshot()
	change := b.beginChange(ChangeSourceLocal)

	anyChanged := false
	lastCursor := b.cursor
	for _, e := range edits {
		nextCursor, applied, changed := b.replaceRange(e.Range, e.Text)
		if !changed {
			continue
		}
		anyChanged = true
		lastCursor = nextCursor
		change.add(applied)
	}
	if !anyChanged {
		return
	}
	b.finishEdit(prev, change, lastCursor)
}
