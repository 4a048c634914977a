package buffer

type bufferSnapshot struct {
	text   string
	cursor Pos
	sel    selectionState
}

type historyState struct {
	undo []bufferSnapshot
	redo []bufferSnapshot
}

func (b *Buffer) snapshot() bufferSnapshot {
	return bufferSnapshot{text: b.Text(), cursor: b.cursor, sel: b.sel}
}

func (b *Buffer) restore(s bufferSnapshot) {
	b.lines = splitLines(s.text)
	b.cursor = b.clampPos(s.cursor)
	b.extra = nil
	b.sel = selectionState{}
	if !s.sel.active {
		return
	}
	anchor := b.clampPos(s.sel.anchor)
	end := b.clampPos(s.sel.end)
	if anchor != end {
		b.sel = selectionState{active: true, anchor: anchor, end: end}
	}
}

func pushBounded(stack []bufferSnapshot, s bufferSnapshot, limit int) []bufferSnapshot {
	stack = append(stack, s)
	if len(stack) > limit {
		stack = stack[len(stack)-limit:]
	}
	return stack
}

func (b *Buffer) recordUndo(prev bufferSnapshot) {
	if b.opt.HistoryLimit <= 0 {
		return
	}
	b.hist.undo = pushBounded(b.hist.undo, prev, b.opt.HistoryLimit)
	b.hist.redo = nil
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

func (b *Buffer) Undo() bool {
	if len(b.hist.undo) == 0 {
		return false
	}
	i := len(b.hist.undo) - 1
	prev := b.hist.undo[i]
	b.hist.undo = b.hist.undo[:i]

	cur := b.snapshot()
	b.hist.redo = append(b.hist.redo, cur)
	b.travel(cur, prev)
	return true
}

func (b *Buffer) Redo() bool {
	if len(b.hist.redo) == 0 {
		return false
	}
	i := len(b.hist.redo) - 1
	next := b.hist.redo[i]
	b.hist.redo = b.hist.redo[:i]

	cur := b.snapshot()
	if b.opt.HistoryLimit > 0 {
		b.hist.undo = pushBounded(b.hist.undo, cur, b.opt.HistoryLimit)
	}
	b.travel(cur, next)
	return true
}

func (b *Buffer) travel(from, to bufferSnapshot) {
	change := b.beginChange(ChangeSourceHistory)
	b.restore(to)
	b.version++
	if e, ok := wholeDocumentEdit(from.text, to.text); ok {
		change.add(e)
	}
	b.commitChange(change)
}
