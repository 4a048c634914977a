package editor

import (
	"errors"
	"fmt"
	"slices"

	"github.com/iw2rmb/lapel/buffer"
)

var (
	// ErrInvalidRange reports a change whose offsets fall outside the
	// document, are reversed, split a grapheme cluster or overlap another
	// change of the same transaction.
	ErrInvalidRange = errors.New("editor: invalid change range")
	// ErrReadOnly reports a dispatch to a read-only editor.
	ErrReadOnly = errors.New("editor: read-only")
)

// ChangeSpec replaces document bytes [From, To) with Insert.
type ChangeSpec struct {
	From   int
	To     int
	Insert string
}

// Transaction is a set of changes addressed against the same document
// state. It applies as one undo step.
type Transaction struct {
	Changes []ChangeSpec
}

// Dispatch applies tx to the buffer and runs the update cycle.
func (h *viewHost) Dispatch(tx Transaction) error {
	if h.readOnly {
		return ErrReadOnly
	}
	if len(tx.Changes) == 0 {
		return nil
	}

	changes := slices.Clone(tx.Changes)
	slices.SortStableFunc(changes, func(a, b ChangeSpec) int { return a.From - b.From })
	for i, c := range changes {
		if c.From > c.To {
			return fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, c.From, c.To)
		}
		if i > 0 && c.From < changes[i-1].To {
			return fmt.Errorf("%w: [%d, %d) overlaps [%d, %d)", ErrInvalidRange, c.From, c.To, changes[i-1].From, changes[i-1].To)
		}
	}

	// Offsets refer to the pre-transaction document; applying back to front
	// keeps earlier offsets valid.
	policy := buffer.ConvertPolicy{ClampMode: buffer.OffsetError}
	edits := make([]buffer.TextEdit, 0, len(changes))
	for i := len(changes) - 1; i >= 0; i-- {
		c := changes[i]
		start, ok := h.buf.PosFromByteOffset(c.From, policy)
		if !ok {
			return fmt.Errorf("%w: offset %d", ErrInvalidRange, c.From)
		}
		end, ok := h.buf.PosFromByteOffset(c.To, policy)
		if !ok {
			return fmt.Errorf("%w: offset %d", ErrInvalidRange, c.To)
		}
		edits = append(edits, buffer.TextEdit{Range: buffer.Range{Start: start, End: end}, Text: c.Insert})
	}

	h.buf.Apply(edits...)
	h.sync()
	return nil
}
