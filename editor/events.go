package editor

import "github.com/iw2rmb/lapel/buffer"

type ChangeEvent struct {
	Version    uint64
	Cursor     buffer.Pos
	Selections []buffer.Range

	// Full text; hosts diff if needed.
	Text string

	// TextChanged is false for cursor and selection only events.
	TextChanged bool
	// Change is the most recent text change when TextChanged is set.
	Change buffer.Change
}

func buildChangeEvent(b *buffer.Buffer, prevSeq uint64) ChangeEvent {
	ev := ChangeEvent{
		Version:    b.Version(),
		Cursor:     b.Cursor(),
		Selections: b.Selections(),
		Text:       b.Text(),
	}
	if b.ChangeSeq() != prevSeq {
		ev.TextChanged = true
		ev.Change, _ = b.LastChange()
	}
	return ev
}
