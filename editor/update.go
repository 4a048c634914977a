package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lapel/buffer"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	b := m.host.buf
	ro := m.host.readOnly

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !ro {
			b.InsertText(string(msg.Runes))
		}
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.TogglePreview):
		m.host.livePreview = !m.host.livePreview

	case key.Matches(msg, km.Left):
		b.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		b.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight})
	case key.Matches(msg, km.Up):
		b.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirUp})
	case key.Matches(msg, km.Down):
		b.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirDown})

	case key.Matches(msg, km.ShiftLeft):
		b.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		b.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight, Extend: true})
	case key.Matches(msg, km.ShiftUp):
		b.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirUp, Extend: true})
	case key.Matches(msg, km.ShiftDown):
		b.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirDown, Extend: true})

	case key.Matches(msg, km.WordLeft):
		b.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		b.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})

	case key.Matches(msg, km.Home):
		b.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		b.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	case key.Matches(msg, km.DocStart):
		b.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome})
	case key.Matches(msg, km.DocEnd):
		b.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd})

	case key.Matches(msg, km.Backspace):
		if !ro {
			b.DeleteBackward()
		}
	case key.Matches(msg, km.Delete):
		if !ro {
			b.DeleteForward()
		}
	case key.Matches(msg, km.Enter):
		if !ro {
			b.InsertNewline()
		}

	case key.Matches(msg, km.Undo):
		if !ro {
			_ = b.Undo()
		}
	case key.Matches(msg, km.Redo):
		if !ro {
			_ = b.Redo()
		}

	default:
		if msg.Type == tea.KeyTab {
			if !ro {
				b.InsertText("\t")
			}
			return m, nil
		}
		if msg.Type == tea.KeySpace && !ro {
			b.InsertText(" ")
			return m, nil
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			if !ro {
				b.InsertText(string(msg.Runes))
			}
		}
	}

	return m, nil
}
