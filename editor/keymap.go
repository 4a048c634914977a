package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	WordLeft, WordRight                       key.Binding
	Home, End                                 key.Binding
	DocStart, DocEnd                          key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding

	Undo, Redo key.Binding

	TogglePreview key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),

		// Terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),

		Home:     key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:      key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),
		DocStart: key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("ctrl+home", "doc start")),
		DocEnd:   key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("ctrl+end", "doc end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y", "ctrl+shift+z"), key.WithHelp("ctrl+y", "redo")),

		TogglePreview: key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "live preview")),
	}
}

// isZero reports whether km was left unset by the host.
func (km KeyMap) isZero() bool {
	return len(km.Left.Keys()) == 0 && len(km.Enter.Keys()) == 0 && len(km.Undo.Keys()) == 0
}
