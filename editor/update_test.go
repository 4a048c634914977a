package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lapel/buffer"
)

func TestUpdate_TypingMovementAndDelete(t *testing.T) {
	m := New(Config{
		Text:  "ab",
		Style: Style{}, // keep styles minimal for this test
	})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})
	if got := m.Buffer().Text(); got != "aXb" {
		t.Fatalf("text after insert: got %q, want %q", got, "aXb")
	}
	if got := m.Buffer().Cursor(); got != (buffer.Pos{Row: 0, GraphemeCol: 2}) {
		t.Fatalf("cursor after insert: got %v, want %v", got, buffer.Pos{Row: 0, GraphemeCol: 2})
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.Buffer().Text(); got != "ab" {
		t.Fatalf("text after backspace: got %q, want %q", got, "ab")
	}
	if got := m.Buffer().Cursor(); got != (buffer.Pos{Row: 0, GraphemeCol: 1}) {
		t.Fatalf("cursor after backspace: got %v, want %v", got, buffer.Pos{Row: 0, GraphemeCol: 1})
	}
}

func TestUpdate_ReadOnly_IgnoresMutations(t *testing.T) {
	m := New(Config{
		Text:     "ab",
		ReadOnly: true,
	})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := m.Buffer().Cursor(); got != (buffer.Pos{Row: 0, GraphemeCol: 1}) {
		t.Fatalf("cursor after move: got %v, want %v", got, buffer.Pos{Row: 0, GraphemeCol: 1})
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.Buffer().Text(); got != "ab" {
		t.Fatalf("text after read-only edits: got %q, want %q", got, "ab")
	}
}

func TestUpdate_BlurredIgnoresKeys(t *testing.T) {
	m := New(Config{Text: "ab"}).Blur()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})
	if got := m.Buffer().Text(); got != "ab" {
		t.Fatalf("text while blurred: got %q, want %q", got, "ab")
	}
}

func TestUpdate_TogglePreviewKey(t *testing.T) {
	m := New(Config{Text: "# a"})
	if m.LivePreview() {
		t.Fatalf("live preview should start off")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	if !m.LivePreview() || !m.State().LivePreview() {
		t.Fatalf("live preview after toggle: got (model=%v, state=%v), want both true", m.LivePreview(), m.State().LivePreview())
	}
	if got := m.Buffer().Text(); got != "# a" {
		t.Fatalf("toggle must not edit: got %q", got)
	}
}

func TestUpdate_UndoRedo(t *testing.T) {
	m := New(Config{Text: ""})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got := m.Buffer().Text(); got != "" {
		t.Fatalf("text after undo: got %q, want %q", got, "")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if got := m.Buffer().Text(); got != "hi" {
		t.Fatalf("text after redo: got %q, want %q", got, "hi")
	}
}
