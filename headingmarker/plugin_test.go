package headingmarker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lapel/editor"
)

func TestPlugin_AttachRespectsMode(t *testing.T) {
	_, p, _ := newEditor(t, editor.Config{Text: sample}, App{}, true)
	if p.Markers().Len() != 0 {
		t.Fatalf("markers outside live preview at attach: got %v", p.Markers().All())
	}

	_, p, _ = newEditor(t, editor.Config{Text: sample, LivePreview: true}, App{}, true)
	if p.Markers().Len() != 1 {
		t.Fatalf("markers in live preview at attach: got %v, want one", p.Markers().All())
	}
}

func TestPlugin_ModeChangesRebuildOrClear(t *testing.T) {
	m, p, _ := newEditor(t, editor.Config{Text: sample}, App{}, true)

	m = m.SetLivePreview(true)
	if p.Markers().Len() != 1 {
		t.Fatalf("markers after enabling preview: got %v, want one", p.Markers().All())
	}
	if got := viewLines(m)[1]; got != "H2 ## Old Title" {
		t.Fatalf("row with marker: got %q", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	if m.LivePreview() || p.Markers().Len() != 0 {
		t.Fatalf("markers after toggling preview off: got %v", p.Markers().All())
	}
	if got := viewLines(m)[1]; got != "   ## Old Title" {
		t.Fatalf("row without marker: got %q", got)
	}
}

func TestPlugin_CursorOnHeadingHidesMarker(t *testing.T) {
	m, p, _ := newEditor(t, editor.Config{Text: sample, LivePreview: true}, App{}, true)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if p.Markers().Len() != 0 {
		t.Fatalf("markers with cursor on heading: got %v, want none", p.Markers().All())
	}

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if p.Markers().Len() != 1 {
		t.Fatalf("markers after leaving heading: got %v, want one", p.Markers().All())
	}
}

func TestPlugin_RebuildsOnEdit(t *testing.T) {
	m, p, _ := newEditor(t, editor.Config{Text: sample, LivePreview: true}, App{}, true)

	// Turn "Just text" into a heading from outside the extension.
	if err := m.EditorView().Dispatch(editor.Transaction{Changes: []editor.ChangeSpec{{From: 19, To: 19, Insert: "### "}}}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	// The cursor now sits on the new heading; move it to the start.
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlHome})

	got := p.Markers().All()
	if len(got) != 2 || got[1] != (Marker{Level: 3, From: 19, To: 32}) {
		t.Fatalf("markers after edit: got %v", got)
	}
}

func TestPlugin_RefreshUsesLastState(t *testing.T) {
	m, p, _ := newEditor(t, editor.Config{Text: sample, LivePreview: true}, App{}, true)
	before := p.Markers()

	m.Buffer().InsertText("x") // not yet published
	if got := p.Refresh(); !got.Equal(before) {
		t.Fatalf("refresh: got %v, want %v", got.All(), before.All())
	}
}

func TestPlugin_SetLevelOnPlainLine(t *testing.T) {
	m, p, _ := newEditor(t, editor.Config{Text: sample, LivePreview: true}, App{}, true)

	if err := p.SetLevel(22, 3); err != nil {
		t.Fatalf("SetLevel: %v", err)
	}
	want := "intro\n## Old Title\n### Just text"
	if got := m.State().Doc(); got != want {
		t.Fatalf("doc: got %q, want %q", got, want)
	}
}
