package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lapel/buffer"
)

type recordingPlugin struct {
	view    View
	updates []ViewUpdate
}

func (p *recordingPlugin) Update(u ViewUpdate) { p.updates = append(p.updates, u) }

func newRecorder() (*PluginSpec, func(View) *recordingPlugin) {
	spec := DefinePlugin(func(v View) ViewPlugin { return &recordingPlugin{view: v} })
	return spec, func(v View) *recordingPlugin { return v.Plugin(spec).(*recordingPlugin) }
}

func TestPlugin_CreatedOncePerView(t *testing.T) {
	spec, get := newRecorder()
	m := New(Config{Text: "x", Extensions: []Extension{{Plugins: []*PluginSpec{spec, spec}}}})

	p := get(m.EditorView())
	if p.view == nil || p.view.State().Doc() != "x" {
		t.Fatalf("plugin view state at creation: got %v", p.view)
	}
	if len(m.host.plugins) != 1 {
		t.Fatalf("plugin instances: got %d, want %d", len(m.host.plugins), 1)
	}
	if other := DefinePlugin(spec.Create); m.EditorView().Plugin(other) != nil {
		t.Fatalf("unknown spec should have no instance")
	}
}

func TestPlugin_UpdateFlags(t *testing.T) {
	spec, get := newRecorder()
	m := New(Config{Text: "ab", Extensions: []Extension{{Plugins: []*PluginSpec{spec}}}})
	p := get(m.EditorView())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if len(p.updates) != 1 {
		t.Fatalf("updates after move: got %d, want %d", len(p.updates), 1)
	}
	u := p.updates[0]
	if u.DocChanged || !u.SelectionSet || u.ModeChanged {
		t.Fatalf("move flags: got doc=%v sel=%v mode=%v, want false true false", u.DocChanged, u.SelectionSet, u.ModeChanged)
	}
	if u.StartState.Selections()[0].From != 0 || u.State.Selections()[0].From != 1 {
		t.Fatalf("move states: start %v, next %v", u.StartState.Selections(), u.State.Selections())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Z")})
	if u := p.updates[len(p.updates)-1]; !u.DocChanged || u.State.Doc() != "aZb" {
		t.Fatalf("insert update: got doc=%v %q", u.DocChanged, u.State.Doc())
	}

	n := len(p.updates)
	m = m.SetLivePreview(true)
	if len(p.updates) != n+1 || !p.updates[n].ModeChanged || !p.updates[n].State.LivePreview() {
		t.Fatalf("mode update missing: %+v", p.updates[n:])
	}

	// Re-setting the same mode is not a change.
	_ = m.SetLivePreview(true)
	if len(p.updates) != n+1 {
		t.Fatalf("redundant mode set produced an update")
	}
}

func TestPlugin_SeesStateMatchingUpdate(t *testing.T) {
	var seen []string
	spec := DefinePlugin(func(v View) ViewPlugin {
		return pluginFunc(func(u ViewUpdate) { seen = append(seen, u.View.State().Doc()) })
	})
	m := New(Config{Text: "", Extensions: []Extension{{Plugins: []*PluginSpec{spec}}}})
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	if len(seen) != 1 || seen[0] != "q" {
		t.Fatalf("view state during update: got %q, want [%q]", seen, "q")
	}
}

type pluginFunc func(u ViewUpdate)

func (f pluginFunc) Update(u ViewUpdate) { f(u) }

func TestPlugin_DocChangedFollowsTextChanges(t *testing.T) {
	spec, get := newRecorder()
	m := New(Config{Text: "ab", Extensions: []Extension{{Plugins: []*PluginSpec{spec}}}})
	p := get(m.EditorView())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Z")})
	m.Buffer().Undo()
	m, _ = m.Update(nil)
	if len(p.updates) != 2 {
		t.Fatalf("updates: got %d, want %d", len(p.updates), 2)
	}
	for i, u := range p.updates {
		if !u.DocChanged {
			t.Fatalf("update %d: got DocChanged=false, want true", i)
		}
	}
	if got := p.updates[1].State.Doc(); got != "ab" {
		t.Fatalf("doc after undo: got %q, want %q", got, "ab")
	}

	m.Buffer().SetSelection(buffer.Range{End: buffer.Pos{GraphemeCol: 2}})
	_, _ = m.Update(nil)
	if u := p.updates[len(p.updates)-1]; u.DocChanged || !u.SelectionSet {
		t.Fatalf("selection update: got doc=%v sel=%v, want false true", u.DocChanged, u.SelectionSet)
	}
}
