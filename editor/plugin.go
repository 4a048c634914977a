package editor

import (
	"github.com/iw2rmb/lapel/buffer"
	"github.com/iw2rmb/lapel/syntax"
)

// View is the live editor as seen by extensions.
type View interface {
	Dispatcher
	MenuPresenter

	// State returns the current snapshot.
	State() State
	// Plugin returns the instance spec created for this view, or nil.
	Plugin(spec *PluginSpec) ViewPlugin
}

// Dispatcher applies transactions to the document.
type Dispatcher interface {
	Dispatch(tx Transaction) error
}

// MenuPresenter opens a modal menu at viewport-local cell (x, y).
type MenuPresenter interface {
	ShowMenu(menu Menu, x, y int)
}

// ViewPlugin receives every state change of the view it was created for.
type ViewPlugin interface {
	Update(u ViewUpdate)
}

// PluginSpec identifies a plugin kind. Create runs once per view when the
// editor is constructed.
type PluginSpec struct {
	Create func(v View) ViewPlugin
}

// DefinePlugin returns a spec whose identity is used by View.Plugin.
func DefinePlugin(create func(v View) ViewPlugin) *PluginSpec {
	return &PluginSpec{Create: create}
}

// ViewUpdate describes one change between two published states.
type ViewUpdate struct {
	View       View
	StartState State
	State      State

	DocChanged   bool
	SelectionSet bool
	ModeChanged  bool
}

// Extension bundles view plugins and gutters installed into an editor.
type Extension struct {
	Plugins []*PluginSpec
	Gutters []Gutter
	// HighlightActiveLineGutter styles every gutter cell on the cursor row
	// with Style.GutterActiveLine.
	HighlightActiveLineGutter bool
}

type pluginSlot struct {
	spec     *PluginSpec
	instance ViewPlugin
}

// viewHost is the part of the editor shared by every copy of a Model value:
// buffer, published state, plugins and the open menu.
type viewHost struct {
	buf *buffer.Buffer

	readOnly    bool
	livePreview bool

	published State
	rev       uint64
	// ChangeSeq of the buffer when published was taken.
	publishedSeq uint64

	tree        *syntax.Tree
	treeVersion uint64
	treeValid   bool

	plugins []pluginSlot
	menu    *menuState
}

func newViewHost(cfg Config) *viewHost {
	h := &viewHost{
		buf:         buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		readOnly:    cfg.ReadOnly,
		livePreview: cfg.LivePreview,
	}
	h.published = h.snapshot()
	h.publishedSeq = h.buf.ChangeSeq()
	for _, ext := range cfg.Extensions {
		for _, spec := range ext.Plugins {
			if spec == nil || spec.Create == nil || h.Plugin(spec) != nil {
				continue
			}
			h.plugins = append(h.plugins, pluginSlot{spec: spec, instance: spec.Create(h)})
		}
	}
	return h
}

func (h *viewHost) State() State { return h.published }

func (h *viewHost) Plugin(spec *PluginSpec) ViewPlugin {
	for _, p := range h.plugins {
		if p.spec == spec {
			return p.instance
		}
	}
	return nil
}

func (h *viewHost) ShowMenu(menu Menu, x, y int) {
	if len(menu.Items) == 0 {
		h.menu = nil
		return
	}
	sel := menu.Selected
	if sel < 0 || sel >= len(menu.Items) {
		sel = 0
	}
	h.menu = &menuState{menu: menu, x: x, y: y, selected: sel}
	h.rev++
}

// snapshot builds the state for the buffer's current content.
func (h *viewHost) snapshot() State {
	b := h.buf
	ver := b.Version()
	doc := b.Text()
	if !h.treeValid || h.treeVersion != ver || h.tree == nil || h.tree.Len() != len(doc) {
		h.tree = syntax.Parse(doc)
		h.treeVersion = ver
		h.treeValid = true
	}

	ranges := b.Selections()
	sel := make([]SelectionRange, 0, len(ranges))
	for _, r := range ranges {
		from, _ := b.ByteOffsetFromPos(r.Start, buffer.ConvertPolicy{ClampMode: buffer.OffsetClamp})
		to, _ := b.ByteOffsetFromPos(r.End, buffer.ConvertPolicy{ClampMode: buffer.OffsetClamp})
		sel = append(sel, SelectionRange{From: from, To: to})
	}
	return NewState(StateConfig{
		Doc:         doc,
		Version:     ver,
		Selections:  sel,
		LivePreview: h.livePreview,
		Tree:        h.tree,
	})
}

// sync publishes a new state and runs plugin updates when the document,
// the selections or the display mode changed.
func (h *viewHost) sync() bool {
	prev := h.published
	if prev.Version() == h.buf.Version() && prev.LivePreview() == h.livePreview {
		return false
	}
	next := h.snapshot()
	u := ViewUpdate{
		View:         h,
		StartState:   prev,
		State:        next,
		DocChanged:   h.buf.ChangeSeq() != h.publishedSeq,
		SelectionSet: !prev.sameSelections(next),
		ModeChanged:  prev.LivePreview() != next.LivePreview(),
	}
	h.published = next
	h.publishedSeq = h.buf.ChangeSeq()
	h.rev++
	if !u.DocChanged && !u.SelectionSet && !u.ModeChanged {
		return true
	}
	for _, p := range h.plugins {
		p.instance.Update(u)
	}
	return true
}
