package headingmarker

import (
	"github.com/iw2rmb/lapel/editor"
)

// Plugin keeps the marker set of one editor view current.
type Plugin struct {
	view editor.View
	app  App

	// Last state seen, used by Refresh.
	state   editor.State
	markers MarkerSet
}

func newPlugin(app App, v editor.View) *Plugin {
	st := v.State()
	return &Plugin{
		view:    v,
		app:     app,
		state:   st,
		markers: Build(st, st.Selections()),
	}
}

// Update rebuilds the marker set from scratch for every change.
func (p *Plugin) Update(u editor.ViewUpdate) {
	p.state = u.State
	if !u.State.LivePreview() {
		p.markers = Empty
		return
	}
	p.markers = Build(u.State, u.State.Selections())
}

// Markers returns the current marker set.
func (p *Plugin) Markers() MarkerSet { return p.markers }

// Refresh rebuilds from the last state the plugin saw.
func (p *Plugin) Refresh() MarkerSet {
	p.markers = Build(p.state, p.state.Selections())
	return p.markers
}

// MarkerFor returns the marker starting on line.
func (p *Plugin) MarkerFor(line editor.Line) (Marker, bool) {
	return p.markers.Between(line.From, line.To)
}

// SetLevel rewrites the line containing off as a level heading in a single
// transaction.
func (p *Plugin) SetLevel(off, level int) error {
	line := p.view.State().LineAt(off)
	next := ReplaceHeading(level, line.Text)
	p.app.logger().Debug("set heading level", "line", line.Number, "level", level)
	return p.app.dispatcher(p.view).Dispatch(editor.Transaction{Changes: []editor.ChangeSpec{{
		From:   line.From,
		To:     line.To,
		Insert: next,
	}}})
}
