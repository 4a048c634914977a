package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lapel/buffer"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.host.menu != nil {
		return m.updateMenuMouse(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)

	if !m.focused {
		return m, cmd
	}

	// Only handle selection/cursor changes for left button interactions.
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, cmd
		}
		if !m.mouseInBounds(msg.X, msg.Y) {
			return m, cmd
		}
		m.gutterPress = gutterPress{}
		if hit, ok := m.hitGutter(msg.X, msg.Y); ok {
			m.gutterPress = gutterPress{active: true, gutter: hit.gutter, row: hit.row, x: msg.X, y: msg.Y}
			if g := m.gutters[hit.gutter]; g.OnMouseDown != nil && g.OnMouseDown(m.gutterEvent(hit, msg.X, msg.Y)) {
				return m, cmd
			}
		}

		p := m.screenToDocPos(msg.X, msg.Y)
		b := m.host.buf
		switch {
		case msg.Alt:
			b.AddCursor(p)
			return m, cmd
		case msg.Shift:
			anchor := b.Cursor()
			if raw, ok := b.SelectionRaw(); ok {
				anchor = raw.Start
			}
			m.mouseAnchor = anchor
			b.SetCursor(p)
			b.SetSelection(buffer.Range{Start: anchor, End: p})
		default:
			m.mouseAnchor = p
			b.SetCursor(p)
			b.ClearSelection()
		}
		m.mouseDragging = true

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m, cmd
		}
		x, y := m.clampMouseToBounds(msg.X, msg.Y)
		p := m.screenToDocPos(x, y)
		m.host.buf.SetCursor(p)
		m.host.buf.SetSelection(buffer.Range{Start: m.mouseAnchor, End: p})

	case tea.MouseActionRelease:
		m.mouseDragging = false
		press := m.gutterPress
		m.gutterPress = gutterPress{}
		if !press.active {
			return m, cmd
		}
		hit, ok := m.hitGutter(msg.X, msg.Y)
		if !ok || hit.gutter != press.gutter || hit.row != press.row {
			return m, cmd
		}
		if g := m.gutters[hit.gutter]; g.OnClick != nil {
			g.OnClick(m.gutterEvent(hit, msg.X, msg.Y))
		}
	}

	return m, cmd
}

func (m Model) gutterEvent(hit gutterHit, x, y int) GutterEvent {
	return GutterEvent{
		View:   m.host,
		Line:   m.host.published.Line(hit.row + 1),
		Target: hit.segment,
		X:      x,
		Y:      y,
	}
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}

func (m Model) clampMouseToBounds(x, y int) (int, int) {
	if m.viewport.Width > 0 {
		x = clampInt(x, 0, m.viewport.Width-1)
	}
	if m.viewport.Height > 0 {
		y = clampInt(y, 0, m.viewport.Height-1)
	}
	return x, y
}
