package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lapel/buffer"
)

// Model is a Bubble Tea component that renders and interacts with a buffer.
//
// Copies of a Model share the buffer, installed plugins and open menu.
type Model struct {
	cfg  Config
	host *viewHost

	gutters         []Gutter
	highlightActive bool

	focused bool

	viewport viewport.Model

	lastRev       uint64
	lastVersion   uint64
	lastChangeSeq uint64
	lastCursor    buffer.Pos

	mouseAnchor   buffer.Pos
	mouseDragging bool
	gutterPress   gutterPress
}

// gutterPress remembers a press in a gutter so a release on the same cell
// raises OnClick.
type gutterPress struct {
	active bool
	gutter int
	row    int
	x, y   int
}

// ErrorMsg reports an error raised by a menu action or dispatch; hosts
// receive it through the returned tea.Cmd.
type ErrorMsg struct {
	Err error
}

func New(cfg Config) Model {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = 4
	}
	m := Model{
		cfg:      cfg,
		host:     newViewHost(cfg),
		gutters:  orderGutters(cfg),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	for _, ext := range cfg.Extensions {
		m.highlightActive = m.highlightActive || ext.HighlightActiveLineGutter
	}
	m.lastRev = m.host.rev
	m.lastVersion = m.host.buf.Version()
	m.lastChangeSeq = m.host.buf.ChangeSeq()
	m.lastCursor = m.host.buf.Cursor()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.host.buf }

// View returns the editor as seen by extensions.
func (m Model) EditorView() View { return m.host }

// State returns the last published state.
func (m Model) State() State { return m.host.published }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.viewport.Width = max(width, 0)
	m.viewport.Height = max(height, 0)
	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) LivePreview() bool { return m.host.livePreview }

// SetLivePreview switches the display mode and notifies plugins.
func (m Model) SetLivePreview(on bool) Model {
	m.host.livePreview = on
	m.syncFromBuffer()
	return m
}

// MenuOpen reports whether a modal menu is showing.
func (m Model) MenuOpen() bool { return m.host.menu != nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	// Pick up direct buffer mutations so handlers see the current state.
	m.host.sync()

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		if m.host.menu != nil {
			m, cmd = m.updateMenuKey(msg)
		} else {
			m, cmd = m.updateKey(msg)
		}
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	}
	if cursorChanged := m.syncFromBuffer(); cursorChanged {
		m.followCursor()
	}
	return m, cmd
}

func (m Model) View() string {
	base := m.viewport.View()
	if m.host.menu == nil {
		return base
	}
	return m.composeMenu(base)
}

func (m *Model) syncFromBuffer() (cursorChanged bool) {
	m.host.sync()
	b := m.host.buf
	if m.host.rev == m.lastRev && b.Version() == m.lastVersion {
		return false
	}
	if b.Version() != m.lastVersion && m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(b, m.lastChangeSeq))
	}
	m.lastChangeSeq = b.ChangeSeq()
	cursorChanged = b.Cursor() != m.lastCursor
	m.lastRev = m.host.rev
	m.lastVersion = b.Version()
	m.lastCursor = b.Cursor()
	m.rebuildContent()
	return cursorChanged
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	cur := m.host.buf.Cursor()
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	y := m.viewport.YOffset
	if cur.Row < y {
		m.viewport.SetYOffset(cur.Row)
		return
	}
	if cur.Row >= y+h {
		m.viewport.SetYOffset(cur.Row - h + 1)
	}
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
