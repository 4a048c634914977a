package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

// MenuItem is one entry of a popup menu. OnClick runs after the menu closes;
// its error is delivered to the host as an ErrorMsg.
type MenuItem struct {
	Title   string
	Icon    string
	OnClick func() error
}

// Menu is a modal list of items shown at a viewport cell.
type Menu struct {
	Items []MenuItem
	// Selected is the item highlighted when the menu opens. Out of range
	// values select the first item.
	Selected int
}

type menuState struct {
	menu     Menu
	x, y     int
	selected int
}

var menuKeys = struct {
	Up, Down, Choose, Close key.Binding
}{
	Up:     key.NewBinding(key.WithKeys("up", "shift+tab", "ctrl+k")),
	Down:   key.NewBinding(key.WithKeys("down", "tab", "ctrl+j")),
	Choose: key.NewBinding(key.WithKeys("enter")),
	Close:  key.NewBinding(key.WithKeys("esc", "ctrl+c")),
}

var menuIcons = map[string]string{
	"hash": "#",
}

func menuIcon(name string) string {
	if s, ok := menuIcons[name]; ok {
		return s
	}
	return name
}

// ShowMenu opens menu at viewport-local (x, y).
func (m Model) ShowMenu(menu Menu, x, y int) Model {
	m.host.ShowMenu(menu, x, y)
	m.syncFromBuffer()
	return m
}

// CloseMenu dismisses the open menu, if any.
func (m Model) CloseMenu() Model {
	m.host.closeMenu()
	m.syncFromBuffer()
	return m
}

func (h *viewHost) closeMenu() {
	if h.menu == nil {
		return
	}
	h.menu = nil
	h.rev++
}

// chooseMenuItem closes the menu and runs item i.
func (h *viewHost) chooseMenuItem(i int) tea.Cmd {
	if h.menu == nil || i < 0 || i >= len(h.menu.menu.Items) {
		return nil
	}
	item := h.menu.menu.Items[i]
	h.closeMenu()
	if item.OnClick == nil {
		return nil
	}
	if err := item.OnClick(); err != nil {
		return func() tea.Msg { return ErrorMsg{Err: err} }
	}
	return nil
}

func (m Model) updateMenuKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	ms := m.host.menu
	n := len(ms.menu.Items)
	switch {
	case key.Matches(msg, menuKeys.Up):
		ms.selected = (ms.selected + n - 1) % n
		m.host.rev++
	case key.Matches(msg, menuKeys.Down):
		ms.selected = (ms.selected + 1) % n
		m.host.rev++
	case key.Matches(msg, menuKeys.Choose):
		return m, m.host.chooseMenuItem(ms.selected)
	case key.Matches(msg, menuKeys.Close):
		m.host.closeMenu()
	}
	return m, nil
}

func (m Model) updateMenuMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	lay := m.menuLayout()
	if i, ok := lay.itemAt(msg.X, msg.Y); ok {
		return m, m.host.chooseMenuItem(i)
	}
	m.host.closeMenu()
	return m, nil
}

type menuLayout struct {
	view          string
	x, y          int
	width, height int
	// Offset of the first item row inside the box.
	innerY int
	items  int
}

func (l menuLayout) itemAt(x, y int) (int, bool) {
	if x < l.x || x >= l.x+l.width {
		return 0, false
	}
	i := y - l.y - l.innerY
	if i < 0 || i >= l.items {
		return 0, false
	}
	return i, true
}

func (m Model) menuLayout() menuLayout {
	ms := m.host.menu
	if ms == nil {
		return menuLayout{}
	}
	st := m.cfg.Style

	labels := make([]string, len(ms.menu.Items))
	width := 0
	for i, it := range ms.menu.Items {
		label := it.Title
		if it.Icon != "" {
			label = menuIcon(it.Icon) + " " + label
		}
		labels[i] = label
		width = max(width, lipgloss.Width(label))
	}
	rows := make([]string, len(labels))
	for i, label := range labels {
		s := st.MenuItem
		if i == ms.selected {
			s = st.MenuSelected.Inherit(st.MenuItem)
		}
		rows[i] = s.Render(label + strings.Repeat(" ", width-lipgloss.Width(label)))
	}
	view := st.Menu.Render(strings.Join(rows, "\n"))

	w, h := lipgloss.Width(view), lipgloss.Height(view)
	vw := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize()
	vh := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()

	// Open below the pointer, or above it when there is no room.
	y := ms.y + 1
	if y+h > vh && ms.y-h >= 0 {
		y = ms.y - h
	}
	return menuLayout{
		view:   view,
		x:      clampInt(ms.x, 0, max(vw-w, 0)),
		y:      clampInt(y, 0, max(vh-h, 0)),
		width:  w,
		height: h,
		innerY: st.Menu.GetBorderTopSize() + st.Menu.GetPaddingTop(),
		items:  len(rows),
	}
}

func (m Model) composeMenu(base string) string {
	lay := m.menuLayout()
	if lay.view == "" {
		return base
	}
	leftFrame := m.viewport.Style.GetMarginLeft() + m.viewport.Style.GetBorderLeftSize() + m.viewport.Style.GetPaddingLeft()
	topFrame := m.viewport.Style.GetMarginTop() + m.viewport.Style.GetBorderTopSize() + m.viewport.Style.GetPaddingTop()
	return overlay.Composite(lay.view, base, overlay.Left, overlay.Top, leftFrame+lay.x, topFrame+lay.y)
}
