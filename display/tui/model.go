package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/sysbar/internal/format"
	"gitlab.com/tinyland/lab/sysbar/statusbar"
)

// slotSeparator joins bar segments.
const slotSeparator = " │ "

// toastTTL is how long an error toast stays visible.
const toastTTL = 5 * time.Second

// refreshMsg drives the render tick.
type refreshMsg time.Time

// detailMsg opens the modal detail view.
type detailMsg struct {
	title string
	body  string
}

// errMsg shows an error toast.
type errMsg struct {
	text string
}

// clearToastMsg expires the current toast.
type clearToastMsg struct{}

// modalState holds the open detail modal.
type modalState struct {
	title    string
	viewport viewport.Model
}

// Model is the top-level Bubbletea model for the status bar shell.
type Model struct {
	app   *App
	views []statusbar.SlotView

	width  int
	height int
	ready  bool

	// focus indexes the visible slots; -1 means no slot focused.
	focus int

	modal *modalState

	toast    string
	toastSet time.Time

	lastUpdate time.Time
}

// newModel returns an initialized Model with no slot focused.
func newModel(app *App) Model {
	return Model{
		app:   app,
		views: app.bar.Views(),
		focus: -1,
	}
}

// Init schedules the first render tick.
func (m Model) Init() tea.Cmd {
	return refreshCmd(m.app.refresh)
}

func refreshCmd(after time.Duration) tea.Cmd {
	return tea.Tick(after, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}

// visibleViews returns the currently visible slots in display order.
func (m Model) visibleViews() []statusbar.SlotView {
	visible := make([]statusbar.SlotView, 0, len(m.views))
	for _, v := range m.views {
		if v.Visible {
			visible = append(visible, v)
		}
	}
	return visible
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		if m.modal != nil {
			w, h := m.modalSize()
			m.modal.viewport.Width = w
			m.modal.viewport.Height = h
		}
		return m, nil

	case refreshMsg:
		m.views = m.app.bar.Views()
		m.lastUpdate = time.Time(msg)
		return m, refreshCmd(m.app.refresh)

	case detailMsg:
		w, h := m.modalSize()
		vp := viewport.New(w, h)
		vp.SetContent(msg.body)
		m.modal = &modalState{title: msg.title, viewport: vp}
		return m, nil

	case errMsg:
		m.toast = msg.text
		m.toastSet = time.Now()
		return m, tea.Tick(toastTTL, func(time.Time) tea.Msg {
			return clearToastMsg{}
		})

	case clearToastMsg:
		if time.Since(m.toastSet) >= toastTTL {
			m.toast = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)
	}

	return m, nil
}

// updateKeys routes key presses. An open modal captures scrolling keys and
// closes on esc or q.
func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.modal != nil {
		switch {
		case key.Matches(msg, keys.Close), key.Matches(msg, keys.Quit):
			m.modal = nil
			return m, nil
		default:
			var cmd tea.Cmd
			m.modal.viewport, cmd = m.modal.viewport.Update(msg)
			return m, cmd
		}
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.NextSlot):
		visible := m.visibleViews()
		if len(visible) > 0 {
			m.focus = (m.focus + 1) % len(visible)
		}
		return m, nil

	case key.Matches(msg, keys.PrevSlot):
		visible := m.visibleViews()
		if len(visible) > 0 {
			m.focus = (m.focus - 1 + len(visible)) % len(visible)
		}
		return m, nil

	case key.Matches(msg, keys.Open):
		visible := m.visibleViews()
		if m.focus >= 0 && m.focus < len(visible) {
			go m.app.invokeCommand(visible[m.focus].Command)
		}
		return m, nil
	}

	return m, nil
}

// updateMouse resolves left clicks to slot zones and invokes the slot's
// command. Clicks elsewhere clear the focus.
func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if m.modal != nil {
		m.modal = nil
		return m, nil
	}

	for i, v := range m.visibleViews() {
		if m.app.zones.Get("slot:" + v.ID).InBounds(msg) {
			m.focus = i
			go m.app.invokeCommand(v.Command)
			return m, nil
		}
	}

	m.focus = -1
	return m, nil
}

// modalSize returns the viewport dimensions for the detail modal.
func (m Model) modalSize() (w, h int) {
	w = m.width - 12
	if w < 30 {
		w = 30
	}
	if w > 72 {
		w = 72
	}
	h = m.height - 8
	if h < 5 {
		h = 5
	}
	if h > 24 {
		h = 24
	}
	return w, h
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if m.modal != nil {
		return m.app.zones.Scan(m.renderModal())
	}

	var sections []string
	sections = append(sections, m.renderBar())

	if tooltip := m.renderTooltip(); tooltip != "" {
		sections = append(sections, tooltip)
	}
	if m.toast != "" {
		sections = append(sections, styleToast.Render("✗ "+m.toast))
	}
	sections = append(sections, m.renderFooter())

	return m.app.zones.Scan(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderBar renders the slot segments as one marked-up line.
func (m Model) renderBar() string {
	visible := m.visibleViews()
	if len(visible) == 0 {
		return styleMuted.Render("no slots")
	}

	segments := make([]string, len(visible))
	for i, v := range visible {
		style := segmentStyle(v.Text, i == m.focus)
		segments[i] = m.app.zones.Mark("slot:"+v.ID, style.Render(v.Text))
	}

	line := strings.Join(segments, styleMuted.Render(slotSeparator))
	return styleBar.Width(m.width).Render(line)
}

// renderTooltip renders the focused slot's tooltip block.
func (m Model) renderTooltip() string {
	visible := m.visibleViews()
	if m.focus < 0 || m.focus >= len(visible) {
		return ""
	}
	tooltip := visible[m.focus].Tooltip
	if tooltip == "" {
		return ""
	}
	return styleTooltip.Render(tooltip)
}

// renderFooter renders the key hints and data age.
func (m Model) renderFooter() string {
	hints := "tab: focus slot • enter/click: details • q: quit"
	age := ""
	if !m.lastUpdate.IsZero() {
		age = "  updated " + format.TimeSince(m.lastUpdate)
	}
	return styleFooter.Width(m.width).Render(hints + age)
}

// renderModal renders the detail modal centered in the window.
func (m Model) renderModal() string {
	title := styleModalTitle.Render(m.modal.title)
	hint := styleMuted.Render("esc: close • j/k: scroll")
	box := styleModal.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.modal.viewport.View(),
		hint,
	))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
