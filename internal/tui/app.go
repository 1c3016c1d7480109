package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/motohub/internal/collection"
	"github.com/muurk/motohub/internal/hub"
	"github.com/muurk/motohub/internal/ui"
)

// Tab is one of the profile page tabs
type Tab int

const (
	TabVehicles Tab = iota
	TabPosts
	TabRoutes
	TabGroups
	numTabs
)

var tabNames = [numTabs]string{"Vehicles", "Posts", "Routes", "Groups"}

// String returns the tab label
func (t Tab) String() string {
	if t < 0 || t >= numTabs {
		return "Unknown"
	}
	return tabNames[t]
}

type emptyState struct{ title, body string }

var emptyStates = map[Tab]emptyState{
	TabPosts:  {"No posts yet", "Posts you create will appear here. Press n to create your first post"},
	TabRoutes: {"No routes shared yet", "Routes you share will appear here"},
	TabGroups: {"No groups joined yet", "Groups you join will appear here"},
}

// ToastTickInterval is how often expired toasts are pruned.
const ToastTickInterval = time.Second

// OpenSettingsMsg asks the app to open the settings dialog. The navbar
// Settings action sends it.
type OpenSettingsMsg struct{}

type toastTickMsg time.Time

func tickToasts() tea.Cmd {
	return tea.Tick(ToastTickInterval, func(t time.Time) tea.Msg { return toastTickMsg(t) })
}

// AppModel is the profile page: profile header, tabs, garage, dialogs and
// toasts.
type AppModel struct {
	hub *hub.Hub

	Tab        Tab
	Cursor     int // selected vehicle
	PostCursor int // selected post
	dialog     dialog

	Width  int
	Height int

	Help help.Model
	Keys appKeyMap
}

// NewAppModel creates the app over h.
func NewAppModel(h *hub.Hub) AppModel {
	return AppModel{
		hub:  h,
		Help: help.New(),
		Keys: newAppKeyMap(),
	}
}

// Init starts the toast pruning tick
func (m AppModel) Init() tea.Cmd {
	return tickToasts()
}

// Hub returns the state the app edits.
func (m AppModel) Hub() *hub.Hub {
	return m.hub
}

// Editing reports whether a dialog is open.
func (m AppModel) Editing() bool {
	return m.dialog != nil
}

// Update handles all messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case toastTickMsg:
		m.hub.Notifier.Prune()
		return m, tickToasts()

	case OpenSettingsMsg:
		if m.dialog != nil {
			return m, nil
		}
		d, cmd := NewEditorModel("Settings", m.hub.EditSettings())
		m.dialog = d
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.dialog != nil {
			return m.updateDialog(msg)
		}
		return m.updateNormalMode(msg)
	}

	if m.dialog != nil {
		return m.updateDialog(msg)
	}
	return m, nil
}

func (m AppModel) updateDialog(msg tea.Msg) (tea.Model, tea.Cmd) {
	d, cmd := m.dialog.Update(msg)
	if !d.Done() {
		m.dialog = d
		return m, cmd
	}

	m.dialog = nil
	if i := collection.IndexOf(m.hub.Vehicles, m.hub.LastCommitted); i >= 0 {
		m.Cursor = i
	}
	if i := collection.IndexOf(m.hub.Posts, m.hub.LastCommitted); i >= 0 {
		m.PostCursor = i
	}
	return m, cmd
}

// updateNormalMode handles input when no dialog is open
func (m AppModel) updateNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Up):
		if m.Tab == TabPosts {
			m.PostCursor = max(m.PostCursor-1, 0)
		} else if m.Cursor > 0 {
			m.Cursor--
		}

	case key.Matches(msg, m.Keys.Down):
		if m.Tab == TabPosts {
			m.PostCursor = max(min(m.PostCursor+1, len(m.hub.Posts)-1), 0)
		} else if m.Cursor < len(m.hub.Vehicles)-1 {
			m.Cursor++
		}

	case key.Matches(msg, m.Keys.NextTab):
		m.Tab = (m.Tab + 1) % numTabs

	case key.Matches(msg, m.Keys.PrevTab):
		m.Tab = (m.Tab + numTabs - 1) % numTabs

	case key.Matches(msg, m.Keys.Add):
		m.Tab = TabVehicles
		d, cmd := NewEditorModel("Add Vehicle", m.hub.AddVehicle())
		m.dialog = d
		return m, cmd

	case key.Matches(msg, m.Keys.NewPost):
		m.Tab = TabPosts
		d, cmd := NewEditorModel("Create Post", m.hub.NewPost())
		m.dialog = d
		return m, cmd

	case key.Matches(msg, m.Keys.Edit) && m.Tab == TabPosts:
		if len(m.hub.Posts) == 0 {
			return m, nil
		}
		ctrl, err := m.hub.EditPost(m.hub.Posts[m.PostCursor].ID)
		if err != nil {
			return m, nil
		}
		d, cmd := NewEditorModel("Edit Post", ctrl)
		m.dialog = d
		return m, cmd

	case key.Matches(msg, m.Keys.Edit):
		if m.Tab != TabVehicles || len(m.hub.Vehicles) == 0 {
			return m, nil
		}
		ctrl, err := m.hub.EditVehicle(m.hub.Vehicles[m.Cursor].ID)
		if err != nil {
			return m, nil
		}
		d, cmd := NewEditorModel("Edit Vehicle", ctrl)
		m.dialog = d
		return m, cmd

	case key.Matches(msg, m.Keys.Profile):
		d, cmd := NewEditorModel("Edit Profile", m.hub.EditProfile())
		m.dialog = d
		return m, cmd

	case key.Matches(msg, m.Keys.Settings):
		return m, func() tea.Msg { return OpenSettingsMsg{} }

	case key.Matches(msg, m.Keys.Cover):
		m.hub.ChangeCover()

	case key.Matches(msg, m.Keys.Avatar):
		m.hub.ChangeAvatar()

	case key.Matches(msg, m.Keys.ToggleTheme):
		m.hub.ToggleTheme()

	case key.Matches(msg, m.Keys.Dismiss):
		m.hub.Notifier.DismissAll()
	}

	return m, nil
}

// View renders the page
func (m AppModel) View() string {
	width, height := m.Width, m.Height
	if width == 0 {
		width, height = defaultWidth, defaultHeight
	}
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	inner := width - 4
	s := currentStyles()

	sections := []string{ui.RenderProfileCard(s.Styles, m.hub.Profile, inner)}

	var keys help.KeyMap = m.Keys
	if m.dialog != nil {
		sections = append(sections, m.dialog.View(s, inner))
		keys = m.dialog.Keys()
	} else {
		sections = append(sections, m.renderTabs(s), m.renderTab(s, inner))
	}

	if toasts := m.renderToasts(s, inner); toasts != "" {
		sections = append(sections, lipgloss.PlaceHorizontal(inner, lipgloss.Right, toasts))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return renderApplicationContainer(s, content, m.Help.View(keys), width, height)
}

func (m AppModel) renderTabs(s styles) string {
	tabs := make([]string, 0, numTabs)
	for t := Tab(0); t < numTabs; t++ {
		if t == m.Tab {
			tabs = append(tabs, s.ActiveTab.Render(t.String()))
		} else {
			tabs = append(tabs, s.Tab.Render(t.String()))
		}
	}
	return "\n" + lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n"
}

func (m AppModel) renderTab(s styles, width int) string {
	if m.Tab == TabPosts && len(m.hub.Posts) > 0 {
		return m.renderPosts(s, width)
	}
	if m.Tab != TabVehicles {
		e := emptyStates[m.Tab]
		return lipgloss.JoinVertical(lipgloss.Left, "", s.EmptyTitle.Render("  "+e.title), s.Muted.Render("  "+e.body), "")
	}

	if len(m.hub.Vehicles) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, "",
			s.EmptyTitle.Render("  No vehicles yet"),
			s.Muted.Render("  Press a to add your first vehicle"), "")
	}

	cards := make([]string, 0, len(m.hub.Vehicles))
	for i, v := range m.hub.Vehicles {
		marker := "  "
		if i == m.Cursor {
			marker = s.Selected.Render("▶ ")
		}
		cards = append(cards, lipgloss.JoinHorizontal(lipgloss.Top, marker, ui.RenderVehicleCard(s.Styles, v, width-2)))
	}
	return strings.Join(cards, "\n")
}

func (m AppModel) renderPosts(s styles, width int) string {
	now := m.hub.Now()
	cards := make([]string, 0, len(m.hub.Posts))
	for i, p := range m.hub.Posts {
		marker := "  "
		if i == m.PostCursor {
			marker = s.Selected.Render("▶ ")
		}
		cards = append(cards, lipgloss.JoinHorizontal(lipgloss.Top, marker, ui.RenderPostCard(s.Styles, p, now, width-2)))
	}
	return strings.Join(cards, "\n")
}

func (m AppModel) renderToasts(s styles, width int) string {
	active := m.hub.Notifier.Active()
	if len(active) == 0 {
		return ""
	}
	toastWidth := width / 2
	if toastWidth < 36 {
		toastWidth = 36
	}
	rendered := make([]string, 0, len(active))
	for _, t := range active {
		rendered = append(rendered, ui.RenderToast(s.Styles, t.Title, t.Description, toastWidth))
	}
	return lipgloss.JoinVertical(lipgloss.Right, rendered...)
}

// Run starts the full-screen program.
func Run(h *hub.Hub) error {
	p := tea.NewProgram(NewAppModel(h), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
