package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/motohub/internal/theme"
	"github.com/muurk/motohub/internal/ui"
	"github.com/muurk/motohub/internal/version"
)

// Application branding constants
const (
	AppName = "MOTOHUB"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants for responsive terminal width
const (
	MinTerminalWidth = 72
	MinEditorWidth   = 48
	defaultWidth     = 80
	defaultHeight    = 30
)

// styles is the full style set for one palette. It is rebuilt on every
// render so a theme change shows up immediately.
type styles struct {
	ui.Styles

	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Tab          lipgloss.Style
	ActiveTab    lipgloss.Style
	Selected     lipgloss.Style
	Help         lipgloss.Style
	FocusedLabel lipgloss.Style
	BlurredLabel lipgloss.Style
	EmptyTitle   lipgloss.Style
	NavAction    lipgloss.Style
}

func newStyles(p theme.Palette) styles {
	return styles{
		Styles: ui.NewStyles(p),

		Title:    lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(p.Subtle).Italic(true),
		Tab:      lipgloss.NewStyle().Foreground(p.Subtle).Padding(0, 2),
		ActiveTab: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true).
			Padding(0, 2).
			Underline(true),
		Selected:     lipgloss.NewStyle().Foreground(p.Highlight).Bold(true),
		Help:         lipgloss.NewStyle().Foreground(p.Subtle),
		FocusedLabel: lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
		BlurredLabel: lipgloss.NewStyle().Foreground(p.Subtle),
		EmptyTitle:   lipgloss.NewStyle().Foreground(p.Text).Bold(true),
		NavAction:    lipgloss.NewStyle().Foreground(p.Primary),
	}
}

func currentStyles() styles {
	return newStyles(theme.CurrentPalette())
}

// editorBox returns the inline editor frame
func (s styles) editorBox(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.Border{
			Top:    "━",
			Bottom: "━",
			Left:   "┃",
			Right:  "┃",
		}).
		BorderForeground(s.Palette.Primary).
		Width(width-2).
		Padding(0, 1)
}

// renderApplicationContainer wraps every screen: header with the navbar
// actions, content, and the help footer.
func renderApplicationContainer(s styles, content, footer string, width, height int) string {
	left := s.Title.Render(AppName) + s.Help.Render(" v"+AppVersion())
	right := s.NavAction.Render("[s] Settings")
	gap := width - 4 - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, left, lipgloss.NewStyle().Width(gap).Render(""), right)

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(s.Palette.Border).
		Width(width-4).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(s.Palette.Border).
		Width(width-4).
		Padding(0, 1)

	inner := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(header),
		lipgloss.NewStyle().Width(width-4).Render(content),
		footerStyle.Render(s.Help.Render(footer)),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(s.Palette.Border).
		Width(width - 2).
		Render(inner)
}
