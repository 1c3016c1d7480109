package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/muurk/motohub/internal/theme"
)

// Layout constants
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
	DefaultPadding   = 2   // Default padding inside boxes
)

// Markers
const (
	SuccessMarker = "✓"
	FailureMarker = "✗"
	WarningMarker = "⚠"
	BulletMarker  = "•"
)

// Styles is the set of styles for one palette.
type Styles struct {
	Palette theme.Palette

	// HeaderTitle is for the main title (e.g., "MY GARAGE")
	HeaderTitle lipgloss.Style
	// HeaderCommand is for the command path (e.g., "motohub show")
	HeaderCommand    lipgloss.Style
	HeaderParamKey   lipgloss.Style
	HeaderParamValue lipgloss.Style

	SuccessTitle lipgloss.Style
	ErrorTitle   lipgloss.Style
	WarningTitle lipgloss.Style
	ErrorMessage lipgloss.Style

	// ResultKey is for result detail keys
	ResultKey   lipgloss.Style
	ResultValue lipgloss.Style

	CardTitle    lipgloss.Style
	CardSubtitle lipgloss.Style
	SectionTitle lipgloss.Style
	Muted        lipgloss.Style
	Text         lipgloss.Style

	ToastTitle lipgloss.Style
	ToastBody  lipgloss.Style
}

// NewStyles builds the styles for a palette.
func NewStyles(p theme.Palette) Styles {
	return Styles{
		Palette: p,

		HeaderTitle:      lipgloss.NewStyle().Foreground(p.Text).Bold(true).PaddingLeft(2),
		HeaderCommand:    lipgloss.NewStyle().Foreground(p.Subtle).PaddingLeft(2),
		HeaderParamKey:   lipgloss.NewStyle().Foreground(p.Subtle).PaddingLeft(2),
		HeaderParamValue: lipgloss.NewStyle().Foreground(p.Text),

		SuccessTitle: lipgloss.NewStyle().Foreground(p.Secondary).Bold(true),
		ErrorTitle:   lipgloss.NewStyle().Foreground(p.Error).Bold(true),
		WarningTitle: lipgloss.NewStyle().Foreground(p.Warning).Bold(true),
		ErrorMessage: lipgloss.NewStyle().Foreground(p.Error),

		ResultKey:   lipgloss.NewStyle().Foreground(p.Subtle).Width(22),
		ResultValue: lipgloss.NewStyle().Foreground(p.Text),

		CardTitle:    lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
		CardSubtitle: lipgloss.NewStyle().Foreground(p.Subtle),
		SectionTitle: lipgloss.NewStyle().Foreground(p.Text).Bold(true).Underline(true),
		Muted:        lipgloss.NewStyle().Foreground(p.Subtle),
		Text:         lipgloss.NewStyle().Foreground(p.Text),

		ToastTitle: lipgloss.NewStyle().Foreground(p.Text).Bold(true),
		ToastBody:  lipgloss.NewStyle().Foreground(p.Subtle),
	}
}

// CurrentStyles returns the styles for the process-wide theme.
func CurrentStyles() Styles {
	return NewStyles(theme.CurrentPalette())
}

// HeaderBorder returns the border style for headers
func (s Styles) HeaderBorder(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Palette.Border).
		Width(width - 2) // Account for border characters
}

// ResultBox returns the double-bordered box used for results
func (s Styles) ResultBox(width int, color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(color).
		Width(width-2).
		Padding(0, DefaultPadding)
}

// CardBox returns the rounded box used for vehicle and profile cards
func (s Styles) CardBox(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Palette.Subtle).
		Width(width-2).
		Padding(0, 1)
}

// ToastBox returns the box used for a notification
func (s Styles) ToastBox(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Palette.Highlight).
		Width(width).
		Padding(0, 1)
}

// Divider renders a horizontal line of the given width
func (s Styles) Divider(width int) string {
	if width < 1 {
		width = 1
	}
	return lipgloss.NewStyle().
		Foreground(s.Palette.Border).
		Render(strings.Repeat("─", width))
}

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// GetTerminalSize returns the current terminal width and height
func GetTerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MinTerminalWidth, 24 // Default fallback
	}
	return clampWidth(width), height
}

// IsTerminal reports whether stdout is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func clampWidth(width int) int {
	if width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}
