package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Param is one "Key: Value" line in a header or result.
type Param struct {
	Key   string
	Value string
}

// Header represents a command header with title, command, and parameters.
type Header struct {
	Title   string  // e.g., "MY GARAGE"
	Command string  // e.g., "motohub show"
	Params  []Param // rendered in order
	Width   int     // Terminal width for responsive rendering
}

// NewHeader creates a new header with the given values
func NewHeader(title, command string, params ...Param) *Header {
	return &Header{
		Title:   title,
		Command: command,
		Params:  params,
		Width:   GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (h *Header) SetWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header as a string
func (h *Header) Render(s Styles) string {
	width := clampWidth(h.Width)

	titleLine := s.HeaderTitle.Render(strings.ToUpper(h.Title))
	topSection := titleLine
	if h.Command != "" {
		topSection = lipgloss.JoinVertical(lipgloss.Left, titleLine, s.HeaderCommand.Render(h.Command))
	}

	content := topSection
	if len(h.Params) > 0 {
		dividerWidth := width - 6 // Account for border and padding
		if dividerWidth < 10 {
			dividerWidth = 10
		}

		paramLines := make([]string, 0, len(h.Params))
		for _, p := range h.Params {
			paramLines = append(paramLines, s.HeaderParamKey.Render(p.Key+":")+" "+s.HeaderParamValue.Render(p.Value))
		}

		content = lipgloss.JoinVertical(lipgloss.Left,
			topSection,
			"  "+s.Divider(dividerWidth),
			strings.Join(paramLines, "\n"),
		)
	}

	return s.HeaderBorder(width).Render(content)
}
