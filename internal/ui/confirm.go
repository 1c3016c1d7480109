package ui

import (
	"bufio"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Confirm shows a warning box and reads one line from in. Only "y" or "yes"
// (any case) confirms.
func (p *Printer) Confirm(in io.Reader, title string, warnings []string) bool {
	lines := []string{"", p.styles.WarningTitle.Render(" " + WarningMarker + "  WARNING  ─  " + title), ""}
	for _, w := range warnings {
		lines = append(lines, p.styles.Text.Render(" "+BulletMarker+" "+w))
	}
	lines = append(lines, "")

	p.Println(p.styles.ResultBox(p.width, p.styles.Palette.Warning).Render(strings.Join(lines, "\n")))

	prompt := lipgloss.NewStyle().Foreground(p.styles.Palette.Warning).Bold(true)
	p.Print(prompt.Render("Proceed? [y/N]: "))

	input, err := bufio.NewReader(in).ReadString('\n')
	p.Newline()
	if err != nil && input == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true
	}

	p.Println(p.styles.Muted.Render("  Operation cancelled."))
	return false
}
