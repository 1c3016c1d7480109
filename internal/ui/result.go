package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ResultType indicates success or failure
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
	ResultWarning
)

// Result represents a result box (success, failure, or warning)
type Result struct {
	Type    ResultType
	Title   string  // e.g., "Vehicle updated"
	Details []Param // Key-value details to display, in order
	Error   error   // Error (for failure results)
	Hints   []string
	Width   int
}

// NewSuccessResult creates a success result box
func NewSuccessResult(title string, details ...Param) *Result {
	return &Result{Type: ResultSuccess, Title: title, Details: details, Width: GetTerminalWidth()}
}

// NewFailureResult creates a failure result box
func NewFailureResult(title string, err error, hints ...string) *Result {
	return &Result{Type: ResultFailure, Title: title, Error: err, Hints: hints, Width: GetTerminalWidth()}
}

// NewWarningResult creates a warning result box
func NewWarningResult(title string, details ...Param) *Result {
	return &Result{Type: ResultWarning, Title: title, Details: details, Width: GetTerminalWidth()}
}

// SetWidth sets the terminal width for responsive rendering
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// AddDetail adds a detail key-value pair
func (r *Result) AddDetail(key, value string) *Result {
	r.Details = append(r.Details, Param{Key: key, Value: value})
	return r
}

// Render returns the styled result box as a string
func (r *Result) Render(s Styles) string {
	width := clampWidth(r.Width)

	var (
		title lipgloss.Style
		color lipgloss.Color
		label string
	)
	switch r.Type {
	case ResultFailure:
		title, color, label = s.ErrorTitle, s.Palette.Error, FailureMarker+"  FAILED"
	case ResultWarning:
		title, color, label = s.WarningTitle, s.Palette.Warning, WarningMarker+"  WARNING"
	default:
		title, color, label = s.SuccessTitle, s.Palette.Secondary, SuccessMarker+"  SUCCESS"
	}

	lines := []string{"", title.Render(fmt.Sprintf(" %s  ─  %s", label, r.Title)), ""}

	if r.Error != nil {
		lines = append(lines, s.ErrorMessage.Render(" Error: "+r.Error.Error()), "")
	}

	for _, d := range r.Details {
		lines = append(lines, s.ResultKey.Render(" "+d.Key+":")+" "+s.ResultValue.Render(d.Value))
	}
	if len(r.Details) > 0 {
		lines = append(lines, "")
	}

	if len(r.Hints) > 0 {
		for _, h := range r.Hints {
			lines = append(lines, s.Muted.Render(" "+BulletMarker+" "+h))
		}
		lines = append(lines, "")
	}

	return s.ResultBox(width, color).Render(strings.Join(lines, "\n"))
}
