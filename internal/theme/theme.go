// Package theme holds the process-wide light/dark appearance flag.
//
// The flag is initialised to Light at startup and changed only through Set.
// Code that needs a scoped theme (tests, a second program in the same
// process) can create its own Store instead of touching the global one.
package theme

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Mode is an appearance mode.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// ParseMode parses "light" or "dark".
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case Light, Dark:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown theme %q (want light or dark)", s)
	}
}

// Store is a guarded theme value.
type Store struct {
	mu   sync.RWMutex
	mode Mode
}

// NewStore returns a Store initialised to mode.
func NewStore(mode Mode) *Store {
	return &Store{mode: mode}
}

// Mode returns the current mode.
func (s *Store) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// SetMode changes the mode.
func (s *Store) SetMode(mode Mode) {
	s.mu.Lock()
	s.mode = mode
	s.mu.Unlock()
}

var global = NewStore(Light)

// Current returns the process-wide mode.
func Current() Mode {
	return global.Mode()
}

// Set changes the process-wide mode.
func Set(mode Mode) {
	global.SetMode(mode)
}

// Palette is the colour set for one mode.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Text       lipgloss.Color
	Subtle     lipgloss.Color
	Border     lipgloss.Color
	Highlight  lipgloss.Color
	Background lipgloss.Color
}

var palettes = map[Mode]Palette{
	Dark: {
		Primary:    lipgloss.Color("#7D56F4"),
		Secondary:  lipgloss.Color("#43BF6D"),
		Warning:    lipgloss.Color("#FFA500"),
		Error:      lipgloss.Color("#FF0000"),
		Text:       lipgloss.Color("#FFFFFF"),
		Subtle:     lipgloss.Color("#626262"),
		Border:     lipgloss.Color("#7D56F4"),
		Highlight:  lipgloss.Color("#43BF6D"),
		Background: lipgloss.Color("#1A1A1A"),
	},
	Light: {
		Primary:    lipgloss.Color("#5A3FC0"),
		Secondary:  lipgloss.Color("#1E8A44"),
		Warning:    lipgloss.Color("#B36B00"),
		Error:      lipgloss.Color("#C00000"),
		Text:       lipgloss.Color("#1A1A1A"),
		Subtle:     lipgloss.Color("#8A8A8A"),
		Border:     lipgloss.Color("#5A3FC0"),
		Highlight:  lipgloss.Color("#1E8A44"),
		Background: lipgloss.Color("#F2F2F2"),
	},
}

// PaletteFor returns the palette of mode; unknown modes get Light.
func PaletteFor(mode Mode) Palette {
	if p, ok := palettes[mode]; ok {
		return p
	}
	return palettes[Light]
}

// CurrentPalette returns the palette of the process-wide mode.
func CurrentPalette() Palette {
	return PaletteFor(Current())
}
