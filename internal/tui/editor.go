package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/motohub/internal/garage"
	"github.com/muurk/motohub/internal/session"
)

// dialog is an open edit dialog as seen by AppModel.
type dialog interface {
	Update(msg tea.Msg) (dialog, tea.Cmd)
	View(s styles, width int) string
	// Done reports whether the session was committed or cancelled
	Done() bool
	Keys() help.KeyMap
}

// EditorModel is an edit dialog over one session controller. Text fields
// get a textinput each; toggles and choices are flipped in place.
type EditorModel[E garage.Entity] struct {
	Title string

	ctrl   *session.Controller[E]
	fields []session.Field
	inputs []textinput.Model // zero value for toggle and choice fields
	focus  int
	keys   editorKeyMap
	err    error
}

// NewEditorModel builds a dialog over an already opened controller.
func NewEditorModel[E garage.Entity](title string, ctrl *session.Controller[E]) (EditorModel[E], tea.Cmd) {
	fields := ctrl.Fields()
	inputs := make([]textinput.Model, len(fields))

	for i, f := range fields {
		if !isText(f.Kind) {
			continue
		}
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = f.Placeholder
		in.CharLimit = 64
		in.Width = 40
		switch f.Kind {
		case session.FieldLongText:
			in.CharLimit = 280
			in.Width = 56
		case session.FieldNumber:
			in.CharLimit = 8
			in.Width = 10
		}
		// Seeded values longer than the limit are kept whole.
		in.CharLimit = max(in.CharLimit, utf8.RuneCountInString(f.Value))
		in.SetValue(f.Value)
		inputs[i] = in
	}

	m := EditorModel[E]{
		Title:  title,
		ctrl:   ctrl,
		fields: fields,
		inputs: inputs,
		keys:   newEditorKeyMap(),
	}
	cmd := m.setFocus(0)
	return m, cmd
}

func isText(k session.FieldKind) bool {
	return k == session.FieldText || k == session.FieldLongText || k == session.FieldNumber
}

// Done implements dialog.
func (m EditorModel[E]) Done() bool {
	return !m.ctrl.IsOpen()
}

// Keys implements dialog.
func (m EditorModel[E]) Keys() help.KeyMap {
	return m.keys
}

// Focused returns the name of the focused field.
func (m EditorModel[E]) Focused() string {
	return m.fields[m.focus].Name
}

// setFocus moves focus to field i and returns the blink command.
func (m *EditorModel[E]) setFocus(i int) tea.Cmd {
	if len(m.fields) == 0 {
		return nil
	}
	i = (i + len(m.fields)) % len(m.fields)

	for j := range m.inputs {
		if isText(m.fields[j].Kind) {
			m.inputs[j].Blur()
		}
	}
	m.focus = i
	if isText(m.fields[i].Kind) {
		return m.inputs[i].Focus()
	}
	return nil
}

// Update implements dialog.
func (m EditorModel[E]) Update(msg tea.Msg) (dialog, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		field := m.fields[m.focus]

		switch {
		case key.Matches(km, m.keys.Cancel):
			m.ctrl.Cancel()
			return m, nil

		case key.Matches(km, m.keys.Save):
			_, m.err = m.ctrl.Commit()
			return m, nil

		case key.Matches(km, m.keys.Next):
			cmd := m.setFocus(m.focus + 1)
			return m, cmd

		case key.Matches(km, m.keys.Prev):
			cmd := m.setFocus(m.focus - 1)
			return m, cmd

		case key.Matches(km, m.keys.Toggle) && !isText(field.Kind):
			m.flip(field, km.String() == "left")
			return m, nil
		}
	}

	if !isText(m.fields[m.focus].Kind) {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		name, value := m.fields[m.focus].Name, m.inputs[m.focus].Value()
		if current, _ := m.ctrl.Field(name); current != value {
			m.err = m.ctrl.SetField(name, value)
		}
	}
	return m, cmd
}

// flip toggles a boolean field or cycles a choice field.
func (m *EditorModel[E]) flip(f session.Field, backwards bool) {
	current, _ := m.ctrl.Field(f.Name)

	var next string
	switch f.Kind {
	case session.FieldToggle:
		next = session.Toggle(current)
	case session.FieldChoice:
		if len(f.Choices) == 0 {
			return
		}
		i := -1
		for j, c := range f.Choices {
			if c == current {
				i = j
			}
		}
		step := 1
		if backwards {
			step = len(f.Choices) - 1
		}
		if i < 0 {
			next = f.Choices[0]
		} else {
			next = f.Choices[(i+step)%len(f.Choices)]
		}
	default:
		return
	}

	m.err = m.ctrl.SetField(f.Name, next)
}

// View implements dialog.
func (m EditorModel[E]) View(s styles, width int) string {
	if width < MinEditorWidth {
		width = MinEditorWidth
	}

	lines := []string{s.Title.Render(m.Title), ""}
	section := ""
	for i, f := range m.fields {
		if f.Section != "" && f.Section != section {
			section = f.Section
			lines = append(lines, "", s.SectionTitle.Render(section))
		}

		label := s.BlurredLabel.Render("  " + f.Label)
		if i == m.focus {
			label = s.FocusedLabel.Render("→ " + f.Label)
		}
		label = lipgloss.NewStyle().Width(24).Render(label)

		lines = append(lines, label+m.renderValue(s, i))
	}

	if m.err != nil {
		lines = append(lines, "", s.ErrorMessage.Render(m.err.Error()))
	}

	return s.editorBox(width).Render(strings.Join(lines, "\n"))
}

func (m EditorModel[E]) renderValue(s styles, i int) string {
	f := m.fields[i]
	value, _ := m.ctrl.Field(f.Name)

	switch f.Kind {
	case session.FieldToggle:
		on, _ := session.ParseBool(value)
		if on {
			return s.Selected.Render("[x] On")
		}
		return s.Muted.Render("[ ] Off")
	case session.FieldChoice:
		return s.Text.Render("‹ " + choiceLabel(value) + " ›")
	default:
		return m.inputs[i].View()
	}
}

func choiceLabel(v string) string {
	if t, ok := garage.ParseVehicleType(v); ok {
		return t.Label()
	}
	return v
}
