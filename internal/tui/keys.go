package tui

import "github.com/charmbracelet/bubbles/key"

// appKeyMap defines key bindings for the profile page
type appKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextTab     key.Binding
	PrevTab     key.Binding
	Add         key.Binding
	NewPost     key.Binding
	Edit        key.Binding
	Profile     key.Binding
	Settings    key.Binding
	Cover       key.Binding
	Avatar      key.Binding
	ToggleTheme key.Binding
	Dismiss     key.Binding
	Quit        key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k appKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.NewPost, k.Edit, k.Profile, k.Settings, k.NextTab, k.ToggleTheme, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k appKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Add, k.NewPost, k.Edit, k.Profile, k.Settings},
		{k.Cover, k.Avatar, k.ToggleTheme, k.Dismiss, k.Quit},
	}
}

func newAppKeyMap() appKeyMap {
	return appKeyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextTab:     key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next tab")),
		PrevTab:     key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "prev tab")),
		Add:         key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add vehicle")),
		NewPost:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new post")),
		Edit:        key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Profile:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "edit profile")),
		Settings:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings")),
		Cover:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "change cover")),
		Avatar:      key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "change avatar")),
		ToggleTheme: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Dismiss:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss toasts")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// editorKeyMap defines key bindings inside an edit dialog
type editorKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Toggle key.Binding
	Save   key.Binding
	Cancel key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k editorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Toggle, k.Save, k.Cancel}
}

// FullHelp returns keybindings for the expanded help view
func (k editorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newEditorKeyMap() editorKeyMap {
	return editorKeyMap{
		Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab/↓", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab/↑", "prev field")),
		Toggle: key.NewBinding(key.WithKeys(" ", "left", "right"), key.WithHelp("space/←→", "toggle")),
		Save:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}
