package teaui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Open     key.Binding
	Back     key.Binding
	Prev     key.Binding
	Next     key.Binding
	NextTab  key.Binding
	Tab      key.Binding
	Theme    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Events   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:     key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		Prev:     key.NewBinding(key.WithKeys("left", "["), key.WithHelp("←", "prev")),
		Next:     key.NewBinding(key.WithKeys("right", "]"), key.WithHelp("→", "next")),
		NextTab:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch tab")),
		Tab:      key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "tab")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", " "), key.WithHelp("pgdn", "scroll down")),
		Events:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "events")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Back, k.Prev, k.Next, k.NextTab, k.Theme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open, k.Back},
		{k.Prev, k.Next, k.PageUp, k.PageDown},
		{k.NextTab, k.Tab, k.Theme},
		{k.Events, k.Help, k.Quit},
	}
}
