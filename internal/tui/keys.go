package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding. Start and Stop are enabled according to the session
// state, which also hides them from the help line while unavailable.
type keyMap struct {
	Prev       key.Binding
	Next       key.Binding
	Start      key.Binding
	Stop       key.Binding
	Clear      key.Binding
	Alert      key.Binding
	History    key.Binding
	Range      key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Prev:       key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "iface")),
		Next:       key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "iface")),
		Start:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start")),
		Stop:       key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "stop")),
		Clear:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Alert:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "test alert")),
		History:    key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "history")),
		Range:      key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "graph range")),
		ScrollUp:   key.NewBinding(key.WithKeys("pgup", "up"), key.WithHelp("pgup", "scroll")),
		ScrollDown: key.NewBinding(key.WithKeys("pgdown", "down"), key.WithHelp("pgdn", "scroll")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Start, k.Stop, k.Clear, k.Alert, k.History, k.Range, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Start, k.Stop},
		{k.Clear, k.Alert, k.History},
		{k.Range, k.ScrollUp, k.ScrollDown, k.Quit},
	}
}
