package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	PanLeft  key.Binding
	PanRight key.Binding
	LookUp   key.Binding
	LookDown key.Binding
	NorthMap key.Binding
	SouthMap key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		PanLeft:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "pan")),
		PanRight: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "pan")),
		LookUp:   key.NewBinding(key.WithKeys("pgup", "u"), key.WithHelp("pgup/u", "look up")),
		LookDown: key.NewBinding(key.WithKeys("pgdown", "d"), key.WithHelp("pgdn/d", "look down")),
		NorthMap: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "north map")),
		SouthMap: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "south map")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns the hints shown in the status bar once the catalog is
// loaded.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.NorthMap, k.SouthMap, k.Quit}
}
