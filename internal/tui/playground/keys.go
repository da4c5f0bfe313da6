package playground

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the playground bindings.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Side       key.Binding
	Align      key.Binding
	Collisions key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:         key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "anchor up")),
		Down:       key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "anchor down")),
		Left:       key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "anchor left")),
		Right:      key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "anchor right")),
		ScrollUp:   key.NewBinding(key.WithKeys("k", "pgup"), key.WithHelp("k/pgup", "scroll up")),
		ScrollDown: key.NewBinding(key.WithKeys("j", "pgdown"), key.WithHelp("j/pgdn", "scroll down")),
		Side:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "side")),
		Align:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "align")),
		Collisions: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "collisions")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Side, k.Align, k.Collisions, k.ScrollDown, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.ScrollUp, k.ScrollDown},
		{k.Side, k.Align, k.Collisions},
		{k.Help, k.Quit},
	}
}
