package terminal

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Place key.Binding
	Next  key.Binding
	Quit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Place: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "place mark"),
		),
		Next: key.NewBinding(
			key.WithKeys("enter", "y"),
			key.WithHelp("enter", "next round"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (that keyMap) ShortHelp() []key.Binding {
	return []key.Binding{that.Up, that.Down, that.Left, that.Right, that.Place, that.Quit}
}

func (that keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{that.Up, that.Down, that.Left, that.Right},
		{that.Place, that.Next, that.Quit},
	}
}
