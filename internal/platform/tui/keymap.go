package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// GameKeyMap lists the in-game bindings shown in the help line.
// Key to action translation lives in the input package; these bindings
// mirror it for display and catch the frontend-only keys.
type GameKeyMap struct {
	Move       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Pause, k.Restart},
		{k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Move: key.NewBinding(
			key.WithKeys("up", "down", "left", "right", "w", "a", "s", "d", "W", "A", "S", "D"),
			key.WithHelp("arrows/wasd", "move"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" ", "p", "P"),
			key.WithHelp("space/p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SetGameOver enables the restart binding only when it would do something.
func (k *GameKeyMap) SetGameOver(over bool) {
	k.Restart.SetEnabled(over)
}
