// Package input turns keyboard and pointer events into game actions and
// routes those actions to the simulation.
package input

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// keyActions maps key names as Bubble Tea reports them. The tcell frontend
// produces the same names.
var keyActions = map[string]core.Action{
	"up": core.ActionUp, "w": core.ActionUp, "W": core.ActionUp,
	"down": core.ActionDown, "s": core.ActionDown, "S": core.ActionDown,
	"left": core.ActionLeft, "a": core.ActionLeft, "A": core.ActionLeft,
	"right": core.ActionRight, "d": core.ActionRight, "D": core.ActionRight,

	" ": core.ActionPause, "space": core.ActionPause,
	"p": core.ActionPause, "P": core.ActionPause,

	"r": core.ActionRestart, "R": core.ActionRestart,

	"q": core.ActionQuit, "Q": core.ActionQuit,
	"ctrl+c": core.ActionQuit, "esc": core.ActionQuit,
}

// FromKey returns the action bound to a key name, or ActionNone.
func FromKey(name string) core.Action {
	return keyActions[name]
}

// ToDirection converts a directional action to a snake direction.
func ToDirection(a core.Action) (snake.Direction, bool) {
	switch a {
	case core.ActionUp:
		return snake.DirUp, true
	case core.ActionDown:
		return snake.DirDown, true
	case core.ActionLeft:
		return snake.DirLeft, true
	case core.ActionRight:
		return snake.DirRight, true
	}
	return 0, false
}
