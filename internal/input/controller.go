package input

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Game is the part of the simulation the controller drives.
type Game interface {
	SetDirectionIntent(d snake.Direction)
	TogglePause()
	Reset()
	GameOver() bool
}

// Controller applies actions to a game.
type Controller struct {
	game Game
}

// NewController creates a controller for g.
func NewController(g Game) *Controller {
	return &Controller{game: g}
}

// Apply routes an action to the game. It reports whether the game state may
// have changed and whether the player asked to quit.
func (c *Controller) Apply(a core.Action) (handled, quit bool) {
	if a.IsDirectional() {
		d, _ := ToDirection(a)
		c.game.SetDirectionIntent(d)
		return true, false
	}

	switch a {
	case core.ActionPause:
		c.game.TogglePause()
		return true, false
	case core.ActionRestart:
		// A running game is never discarded by a stray R.
		if !c.game.GameOver() {
			return false, false
		}
		c.game.Reset()
		return true, false
	case core.ActionQuit:
		return true, true
	}
	return false, false
}
