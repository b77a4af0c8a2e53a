// Package loop throttles simulation ticks against a frame clock.
//
// Frontends call Frame on every display frame (a Bubble Tea tick message or
// a tcell ticker). The driver advances the game only when the game's current
// interval has elapsed since the last advance, so speed changes take effect
// on the next frame without rescheduling any timer.
package loop

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Ticker is the part of the game the driver advances.
type Ticker interface {
	Tick() snake.TickResult
	Speed() time.Duration
}

// Driver decides on each frame whether the game should advance.
type Driver struct {
	game    Ticker
	last    time.Time
	running bool
}

// New creates a stopped driver for g.
func New(g Ticker) *Driver {
	return &Driver{game: g}
}

// Start arms the driver. The first tick happens one interval after now.
func (d *Driver) Start(now time.Time) {
	d.last = now
	d.running = true
}

// Stop disarms the driver; Frame does nothing until Start is called again.
func (d *Driver) Stop() {
	d.running = false
}

// Frame advances the game at most once. It returns the tick result and true
// if the game was advanced. Missed intervals are not replayed: a long stall
// produces a single tick.
func (d *Driver) Frame(now time.Time) (snake.TickResult, bool) {
	if !d.running {
		return snake.TickResult{}, false
	}
	if now.Sub(d.last) < d.game.Speed() {
		return snake.TickResult{}, false
	}
	d.last = now
	return d.game.Tick(), true
}

// FrameInterval converts a frame rate to the interval between frames.
// Non-positive rates fall back to 60 frames per second.
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}
