package snake

import "time"

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the one-cell offset for moving in this direction.
// Y grows downward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Position is a grid cell, 0 <= X, Y < grid size.
type Position struct {
	X, Y int
}

// Step returns the neighbouring position in direction d.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// State is a by-value snapshot of a game.
// Slices are copies; mutating them does not affect the game.
type State struct {
	GridSize      int
	Snake         []Position // Head at index 0
	Food          Position
	HasFood       bool // False only when no free cell is left
	Direction     Direction
	NextDirection Direction
	Score         int
	FoodEaten     int
	Speed         time.Duration // Tick interval, smaller is faster
	GameOver      bool
	Paused        bool
	HighScore     int
	Tick          uint64
}

// Head returns the snake's head position.
func (s State) Head() Position {
	if len(s.Snake) == 0 {
		return Position{X: -1, Y: -1}
	}
	return s.Snake[0]
}

// Occupied reports whether a snake segment covers p.
func (s State) Occupied(p Position) bool {
	for _, seg := range s.Snake {
		if seg == p {
			return true
		}
	}
	return false
}

// TickResult reports what happened during one Tick.
type TickResult struct {
	Moved        bool // Snake advanced one cell
	Ate          bool // Food was consumed and the snake grew
	Died         bool // A terminal condition ended the game this tick
	SpeedChanged bool // Tick interval decreased
	NewHighScore bool // High score was raised on game over
	PersistErr   error
}
