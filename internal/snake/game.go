// Package snake implements the snake simulation: a single snake on a bounded
// square grid, one food item, wall and self collisions, and a tick interval
// that shortens as food is eaten.
//
// The package holds no timing, rendering or input code. A loop driver calls
// Tick at the interval reported by State().Speed, adapters read State().
package snake

import (
	"math/rand"
	"time"
)

// Default tuning values.
const (
	DefaultGridSize     = 20
	DefaultInitialSpeed = 150 * time.Millisecond
	DefaultSpeedStep    = 5 * time.Millisecond
	DefaultMinSpeed     = 50 * time.Millisecond
	DefaultSpeedUpEvery = 5  // Food items between speed-ups
	DefaultFoodPoints   = 10 // Score per food item

	initialLength = 3
)

// Options configures a Game.
type Options struct {
	GridSize     int
	InitialSpeed time.Duration
	SpeedStep    time.Duration
	MinSpeed     time.Duration
	SpeedUpEvery int // 0 disables speed progression
	FoodPoints   int
	Seed         int64 // 0 means time-based
	Store        HighScoreStore
}

// DefaultOptions returns the classic tuning: 20x20 grid, 150ms ticks,
// 5ms faster every fifth food, never below 50ms.
func DefaultOptions() Options {
	return Options{
		GridSize:     DefaultGridSize,
		InitialSpeed: DefaultInitialSpeed,
		SpeedStep:    DefaultSpeedStep,
		MinSpeed:     DefaultMinSpeed,
		SpeedUpEvery: DefaultSpeedUpEvery,
		FoodPoints:   DefaultFoodPoints,
	}
}

// withDefaults repairs unusable sizes and intervals. A zero SpeedStep or
// SpeedUpEvery is kept and disables progression.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.GridSize < initialLength+2 {
		o.GridSize = d.GridSize
	}
	if o.InitialSpeed <= 0 {
		o.InitialSpeed = d.InitialSpeed
	}
	if o.SpeedStep < 0 {
		o.SpeedStep = 0
	}
	if o.MinSpeed <= 0 || o.MinSpeed > o.InitialSpeed {
		o.MinSpeed = min(d.MinSpeed, o.InitialSpeed)
	}
	if o.SpeedUpEvery < 0 {
		o.SpeedUpEvery = 0
	}
	if o.FoodPoints <= 0 {
		o.FoodPoints = d.FoodPoints
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	return o
}

// Game is the snake simulation core.
// It is not safe for concurrent use; frontends drive it from one goroutine.
type Game struct {
	opts Options
	rng  *rand.Rand
	tick uint64

	snake     []Position // Head at index 0
	direction Direction
	nextDir   Direction // Applied on the next tick

	food    Position
	hasFood bool

	score     int
	foodEaten int
	speed     time.Duration
	highScore int

	gameOver bool
	paused   bool
}

// New creates a game in its initial state.
func New(opts Options) *Game {
	opts = opts.withDefaults()
	g := &Game{
		opts: opts,
		rng:  rand.New(rand.NewSource(opts.Seed)),
	}
	g.Reset()
	return g
}

// Options returns the effective options after defaults were applied.
func (g *Game) Options() Options {
	return g.opts
}

// Reset discards the current game and starts a fresh one.
// The high score is reloaded from the store when one is configured.
func (g *Game) Reset() {
	c := g.opts.GridSize / 2
	g.snake = []Position{
		{X: c, Y: c},
		{X: c - 1, Y: c},
		{X: c - 2, Y: c},
	}
	g.direction = DirRight
	g.nextDir = DirRight
	g.score = 0
	g.foodEaten = 0
	g.speed = g.opts.InitialSpeed
	g.gameOver = false
	g.paused = false
	g.tick = 0
	if g.opts.Store != nil {
		g.highScore = g.opts.Store.LoadHighScore()
	}
	g.placeFood()
}

// SetDirectionIntent buffers d for the next tick.
// A reversal of the current direction is ignored. The check is against the
// direction in effect, so two quick turns within one tick cannot reverse.
func (g *Game) SetDirectionIntent(d Direction) {
	if d == g.direction.Opposite() {
		return
	}
	g.nextDir = d
}

// TogglePause flips the paused flag. A finished game cannot be paused.
func (g *Game) TogglePause() {
	if g.gameOver {
		return
	}
	g.paused = !g.paused
}

// Tick advances the simulation by one cell. It does nothing while the game
// is paused or over.
func (g *Game) Tick() TickResult {
	if g.gameOver || g.paused {
		return TickResult{}
	}
	g.tick++

	g.direction = g.nextDir
	head := g.snake[0].Step(g.direction)

	// The whole pre-move body counts, tail included: moving into the cell the
	// tail is about to leave is a collision.
	if !g.inBounds(head) || g.occupied(head) {
		return g.finish()
	}

	g.snake = append([]Position{head}, g.snake...)
	res := TickResult{Moved: true}

	if g.hasFood && head == g.food {
		res.Ate = true
		g.score += g.opts.FoodPoints
		g.foodEaten++
		g.placeFood()
		res.SpeedChanged = g.speedUp()
		return res
	}

	g.snake = g.snake[:len(g.snake)-1]
	return res
}

// finish moves the game into its terminal state and persists a new record.
func (g *Game) finish() TickResult {
	g.gameOver = true
	res := TickResult{Died: true}
	if g.score > g.highScore {
		g.highScore = g.score
		res.NewHighScore = true
		if g.opts.Store != nil {
			res.PersistErr = g.opts.Store.SaveHighScore(g.score)
		}
	}
	return res
}

// speedUp shortens the tick interval every SpeedUpEvery food items,
// clamped at MinSpeed. Returns true if the interval changed.
func (g *Game) speedUp() bool {
	every := g.opts.SpeedUpEvery
	if every <= 0 || g.foodEaten%every != 0 {
		return false
	}
	next := max(g.opts.MinSpeed, g.speed-g.opts.SpeedStep)
	if next >= g.speed {
		return false
	}
	g.speed = next
	return true
}

func (g *Game) inBounds(p Position) bool {
	n := g.opts.GridSize
	return p.X >= 0 && p.X < n && p.Y >= 0 && p.Y < n
}

// occupied checks if the snake covers the given point.
func (g *Game) occupied(p Position) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// State returns a snapshot of the game.
func (g *Game) State() State {
	snake := make([]Position, len(g.snake))
	copy(snake, g.snake)
	return State{
		GridSize:      g.opts.GridSize,
		Snake:         snake,
		Food:          g.food,
		HasFood:       g.hasFood,
		Direction:     g.direction,
		NextDirection: g.nextDir,
		Score:         g.score,
		FoodEaten:     g.foodEaten,
		Speed:         g.speed,
		GameOver:      g.gameOver,
		Paused:        g.paused,
		HighScore:     g.highScore,
		Tick:          g.tick,
	}
}

// Speed returns the current tick interval without copying the snake.
func (g *Game) Speed() time.Duration {
	return g.speed
}

// GameOver reports whether the game has ended.
func (g *Game) GameOver() bool {
	return g.gameOver
}
