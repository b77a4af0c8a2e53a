// Package session runs one game for one viewer. It owns the simulation, the
// loop driver, the input controller and the draw buffer, and is shared by
// the Bubble Tea and tcell frontends.
package session

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/input"
	"github.com/vovakirdan/tui-snake/internal/loop"
	"github.com/vovakirdan/tui-snake/internal/render"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// ErrScreenshotsDisabled is returned by Screenshot when the session was
// created with NoScreenshots.
var ErrScreenshotsDisabled = errors.New("session: screenshots are disabled")

// Options configures a Session.
type Options struct {
	Config config.SnakeConfig
	Seed   int64          // 0 means time-based
	Store  *storage.Store // nil disables persistence
	Sound  *audio.Player  // nil is silent
	Logger *log.Logger    // nil discards

	// ScreenshotDir defaults to ~/.snake/screenshots.
	ScreenshotDir string

	// NoScreenshots refuses screenshot requests, e.g. for remote viewers.
	NoScreenshots bool

	// Player names the viewer in logs, e.g. the SSH user.
	Player string
}

// Session is a running game plus everything needed to show it.
// It is not safe for concurrent use.
type Session struct {
	cfg    config.SnakeConfig
	store  *storage.Store
	sound  *audio.Player
	logger *log.Logger
	shots  string
	noShot bool

	game   *snake.Game
	ctrl   *input.Controller
	driver *loop.Driver
	swipe  *input.Swipe

	screen *core.Screen
	layout render.Layout

	width, height int
	scoreSaved    bool
}

// New creates a session for a viewport of width x height.
func New(opts Options, width, height int) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Player != "" {
		logger = logger.With("player", opts.Player)
	}

	gameOpts := opts.Config.GameOptions()
	gameOpts.Seed = opts.Seed
	if opts.Store != nil {
		gameOpts.Store = opts.Store.HighScores(storage.HighScoreKey)
	}
	game := snake.New(gameOpts)

	s := &Session{
		cfg:    opts.Config,
		store:  opts.Store,
		sound:  opts.Sound,
		logger: logger,
		shots:  opts.ScreenshotDir,
		noShot: opts.NoScreenshots,
		game:   game,
		ctrl:   input.NewController(game),
		driver: loop.New(game),
		swipe:  input.NewSwipe(opts.Config.Input.SwipeThreshold),
		screen: core.NewScreen(0, 0),
	}
	s.Resize(width, height)
	return s
}

// Start arms the loop driver.
func (s *Session) Start(now time.Time) {
	s.driver.Start(now)
	s.logger.Debug("game started", "grid", s.cfg.Grid.Size, "speed", s.game.Speed())
}

// Stop disarms the loop driver.
func (s *Session) Stop() {
	s.driver.Stop()
}

// Key handles a named key press. It reports whether the viewer asked to quit.
func (s *Session) Key(name string, now time.Time) bool {
	return s.Apply(input.FromKey(name), now)
}

// Apply routes an action to the game. It reports whether the viewer asked
// to quit.
func (s *Session) Apply(a core.Action, now time.Time) bool {
	handled, quit := s.ctrl.Apply(a)
	if quit {
		s.driver.Stop()
		return true
	}
	if handled && a == core.ActionRestart {
		s.scoreSaved = false
		s.driver.Start(now)
		s.logger.Debug("game restarted")
	}
	return false
}

// PointerPress starts a swipe gesture.
func (s *Session) PointerPress(x, y int) {
	s.swipe.Begin(x, y)
}

// Swiping reports whether a pointer press is waiting for its release.
func (s *Session) Swiping() bool {
	return s.swipe.Active()
}

// PointerRelease completes a swipe gesture and applies its direction.
func (s *Session) PointerRelease(x, y int, now time.Time) {
	if a := s.swipe.End(x, y); a != core.ActionNone {
		s.Apply(a, now)
	}
}

// Resize recomputes the board layout. The game itself is unaffected.
// A gesture in progress is dropped since its cell size no longer applies.
func (s *Session) Resize(width, height int) {
	s.swipe.Cancel()
	s.width, s.height = max(width, 0), max(height, 0)
	s.layout = render.NewLayout(s.width, s.height, s.cfg.Grid.Size, s.cfg.Display.MaxSurface)
	if !s.layout.TooSmall {
		s.swipe.SetCellSize(s.layout.CellCols, s.layout.CellRows)
	}
	s.screen.Resize(s.width, s.height)
}

// Frame advances the game if its interval has elapsed and reacts to the
// outcome: sounds, persistence errors and the score history.
func (s *Session) Frame(now time.Time) snake.TickResult {
	res, ok := s.driver.Frame(now)
	if !ok {
		return res
	}

	s.sound.Play(res)

	if res.SpeedChanged {
		s.logger.Debug("speed up", "interval", s.game.Speed())
	}
	if res.PersistErr != nil {
		s.logger.Error("cannot save high score", "err", res.PersistErr)
	}
	if res.Died {
		s.gameOver()
	}
	return res
}

// gameOver records the finished game once.
func (s *Session) gameOver() {
	if s.scoreSaved {
		return
	}
	s.scoreSaved = true

	st := s.game.State()
	s.logger.Info("game over", "score", st.Score, "food", st.FoodEaten, "high", st.HighScore)

	if s.store == nil || st.Score <= 0 {
		return
	}
	entry, err := s.store.SaveScore(st.Score, st.FoodEaten)
	if err != nil {
		s.logger.Warn("cannot save score history", "err", err)
		return
	}
	s.logger.Debug("score saved", "run", entry.RunID)
}

// Render draws the current state and returns the buffer.
func (s *Session) Render() *core.Screen {
	st := s.game.State()
	stats := render.NewStats(st, s.cfg.InitialSpeed(), s.cfg.FloorSpeed())
	render.Frame(s.screen, s.layout, st, stats)
	return s.screen
}

// Screenshot writes the current frame as plain text and returns the path.
func (s *Session) Screenshot(now time.Time) (string, error) {
	if s.noShot {
		return "", ErrScreenshotsDisabled
	}
	dir := s.shots
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("session: cannot resolve home directory: %w", err)
		}
		dir = filepath.Join(home, ".snake", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("session: cannot create %s: %w", dir, err)
	}

	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", now.Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(s.Render().String()), 0o600); err != nil {
		return "", fmt.Errorf("session: cannot write screenshot: %w", err)
	}
	s.logger.Info("screenshot saved", "path", path)
	return path, nil
}

// State returns a snapshot of the game.
func (s *Session) State() snake.State {
	return s.game.State()
}

// Layout returns the current board layout.
func (s *Session) Layout() render.Layout {
	return s.layout
}

// Size returns the viewport size.
func (s *Session) Size() (int, int) {
	return s.width, s.height
}

// FrameInterval returns the display frame period.
func (s *Session) FrameInterval() time.Duration {
	return loop.FrameInterval(s.cfg.Display.FPS)
}
