package input

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func TestFromKey(t *testing.T) {
	tests := []struct {
		key  string
		want core.Action
	}{
		{"up", core.ActionUp},
		{"w", core.ActionUp},
		{"W", core.ActionUp},
		{"down", core.ActionDown},
		{"S", core.ActionDown},
		{"left", core.ActionLeft},
		{"a", core.ActionLeft},
		{"right", core.ActionRight},
		{"D", core.ActionRight},
		{" ", core.ActionPause},
		{"p", core.ActionPause},
		{"P", core.ActionPause},
		{"r", core.ActionRestart},
		{"R", core.ActionRestart},
		{"q", core.ActionQuit},
		{"ctrl+c", core.ActionQuit},
		{"x", core.ActionNone},
		{"enter", core.ActionNone},
	}

	for _, tt := range tests {
		if got := FromKey(tt.key); got != tt.want {
			t.Errorf("FromKey(%q) = %v, expected %v", tt.key, got, tt.want)
		}
	}
}

func TestToDirection(t *testing.T) {
	tests := []struct {
		action core.Action
		want   snake.Direction
		ok     bool
	}{
		{core.ActionUp, snake.DirUp, true},
		{core.ActionDown, snake.DirDown, true},
		{core.ActionLeft, snake.DirLeft, true},
		{core.ActionRight, snake.DirRight, true},
		{core.ActionPause, 0, false},
		{core.ActionNone, 0, false},
	}

	for _, tt := range tests {
		got, ok := ToDirection(tt.action)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ToDirection(%v) = %v, %v; expected %v, %v", tt.action, got, ok, tt.want, tt.ok)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int
		want   core.Action
	}{
		{"too short", 2, -2, core.ActionNone},
		{"zero", 0, 0, core.ActionNone},
		{"right", 5, 1, core.ActionRight},
		{"left", -5, 2, core.ActionLeft},
		{"down", 1, 4, core.ActionDown},
		{"up", 0, -3, core.ActionUp},
		{"tie goes vertical", 4, 4, core.ActionDown},
		{"negative tie", -4, -4, core.ActionUp},
		{"one axis over threshold", 3, 0, core.ActionRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.dx, tt.dy, 3); got != tt.want {
				t.Errorf("Classify(%d, %d) = %v, expected %v", tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

func TestSwipeScalesColumns(t *testing.T) {
	s := NewSwipe(3)
	s.SetCellSize(2, 1)

	// Four columns is only two cells: below threshold.
	s.Begin(10, 10)
	if got := s.End(14, 10); got != core.ActionNone {
		t.Errorf("short swipe = %v, expected None", got)
	}

	s.Begin(10, 10)
	if got := s.End(2, 11); got != core.ActionLeft {
		t.Errorf("left swipe = %v, expected Left", got)
	}
}

func TestSwipeEndWithoutBegin(t *testing.T) {
	s := NewSwipe(0)
	if got := s.End(50, 50); got != core.ActionNone {
		t.Errorf("End without Begin = %v, expected None", got)
	}

	s.Begin(0, 0)
	s.Cancel()
	if s.Active() {
		t.Error("swipe should be inactive after Cancel")
	}
	if got := s.End(0, 20); got != core.ActionNone {
		t.Errorf("End after Cancel = %v, expected None", got)
	}
}

func newGame(t *testing.T) *snake.Game {
	t.Helper()
	opts := snake.DefaultOptions()
	opts.Seed = 11
	return snake.New(opts)
}

func TestControllerDirection(t *testing.T) {
	g := newGame(t)
	c := NewController(g)

	if handled, quit := c.Apply(core.ActionUp); !handled || quit {
		t.Errorf("Apply(Up) = %v, %v", handled, quit)
	}
	if got := g.State().NextDirection; got != snake.DirUp {
		t.Errorf("pending direction = %v, expected up", got)
	}

	// Reversal of the current direction (right) is ignored by the core.
	c.Apply(core.ActionLeft)
	if got := g.State().NextDirection; got != snake.DirUp {
		t.Errorf("pending direction = %v after reversal, expected up", got)
	}
}

func TestControllerPause(t *testing.T) {
	g := newGame(t)
	c := NewController(g)

	c.Apply(core.ActionPause)
	if !g.State().Paused {
		t.Error("game should be paused")
	}
	c.Apply(core.ActionPause)
	if g.State().Paused {
		t.Error("game should be resumed")
	}
}

func TestControllerRestartOnlyWhenOver(t *testing.T) {
	g := newGame(t)
	c := NewController(g)

	g.Tick()
	before := g.State().Tick
	if handled, _ := c.Apply(core.ActionRestart); handled {
		t.Error("restart should be ignored while running")
	}
	if g.State().Tick != before {
		t.Error("running game was reset")
	}

	for !g.GameOver() {
		g.Tick()
	}
	if handled, _ := c.Apply(core.ActionRestart); !handled {
		t.Error("restart should be honored after game over")
	}
	st := g.State()
	if st.GameOver || st.Score != 0 || len(st.Snake) != 3 {
		t.Errorf("game not reset: %+v", st)
	}
}

func TestControllerQuit(t *testing.T) {
	c := NewController(newGame(t))
	if _, quit := c.Apply(core.ActionQuit); !quit {
		t.Error("Quit should request exit")
	}
	if handled, quit := c.Apply(core.ActionNone); handled || quit {
		t.Error("None should do nothing")
	}
}
