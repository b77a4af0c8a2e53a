package render

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Stats is the numeric HUD shown next to the board.
type Stats struct {
	Score        int
	HighScore    int
	SpeedPercent int
	FoodEaten    int
}

// NewStats derives HUD values from a snapshot. initial and floor are the
// game's starting and minimum tick intervals.
func NewStats(st snake.State, initial, floor time.Duration) Stats {
	return Stats{
		Score:        st.Score,
		HighScore:    st.HighScore,
		SpeedPercent: SpeedPercent(st.Speed, initial, floor),
		FoodEaten:    st.FoodEaten,
	}
}

// SpeedPercent maps the current interval onto 0..100, where 0 is the initial
// speed and 100 is the floor. Rounds to the nearest integer.
func SpeedPercent(current, initial, floor time.Duration) int {
	span := initial - floor
	if span <= 0 {
		return 0
	}
	return int(math.Round(float64(initial-current) / float64(span) * 100))
}

// String formats the stats line.
func (s Stats) String() string {
	return fmt.Sprintf("Score: %d   Best: %d   Speed: %d%%", s.Score, s.HighScore, s.SpeedPercent)
}
