package input

import "github.com/vovakirdan/tui-snake/internal/core"

// DefaultSwipeThreshold is the minimum travel, in grid cells, for a
// press/release pair to count as a swipe.
const DefaultSwipeThreshold = 3

// Swipe detects directional gestures from pointer press and release
// positions in terminal coordinates.
type Swipe struct {
	threshold int
	cellW     int // terminal columns per grid cell
	cellH     int // terminal rows per grid cell

	startX, startY int
	active         bool
}

// NewSwipe creates a detector with one-by-one cells.
func NewSwipe(threshold int) *Swipe {
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	return &Swipe{threshold: threshold, cellW: 1, cellH: 1}
}

// SetCellSize sets how many terminal columns and rows one grid cell spans,
// so travel is measured in cells on both axes.
func (s *Swipe) SetCellSize(cols, rows int) {
	s.cellW = max(cols, 1)
	s.cellH = max(rows, 1)
}

// Begin records the press position.
func (s *Swipe) Begin(x, y int) {
	s.startX, s.startY = x, y
	s.active = true
}

// Active reports whether a press is waiting for its release.
func (s *Swipe) Active() bool {
	return s.active
}

// End completes the gesture at the release position and returns the
// resulting directional action, or ActionNone.
func (s *Swipe) End(x, y int) core.Action {
	if !s.active {
		return core.ActionNone
	}
	s.active = false
	return Classify((x-s.startX)/s.cellW, (y-s.startY)/s.cellH, s.threshold)
}

// Cancel drops a pending press.
func (s *Swipe) Cancel() {
	s.active = false
}

// Classify picks a direction from a travel vector. Travel below threshold on
// both axes is ignored. The axis with the larger magnitude wins; ties go to
// the vertical axis. Y grows downward.
func Classify(dx, dy, threshold int) core.Action {
	ax, ay := core.Abs(dx), core.Abs(dy)
	if ax < threshold && ay < threshold {
		return core.ActionNone
	}

	if ax > ay {
		if dx > 0 {
			return core.ActionRight
		}
		return core.ActionLeft
	}
	if dy > 0 {
		return core.ActionDown
	}
	return core.ActionUp
}
