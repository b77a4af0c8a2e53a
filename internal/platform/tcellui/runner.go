// Package tcellui is an alternate frontend that drives the game directly on a
// tcell screen, without Bubble Tea.
package tcellui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/session"
)

// helpText is drawn under the stats line.
const helpText = "arrows/wasd move • space/p pause • r restart • ctrl+s screenshot • q quit"

// styles maps core.Color to tcell styles.
var styles = map[core.Color]tcell.Style{
	core.ColorDefault:     tcell.StyleDefault,
	core.ColorRed:         tcell.StyleDefault.Foreground(tcell.ColorMaroon),
	core.ColorGreen:       tcell.StyleDefault.Foreground(tcell.ColorGreen),
	core.ColorYellow:      tcell.StyleDefault.Foreground(tcell.ColorOlive),
	core.ColorWhite:       tcell.StyleDefault.Foreground(tcell.ColorSilver),
	core.ColorBrightRed:   tcell.StyleDefault.Foreground(tcell.ColorRed),
	core.ColorBrightGreen: tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true),
	core.ColorBrightWhite: tcell.StyleDefault.Foreground(tcell.ColorWhite),
	core.ColorGray:        tcell.StyleDefault.Foreground(tcell.ColorGray),
}

// Runner owns a tcell screen and a game session.
type Runner struct {
	screen  tcell.Screen
	session *session.Session
	status  string
}

// NewRunner wraps an initialized screen. The session is sized to it.
func NewRunner(screen tcell.Screen, opts session.Options) *Runner {
	w, h := screen.Size()
	return &Runner{
		screen:  screen,
		session: session.New(opts, w, h),
	}
}

// Run opens the terminal, plays until the user quits and restores the
// terminal.
func Run(opts session.Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcell: cannot init screen: %w", err)
	}
	defer screen.Fini()

	screen.EnableMouse()
	screen.HideCursor()

	NewRunner(screen, opts).Loop()
	return nil
}

// Loop polls events on a goroutine and draws on a frame ticker until the
// user quits.
func (r *Runner) Loop() {
	r.session.Start(time.Now())
	defer r.session.Stop()

	ticker := time.NewTicker(r.session.FrameInterval())
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil { // screen finalized
				close(events)
				return
			}
			events <- ev
		}
	}()

	r.Draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok || r.Handle(ev, time.Now()) {
				return
			}

		case now := <-ticker.C:
			r.session.Frame(now)
			r.Draw()
		}
	}
}

// Handle processes one event and reports whether the user asked to quit.
func (r *Runner) Handle(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		r.status = ""
		name := KeyName(ev)
		if name == "ctrl+s" {
			if path, err := r.session.Screenshot(now); err == nil {
				r.status = "saved " + path
			} else {
				r.status = err.Error()
			}
			return false
		}
		return r.session.Key(name, now)

	case *tcell.EventMouse:
		x, y := ev.Position()
		pressed := ev.Buttons()&tcell.Button1 != 0
		switch {
		case pressed && !r.session.Swiping():
			r.session.PointerPress(x, y)
		case !pressed && r.session.Swiping():
			r.session.PointerRelease(x, y, now)
		}

	case *tcell.EventResize:
		w, h := r.screen.Size()
		r.session.Resize(w, h)
		r.screen.Sync()
	}
	return false
}

// KeyName converts a key event to the names the input package uses.
func KeyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyCtrlS:
		return "ctrl+s"
	case tcell.KeyRune:
		return string(ev.Rune())
	}
	return ""
}

// Draw renders the session onto the screen.
func (r *Runner) Draw() {
	scr := r.session.Render()

	layout := r.session.Layout()
	if !layout.TooSmall {
		line, color := helpText, core.ColorGray
		if r.status != "" {
			line, color = r.status, core.ColorYellow
		}
		scr.DrawTextCentered(layout.HelpRow(), line, color)
	}

	Blit(r.screen, scr)
	r.screen.Show()
}

// Blit copies a cell buffer onto a tcell screen.
func Blit(dst tcell.Screen, src *core.Screen) {
	dst.Clear()
	for y := range src.Height() {
		for x := range src.Width() {
			cell := src.GetCell(x, y)
			style, ok := styles[cell.Color]
			if !ok {
				style = tcell.StyleDefault
			}
			dst.SetContent(x, y, cell.Rune, nil, style)
		}
	}
}
