package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/platform/session"
)

var (
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
)

// Model is the Bubble Tea model for one game.
type Model struct {
	session  *session.Session
	keys     GameKeyMap
	help     help.Model
	status   string // one-shot message shown instead of the help line
	quitting bool
}

// NewModel creates a new Bubble Tea model around a session.
func NewModel(s *session.Session) Model {
	h := help.New()
	h.ShowAll = false
	w, _ := s.Size()
	h.Width = w

	return Model{
		session: s,
		keys:    DefaultGameKeyMap(),
		help:    h,
	}
}

// Init starts the game and the frame loop.
func (m Model) Init() tea.Cmd {
	m.session.Start(time.Now())
	return frameCmd(m.session.FrameInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.session.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		m.session.Frame(time.Time(msg))
		return m, frameCmd(m.session.FrameInterval())
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.session.Screenshot(time.Now()); err == nil {
			m.status = "saved " + path
		} else {
			m.status = err.Error()
		}
		return m, nil
	}

	if m.session.Key(msg.String(), time.Now()) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse turns a left-button press and release into a swipe.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	switch msg.Action {
	case tea.MouseActionPress:
		m.session.PointerPress(msg.X, msg.Y)
	case tea.MouseActionRelease:
		m.session.PointerRelease(msg.X, msg.Y, time.Now())
	}
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	scr := m.session.Render()
	layout := m.session.Layout()
	if layout.TooSmall {
		return RenderScreen(scr, scr.Height())
	}

	m.keys.SetGameOver(m.session.State().GameOver)
	line := helpStyle.Render(m.help.View(m.keys))
	if m.status != "" {
		line = statusStyle.Render(m.status)
	}

	w, _ := m.session.Size()
	return RenderScreen(scr, layout.HelpRow()) + "\n" + lipgloss.PlaceHorizontal(w, lipgloss.Center, line)
}

// Run starts the Bubble Tea program for a local terminal of the given size.
func Run(opts session.Options, width, height int) error {
	s := session.New(opts, width, height)
	defer s.Stop()

	p := tea.NewProgram(
		NewModel(s),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Press/release pairs become swipes
	)

	_, err := p.Run()
	return err
}
