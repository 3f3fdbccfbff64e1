package tui

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// Model is the Bubble Tea model for running a breakout game.
type Model struct {
	game     *breakout.Game
	screen   *core.Screen
	keys     *KeyMapper
	logger   *log.Logger
	interval time.Duration

	pending  core.Action // Most recent direction pressed since the last frame
	tooSmall bool        // Window shrank below the arena; simulation is held
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards everything.
func NewModel(game *breakout.Game, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg := game.Config()
	w, h := cfg.ScreenSize()

	return Model{
		game:     game,
		screen:   core.NewScreen(w, h),
		keys:     NewKeyMapper(DefaultKeyMap()),
		logger:   logger,
		interval: cfg.Timing.FrameInterval,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Directions are held until the next
// tick; a later key replaces an earlier one.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch {
	case action == core.ActionQuit:
		m.logger.Info("quit", "frame", m.game.Frames())
		m.quitting = true
		return m, tea.Quit
	case action.IsDirectional():
		m.pending = action
	}

	return m, nil
}

// handleResize holds the simulation while the window cannot show the arena.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	tooSmall := msg.Width < m.screen.Width() || msg.Height < m.screen.Height()
	if tooSmall != m.tooSmall {
		m.logger.Debug("window resized", "width", msg.Width, "height", msg.Height, "held", tooSmall)
	}
	m.tooSmall = tooSmall
	return m, nil
}

// handleTick runs one frame of the game.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.tooSmall {
		m.pending = core.ActionNone
		return m, tickCmd(m.interval)
	}

	outcome := m.game.Frame(m.pending)
	m.pending = core.ActionNone

	for _, b := range m.game.LastMove().Broken {
		m.logger.Debug("block broken", "row", b.Row, "col", b.Col,
			"remaining", m.game.Grid().Remaining(), "frame", m.game.Frames())
	}

	if outcome.Done() {
		m.logger.Info("game over", "outcome", outcome, "frame", m.game.Frames())
		return m, tea.Quit
	}

	return m, tickCmd(m.interval)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.game.Outcome().Done() {
		return ""
	}

	if m.tooSmall {
		return fmt.Sprintf("Window too small: need %dx%d", m.screen.Width(), m.screen.Height())
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run plays game to completion in the alternate screen and returns how it
// ended. OutcomePlaying means the player quit.
func Run(game *breakout.Game, logger *log.Logger) (breakout.Outcome, error) {
	w, h := game.Config().ScreenSize()
	if err := CheckTerminal(int(os.Stdout.Fd()), w, h); err != nil { //#nosec G115 -- file descriptors fit in int
		return breakout.OutcomePlaying, err
	}

	model := NewModel(game, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return game.Outcome(), fmt.Errorf("run program: %w", err)
	}
	return game.Outcome(), nil
}
