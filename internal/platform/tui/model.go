package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// Terminals report key repeats but no releases, so a held key is emulated:
// a first press holds for initialHold, and every repeat that arrives while
// held keeps it down for at least repeatHold more.
const (
	initialHold = 450 * time.Millisecond
	repeatHold  = 120 * time.Millisecond
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).PaddingLeft(1)

// resizer is implemented by games that can adapt to a new screen size
// without restarting.
type resizer interface {
	Resize(cfg core.RuntimeConfig)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig // full terminal size
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	heldUntil  map[core.Action]time.Time
	lastTick   time.Time
	gameState  core.GameState
	quitting   bool
	ended      bool // game over already logged
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards output.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := Model{
		game:       game,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		heldUntil:  make(map[core.Action]time.Time),
	}
	m.help.Width = cfg.ScreenW
	gc := m.gameConfig()
	m.screen = core.NewScreen(gc.ScreenW, gc.ScreenH)
	return m
}

// gameConfig returns the runtime config seen by the game: the terminal
// minus the help footer.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = core.Max(cfg.ScreenH-1, 1)
	return cfg
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	m.logger.Info("game started", "game", m.game.ID(), "width", m.config.ScreenW, "height", m.config.ScreenH)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score)
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		m.hold(action, now)
	case core.ActionFire:
		m.inputFrame.Push(m.fireEvent(now))
	case core.ActionPause:
		m.inputFrame.Set(core.ActionPause)
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	}

	return m, nil
}

// hold marks a direction as held and releases the opposite one.
func (m Model) hold(action core.Action, now time.Time) {
	opposite := core.ActionRight
	if action == core.ActionRight {
		opposite = core.ActionLeft
	}
	delete(m.heldUntil, opposite)
	m.extend(action, now)
}

// fireEvent classifies a fire key message: a press-edge when the key was
// up, an auto-repeat while it is still held.
func (m Model) fireEvent(now time.Time) core.KeyEvent {
	if m.extend(core.ActionFire, now) {
		return core.KeyEvent{Action: core.ActionFire, State: core.KeyRepeat}
	}
	return core.KeyEvent{Action: core.ActionFire, State: core.KeyPress}
}

// extend records a key message for action and reports whether the key was
// already held. A repeat never shortens the current hold.
func (m Model) extend(action core.Action, now time.Time) bool {
	if until, ok := m.heldUntil[action]; ok && now.Before(until) {
		if next := now.Add(repeatHold); next.After(until) {
			m.heldUntil[action] = next
		}
		return true
	}
	m.heldUntil[action] = now.Add(initialHold)
	return false
}

// applyHeld copies the directions still held at now into the input frame.
// Fire only ever reaches the game as key events.
func (m Model) applyHeld(now time.Time) {
	for action, until := range m.heldUntil {
		switch {
		case !now.Before(until):
			delete(m.heldUntil, action)
		case action != core.ActionFire:
			m.inputFrame.Set(action)
		}
	}
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	gc := m.gameConfig()
	m.screen.Resize(gc.ScreenW, gc.ScreenH)

	if r, ok := m.game.(resizer); ok {
		r.Resize(gc)
	} else if !m.gameState.GameOver {
		m.game.Reset(gc)
	}
	m.logger.Debug("resized", "width", msg.Width, "height", msg.Height)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := elapsed(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	m.applyHeld(now)
	restarting := m.inputFrame.Has(core.ActionRestart)

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State

	switch {
	case restarting && !m.gameState.GameOver:
		m.ended = false
		clear(m.heldUntil)
		m.logger.Info("game restarted", "game", m.game.ID())
	case m.gameState.GameOver && !m.ended:
		m.ended = true
		m.logger.Info("game over",
			"game", m.game.ID(),
			"score", m.gameState.Score,
			"won", m.gameState.Won,
		)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o750); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
