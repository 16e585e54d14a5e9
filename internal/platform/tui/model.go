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
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pacmaze/internal/core"
	"github.com/vovakirdan/pacmaze/internal/games/pacman/engine"
	"github.com/vovakirdan/pacmaze/internal/registry"
)

// minSwipe is the shortest drag, in cells, that counts as a swipe.
const minSwipe = 2

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	dragging   bool
	dragX      int
	dragY      int
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game. A nil
// logger discards output.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerHeight, 1)),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     logger,
	}
}

// footerHeight is the number of rows reserved for the help footer.
const footerHeight = 1

// Init starts the game and the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "size", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH), "fps", m.config.TickRate)
	return tickCmd(m.config)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizeScreen()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score)
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse turns a press-drag-release into a direction request.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		m.dragging = true
		m.dragX, m.dragY = msg.X, msg.Y
	case tea.MouseActionRelease:
		if !m.dragging {
			return m, nil
		}
		m.dragging = false
		if a, ok := SwipeAction(msg.X-m.dragX, msg.Y-m.dragY); ok {
			m.inputFrame.Set(a)
		}
	}
	return m, nil
}

// SwipeAction resolves a drag vector in terminal cells to a movement
// action. Rows are about twice as tall as columns are wide, so vertical
// travel is doubled before the dominant axis is picked.
func SwipeAction(dx, dy int) (core.Action, bool) {
	if core.Abs(dx)+core.Abs(dy) < minSwipe {
		return core.ActionNone, false
	}
	dir, ok := engine.DirectionFromDelta(dx, dy*2)
	if !ok {
		return core.ActionNone, false
	}
	return engine.ActionForDirection(dir), true
}

// handleResize keeps the game running and only resizes the buffer; the
// game lays itself out on every render.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.resizeScreen()
	return m, nil
}

func (m *Model) resizeScreen() {
	footer := footerHeight
	if m.help.ShowAll {
		footer = len(m.keys.FullHelp()[0])
	}
	m.screen.Resize(m.config.ScreenW, max(m.config.ScreenH-footer, 1))
}

// handleTick runs one host frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState
	// The game gets its own copy; the buffer is reused for the next frame.
	result := m.game.Step(m.inputFrame.Clone())
	m.gameState = result.State

	if m.gameState.Cleared && !prev.Cleared {
		m.logger.Info("maze cleared", "game", m.game.ID(), "score", m.gameState.Score)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".pacmaze", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
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
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(game, cfg, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
