package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pacmaze/internal/config"
	"github.com/vovakirdan/pacmaze/internal/core"
)

// SetupSelection holds the choices made before a game starts.
type SetupSelection struct {
	Maze       string
	Difficulty config.DifficultyPreset
}

var mazeChoices = []string{config.MazeClassic, config.MazeGenerated}

const (
	rowMaze = iota
	rowDifficulty
	rowStart
	rowCount
)

var (
	titleStyle    = colorStyles[core.ColorActor]
	selectedStyle = colorStyles[core.ColorAccent]
	dimStyle      = colorStyles[core.ColorDim]
)

// SetupModel lets users pick the maze source and difficulty.
type SetupModel struct {
	cursor    int
	mazeIdx   int
	presetIdx int
	width     int
	height    int
	keys      KeyMap
	confirm   key.Binding
	back      key.Binding
	choosing  bool
	quitting  bool
	wantsBack bool
	selection SetupSelection
}

// NewSetupModel creates a setup menu preloaded with the given choices.
func NewSetupModel(width, height int, initial SetupSelection) SetupModel {
	m := SetupModel{
		width:    width,
		height:   height,
		keys:     DefaultKeyMap(),
		confirm:  key.NewBinding(key.WithKeys("enter")),
		back:     key.NewBinding(key.WithKeys("esc", "b")),
		choosing: true,
	}
	if i := slices.Index(mazeChoices, initial.Maze); i >= 0 {
		m.mazeIdx = i
	}
	m.presetIdx = slices.Index(config.Presets, config.DifficultyNormal)
	if i := slices.Index(config.Presets, initial.Difficulty); i >= 0 {
		m.presetIdx = i
	}
	return m
}

// Init initializes the model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m SetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.back):
		m.wantsBack = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor + rowCount - 1) % rowCount
	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % rowCount
	case key.Matches(msg, m.keys.Left):
		m.cycle(-1)
	case key.Matches(msg, m.keys.Right):
		m.cycle(1)
	case key.Matches(msg, m.confirm):
		if m.cursor != rowStart {
			m.cycle(1)
			return m, nil
		}
		m.choosing = false
		m.selection = SetupSelection{
			Maze:       mazeChoices[m.mazeIdx],
			Difficulty: config.Presets[m.presetIdx],
		}
		return m, tea.Quit
	}
	return m, nil
}

// cycle steps the value on the current row.
func (m *SetupModel) cycle(step int) {
	switch m.cursor {
	case rowMaze:
		m.mazeIdx = (m.mazeIdx + len(mazeChoices) + step) % len(mazeChoices)
	case rowDifficulty:
		m.presetIdx = (m.presetIdx + len(config.Presets) + step) % len(config.Presets)
	}
}

// View renders the setup menu.
func (m SetupModel) View() string {
	if m.quitting {
		return ""
	}

	rows := []string{
		fmt.Sprintf("Maze:       ◀ %-9s ▶", mazeChoices[m.mazeIdx]),
		fmt.Sprintf("Difficulty: ◀ %-9s ▶", config.Presets[m.presetIdx]),
		"Start",
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("P A C - M A Z E"))
	b.WriteString("\n\n")
	for i, row := range rows {
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("↑/↓ move  ←/→ change  enter start  esc back  q quit"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// Selected returns the selection, or nil if still choosing.
func (m SetupModel) Selected() *SetupSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m SetupModel) WantsBack() bool {
	return m.wantsBack
}

// RunSetupSelector runs the setup menu. A nil selection means the user
// backed out.
func RunSetupSelector(cfg core.RuntimeConfig, initial SetupSelection) (*SetupSelection, error) {
	p := tea.NewProgram(
		NewSetupModel(cfg.ScreenW, cfg.ScreenH, initial),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(SetupModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}
	return m.Selected(), nil
}
