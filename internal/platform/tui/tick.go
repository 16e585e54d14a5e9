// Package tui runs a registry game inside Bubble Tea, locally or per SSH
// session: it owns the frame loop, maps keys and mouse swipes to actions
// and paints the game's screen buffer with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pacmaze/internal/core"
)

// TickMsg is sent once per host frame.
type TickMsg time.Time

// tickCmd schedules the next host frame. Frames are paced by the host;
// the game decides on its own clock whether a frame carries an engine
// tick.
func tickCmd(cfg core.RuntimeConfig) tea.Cmd {
	return tea.Tick(cfg.FrameDuration(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
