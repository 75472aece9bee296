// Package tui hosts the game in a terminal with Bubble Tea: key mapping,
// skin loading, rasterizing the draw list into cells, the skin picker and
// the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// gameIDs tells tick chains of successive games apart.
var gameIDs atomic.Int64

// TickMsg is sent to trigger one game loop iteration of one game.
type TickMsg struct {
	Game int64
	At   time.Time
}

// tickCmd returns a Bubble Tea command that sends a tick for game id after delay.
func tickCmd(id int64, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{Game: id, At: t}
	})
}
