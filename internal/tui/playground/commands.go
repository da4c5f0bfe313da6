package playground

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameCmd schedules the next frame tick.
func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
