// Package tui hosts the snake engine in a Bubble Tea program.
// It owns the tick schedule, input mapping and drawing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks for one engine tick. Ticks scheduled under an older epoch
// are stale and dropped.
type TickMsg struct {
	Epoch uint64
}

// adviceMsg fires the periodic advice check.
type adviceMsg struct{}

// clearNoticeMsg expires the notice with the same sequence number.
type clearNoticeMsg struct {
	seq int
}

// tickCmd schedules a single tick after d.
func tickCmd(d time.Duration, epoch uint64) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return TickMsg{Epoch: epoch}
	})
}

func adviceCmd(every time.Duration) tea.Cmd {
	if every <= 0 {
		return nil
	}
	return tea.Tick(every, func(time.Time) tea.Msg {
		return adviceMsg{}
	})
}

func clearNoticeCmd(after time.Duration, seq int) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return clearNoticeMsg{seq: seq}
	})
}
