// Package tui is the Bubble Tea frontend: it rasterizes the fixed play area
// into half-block terminal cells and drives a game at its frame rate.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per simulated frame.
type TickMsg time.Time

// tickCmd schedules the next frame at the given rate.
func tickCmd(frameRate int) tea.Cmd {
	if frameRate <= 0 {
		frameRate = 50
	}
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// holdTicks converts a terminal hold into a number of frames, at least one.
func holdTicks(hold time.Duration, frameRate int) int {
	if frameRate <= 0 {
		frameRate = 50
	}
	n := int(hold * time.Duration(frameRate) / time.Second)
	return max(n, 1)
}
