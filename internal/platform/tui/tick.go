// Package tui provides the Bubble Tea integration for bubble-catch.
// It handles the terminal UI loop, input mapping and drawing of game snapshots.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent after the game completed a simulation tick.
type TickMsg struct{}

// waitForTick returns a command that blocks until the game signals a tick.
// The game paces itself; the UI only redraws when told to. A closed
// channel ends the chain.
func waitForTick(ticks <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ticks; !ok {
			return nil
		}
		return TickMsg{}
	}
}
