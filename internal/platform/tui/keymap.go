package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bubble-catch/internal/core"
)

// GameKeyMap defines the key bindings used while a game is on screen.
type GameKeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Restart key.Binding
	Back    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Back, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Restart, k.Back},
		{k.Help, k.Quit},
	}
}

// DefaultGameKeyMap returns the default game bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("left/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("right/d", "move right"),
		),
		Restart: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play again"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "stop/back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game action.
// Keys without a binding map to ActionOther.
func (k GameKeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Restart):
		return core.ActionConfirm
	case key.Matches(msg, k.Back):
		return core.ActionBack
	}
	return core.ActionOther
}

// Commander is the command side of a game.
type Commander interface {
	Start()
	MoveLeft()
	MoveRight()
	Restart()
	Stop()
}

// Intent is what the UI should do after an action was dispatched.
type Intent int

const (
	IntentNone Intent = iota
	IntentBack        // Leave the game screen
	IntentQuit        // Exit the program
)

// Dispatch turns an action into a game command based on the current state.
//
//	Initialized: any key starts, esc leaves
//	Started:     left/right move, esc stops the run
//	GameOver/Won: enter restarts, esc leaves
//
// An unknown state is a programming error and panics.
func Dispatch(state core.State, action core.Action, c Commander) Intent {
	if !state.Valid() {
		panic(fmt.Sprintf("tui: unknown game state %d", int(state)))
	}
	if action == core.ActionQuit {
		return IntentQuit
	}
	if action == core.ActionNone {
		return IntentNone
	}

	switch state {
	case core.StateInitialized:
		if action == core.ActionBack {
			return IntentBack
		}
		c.Start()

	case core.StateStarted:
		switch action {
		case core.ActionLeft:
			c.MoveLeft()
		case core.ActionRight:
			c.MoveRight()
		case core.ActionBack:
			c.Stop()
		}

	case core.StateGameOver, core.StateWon:
		switch action {
		case core.ActionConfirm:
			c.Restart()
		case core.ActionBack:
			return IntentBack
		}
	}

	return IntentNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
