package core

// State is the game state tag. The set of values is closed; code switching
// on a State should treat any other value as a programming error.
type State int

const (
	StateInitialized State = iota // Waiting for the player to start
	StateStarted                  // Tick loop running
	StateGameOver                 // Caught a wrong color
	StateWon                      // Cleared the final level
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StateStarted:
		return "started"
	case StateGameOver:
		return "game_over"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the defined states.
func (s State) Valid() bool {
	return s >= StateInitialized && s <= StateWon
}

// Finished reports whether the run has ended (GameOver or Won).
func (s State) Finished() bool {
	return s == StateGameOver || s == StateWon
}
