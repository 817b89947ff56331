// Package game provides the main game loop and state management.
package game

// State represents the current game state.
type State int

const (
	// StateExplore is the default mode where the party walks the level.
	StateExplore State = iota
	// StateWon means the party reached the exit.
	StateWon
	// StateLost means the party walked into a monster or a pit.
	StateLost
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Over reports whether the level has ended.
func (s State) Over() bool {
	return s == StateWon || s == StateLost
}
