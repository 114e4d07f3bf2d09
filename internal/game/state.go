// Package game provides the main game loop and state management.
package game

// State represents the current game state.
type State int

const (
	// StateExplore is the default mode where keys move the player.
	StateExplore State = iota
	// StateHelp shows the key bindings until any key is pressed.
	StateHelp
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateHelp:
		return "help"
	default:
		return "unknown"
	}
}
