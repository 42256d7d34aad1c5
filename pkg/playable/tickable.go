package playable

import "time"

// Tickable is a game that advances on its own between player actions.
// Hosts call Tick on the Delay cadence; the game uses it to make the
// computer player's decisions.
type Tickable interface {
	// Delay is how long the host should wait between ticks
	Delay() time.Duration

	// Tick advances the game if a decision is pending for the computer
	// Return true if the host should push an updated state
	Tick() (bool, error)
}
