package fivedraw

import "fmt"

// State is the round orchestrator's current position.
// Play rests in AwaitDeal, the two wager states, the two discard
// states, and GameOver; the other states are passed through
// synchronously while a round resolves.
type State int

// state constants, in round order
const (
	StateAwaitDeal State = iota
	StateDealt
	StateFirstWager
	StateFirstResolved
	StateDiscardFirst
	StateDiscardSecond
	StateSecondWager
	StateSecondResolved
	StateShowdown
	StateSettlement
	StateGameOver
)

// String returns the string representation of a state
func (s State) String() string {
	switch s {
	case StateAwaitDeal:
		return "await-deal"
	case StateDealt:
		return "dealt"
	case StateFirstWager:
		return "first-wager"
	case StateFirstResolved:
		return "first-resolved"
	case StateDiscardFirst:
		return "discard-first"
	case StateDiscardSecond:
		return "discard-second"
	case StateSecondWager:
		return "second-wager"
	case StateSecondResolved:
		return "second-resolved"
	case StateShowdown:
		return "showdown"
	case StateSettlement:
		return "settlement"
	case StateGameOver:
		return "game-over"
	default:
		panic(fmt.Sprintf("unknown state: %d", s))
	}
}
