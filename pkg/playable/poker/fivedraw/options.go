package fivedraw

import (
	"drawpoker-server/pkg/playable/poker/ledger"
	"drawpoker-server/pkg/playable/poker/wager"
)

// Options provides options for a game of five-card draw
type Options struct {
	// Ante is collected from both players before each deal
	Ante int
	// BetSteps is the discrete set of allowed wager amounts
	BetSteps []int
	// RaiseLimit is the number of raises allowed per betting round
	RaiseLimit int
	// Terms configures the house-credit economy
	Terms ledger.Terms
	// GameEndThreshold ends the game when either bankroll reaches it
	GameEndThreshold int
	// AutoPlay runs both seats on the computer strategy
	AutoPlay bool
}

// DefaultOptions returns the default set of options
func DefaultOptions() Options {
	return Options{
		Ante:             5,
		BetSteps:         wager.DefaultBetSteps,
		RaiseLimit:       wager.DefaultRaiseLimit,
		Terms:            ledger.DefaultTerms(),
		GameEndThreshold: 500,
	}
}
