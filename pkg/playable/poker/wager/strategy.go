package wager

import (
	"drawpoker-server/internal/rng"
	"drawpoker-server/pkg/playable/poker/handrank"
)

// View is what a bettor sees when choosing an amount
type View struct {
	// Category is the strength of the bettor's current hand
	Category handrank.Category
	// Pot is the total pot so far, including earlier betting rounds
	Pot int
	// Outstanding is the amount owed to match the current bet
	Outstanding int
	// Opening is true when no bet is outstanding this round
	Opening bool
	// FirstBettor is true when this seat opens the round
	FirstBettor bool
	// InDebt is true while the bettor holds an outstanding loan
	InDebt bool
	// Ante is the round's ante
	Ante int
}

// Strategy chooses a wager amount for a seat.
// The human-relayed player is a Strategy satisfied by host input; the
// computer player is ComputerStrategy.
type Strategy interface {
	// ChooseBet returns an amount from the allowed set, or DropAmount
	ChooseBet(v View) int
}

// conservativePot is the pot size beyond which the computer sizes down
const conservativePot = 60

// drop chance in percent for the two weakest tiers
const (
	highCardDropChance = 25
	onePairDropChance  = 10
)

// ComputerStrategy is the heuristic bettor.
// It picks a tier from the hand category, randomizes within the tier's
// band, sizes down against a large pot, opens with at least an
// ante-sized bet when first to act, and folds weak hands
// probabilistically unless it is in debt.
type ComputerStrategy struct {
	rng rng.Generator
}

// NewComputerStrategy returns the heuristic bettor
func NewComputerStrategy() *ComputerStrategy {
	return &ComputerStrategy{rng: rng.Crypto{}}
}

// NewComputerStrategyWithRNG returns a bettor with a caller-supplied
// generator, for deterministic tests
func NewComputerStrategyWithRNG(g rng.Generator) *ComputerStrategy {
	return &ComputerStrategy{rng: g}
}

// ChooseBet implements Strategy
func (s *ComputerStrategy) ChooseBet(v View) int {
	tier := tierForCategory(v.Category)

	// never voluntarily drop while holding a loan
	if v.Outstanding > 0 && !v.InDebt {
		chance := 0
		switch v.Category {
		case handrank.HighCard:
			chance = highCardDropChance
		case handrank.OnePair:
			chance = onePairDropChance
		}

		if chance > 0 && s.rng.Intn(100) < chance {
			return DropAmount
		}
	}

	if v.Pot > conservativePot && tier > 0 {
		tier--
	}

	low, high := tierBand(tier)
	amount := low
	if high > low && s.rng.Intn(2) == 1 {
		amount = high
	}

	if v.Opening && v.FirstBettor && amount < v.Ante {
		// forced minimum opening bet
		amount = v.Ante
	}

	return amount
}

func tierForCategory(c handrank.Category) int {
	switch {
	case c >= handrank.FourOfAKind:
		return 4
	case c >= handrank.Straight:
		return 3
	case c >= handrank.TwoPair:
		return 2
	case c == handrank.OnePair:
		return 1
	}

	return 0
}

// tierBand returns the low and high wager for a tier
func tierBand(tier int) (int, int) {
	switch tier {
	case 4:
		return 20, 25
	case 3:
		return 15, 20
	case 2:
		return 10, 15
	case 1:
		return 5, 10
	}

	return 0, 5
}
