package fivedraw

import (
	"drawpoker-server/pkg/deck"
	"drawpoker-server/pkg/playable/poker/handrank"
)

// maxComputerDiscards caps how many cards the computer redraws
const maxComputerDiscards = 3

// chooseDiscards picks the computer's discards: made hands of a
// straight or better stand pat, otherwise every card outside a paired
// group goes back, lowest first, up to the cap
func chooseDiscards(hand deck.Hand, rank *handrank.HandRank) []*deck.Card {
	if rank.Category >= handrank.Straight {
		return nil
	}

	counts := make(map[int]int, len(hand))
	for _, card := range hand {
		counts[card.Rank]++
	}

	// hand order is ascending, so the weakest candidates come first
	discards := make([]*deck.Card, 0, maxComputerDiscards)
	for _, card := range hand {
		if counts[card.Rank] > 1 {
			continue
		}

		discards = append(discards, card)
		if len(discards) == maxComputerDiscards {
			break
		}
	}

	return discards
}
