package handrank

import (
	"fmt"
	"sort"

	"drawpoker-server/pkg/deck"
)

// HandSize is the number of cards in a five-card-draw hand
const HandSize = 5

// ErrDuplicateCard means the same card appeared twice in one hand.
// That can only happen if the deck invariant was violated upstream, so
// callers must treat it as fatal rather than ranking the hand anyway.
type ErrDuplicateCard struct {
	Card *deck.Card
}

func (e ErrDuplicateCard) Error() string {
	return fmt.Sprintf("duplicate card in hand: %s", e.Card)
}

// HandRank is a category plus the ordered rank values that break ties
// within it, most significant first. Every category carries enough
// tiebreak values that an element-wise comparison fully orders two
// hands of the same category.
type HandRank struct {
	Category Category `json:"category"`
	Tiebreak []int    `json:"tiebreak"`
}

func (h *HandRank) String() string {
	return h.Category.String()
}

// Evaluate ranks exactly five cards.
// The function is total over legal hands; the only error cases are a
// wrong card count and a duplicated card (a deck defect).
func Evaluate(cards []*deck.Card) (*HandRank, error) {
	if len(cards) != HandSize {
		return nil, fmt.Errorf("expected %d cards, got %d", HandSize, len(cards))
	}

	for i, card := range cards {
		for _, other := range cards[i+1:] {
			if card.Equal(other) {
				return nil, ErrDuplicateCard{Card: card}
			}
		}
	}

	ranks := make([]int, HandSize)
	for i, card := range cards {
		ranks[i] = card.Rank
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))

	flush := isFlush(cards)
	straightHigh, straight := straightHighCard(ranks)

	if flush && straight {
		if straightHigh == deck.Ace {
			return &HandRank{Category: RoyalFlush}, nil
		}

		return &HandRank{Category: StraightFlush, Tiebreak: []int{straightHigh}}, nil
	}

	if rank, ok := ofAKind(ranks, 4); ok {
		return &HandRank{Category: FourOfAKind, Tiebreak: append([]int{rank}, kickers(ranks, rank)...)}, nil
	}

	trips, hasTrips := ofAKind(ranks, 3)
	pairs := pairRanks(ranks)

	if hasTrips && len(pairs) == 1 {
		return &HandRank{Category: FullHouse, Tiebreak: []int{trips, pairs[0]}}, nil
	}

	if flush {
		return &HandRank{Category: Flush, Tiebreak: ranks}, nil
	}

	if straight {
		return &HandRank{Category: Straight, Tiebreak: []int{straightHigh}}, nil
	}

	if hasTrips {
		return &HandRank{Category: ThreeOfAKind, Tiebreak: append([]int{trips}, kickers(ranks, trips)...)}, nil
	}

	switch len(pairs) {
	case 2:
		// higher pair first, regardless of detection order
		return &HandRank{Category: TwoPair, Tiebreak: append(pairs, kickers(ranks, pairs[0], pairs[1])...)}, nil
	case 1:
		return &HandRank{Category: OnePair, Tiebreak: append([]int{pairs[0]}, kickers(ranks, pairs[0])...)}, nil
	}

	return &HandRank{Category: HighCard, Tiebreak: ranks}, nil
}

func isFlush(cards []*deck.Card) bool {
	for _, card := range cards[1:] {
		if card.Suit != cards[0].Suit {
			return false
		}
	}

	return true
}

// straightHighCard returns the high card of a straight formed by the
// descending-sorted ranks. The low straight (A-2-3-4-5) is matched as a
// special pattern since Ace is otherwise non-adjacent to 2-5; its high
// card is the 5.
func straightHighCard(ranks []int) (int, bool) {
	isRun := true
	for i := 1; i < len(ranks); i++ {
		if ranks[i] != ranks[i-1]-1 {
			isRun = false
			break
		}
	}

	if isRun {
		return ranks[0], true
	}

	if ranks[0] == deck.Ace && ranks[1] == 5 && ranks[2] == 4 && ranks[3] == 3 && ranks[4] == 2 {
		return 5, true
	}

	return 0, false
}

// ofAKind returns the rank that appears exactly {count} times
func ofAKind(ranks []int, count int) (int, bool) {
	for _, rank := range ranks {
		n := 0
		for _, r := range ranks {
			if r == rank {
				n++
			}
		}

		if n == count {
			return rank, true
		}
	}

	return 0, false
}

// pairRanks returns the distinct ranks appearing exactly twice, highest first
func pairRanks(ranks []int) []int {
	pairs := make([]int, 0, 2)
	for i, rank := range ranks {
		if i > 0 && ranks[i-1] == rank {
			continue
		}

		n := 0
		for _, r := range ranks {
			if r == rank {
				n++
			}
		}

		if n == 2 {
			pairs = append(pairs, rank)
		}
	}

	return pairs
}

// kickers returns the descending ranks not part of the given groups
func kickers(ranks []int, exclude ...int) []int {
	out := make([]int, 0, len(ranks))
outer:
	for _, rank := range ranks {
		for _, ex := range exclude {
			if rank == ex {
				continue outer
			}
		}

		out = append(out, rank)
	}

	return out
}
