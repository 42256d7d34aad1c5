package deck

import "sort"

// Hand represents a collection of cards
type Hand []*Card

func (h Hand) Len() int {
	return len(h)
}

func (h Hand) Less(i, j int) bool {
	if h[i].Rank != h[j].Rank {
		return h[i].Rank < h[j].Rank
	}

	return h[i].Suit < h[j].Suit
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h *Hand) HasCard(card *Card) bool {
	for _, c := range *h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// Discard will discard the specified card and return true if it was in the hand
func (h *Hand) Discard(card *Card) bool {
	for i, c := range *h {
		if c.Equal(card) {
			*h = append((*h)[:i], (*h)[i+1:]...)
			return true
		}
	}

	return false
}

// Sort orders the hand ascending by rank, except for the low straight
// (A-2-3-4-5) where the Ace is relocated to the front
func (h Hand) Sort() {
	sort.Sort(h)

	if h.IsLowStraight() {
		ace := h[len(h)-1]
		copy(h[1:], h[:len(h)-1])
		h[0] = ace
	}
}

// IsLowStraight returns true if the ascending-sorted hand is exactly A-2-3-4-5
func (h Hand) IsLowStraight() bool {
	if len(h) != 5 {
		return false
	}

	for i, rank := range []int{2, 3, 4, 5, Ace} {
		if h[i].Rank != rank {
			return false
		}
	}

	return true
}

// Ranks returns the rank of each card in hand order
func (h Hand) Ranks() []int {
	ranks := make([]int, len(h))
	for i, c := range h {
		ranks[i] = c.Rank
	}

	return ranks
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
