package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"fmt"

	"drawpoker-server/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// shuffle passes when the caller doesn't specify a count
const (
	minShufflePasses = 2
	maxShufflePasses = 20
)

// Deck is an ordered set of the 52 unique cards plus a deal cursor.
// Drawing advances the cursor rather than removing cards, so the same
// 52-card set survives from round to round.
type Deck struct {
	Cards  []*Card `json:"cards"`
	cursor int
	rng    rng.Generator
}

// New returns a new deck of cards in canonical order.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{
		rng: rng.Crypto{},
	}

	d.Reset()
	return d
}

// SetSeed swaps the generator for a deterministic one.
// This should only be used by tests and replays.
func (d *Deck) SetSeed(seed int64) {
	d.rng = rng.NewSeeded(seed)
}

// Reset rebuilds the canonical 52-card set and clears the cursor
func (d *Deck) Reset() {
	cards := make([]*Card, 0, 52)
	for _, suit := range Suits {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
	d.cursor = 0
}

// Shuffle applies the given number of shuffle passes.
// A pass is a random swap pass, a random middle cut, and a fan merge.
// If passes <= 0, a pass count is chosen at random.
func (d *Deck) Shuffle(passes int) {
	if passes <= 0 {
		passes = minShufflePasses + d.rng.Intn(maxShufflePasses-minShufflePasses+1)
	}

	for i := 0; i < passes; i++ {
		d.swapPass()
		d.cutPass()
		d.fanMerge()
	}
}

// swapPass is a standard unbiased in-place shuffle
func (d *Deck) swapPass() {
	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// cutPass removes a random contiguous slice from the middle and appends it to the end
func (d *Deck) cutPass() {
	n := len(d.Cards)
	start := 1 + d.rng.Intn(n-2)
	length := 1 + d.rng.Intn(n-start)

	cut := make([]*Card, length)
	copy(cut, d.Cards[start:start+length])

	cards := make([]*Card, 0, n)
	cards = append(cards, d.Cards[:start]...)
	cards = append(cards, d.Cards[start+length:]...)
	cards = append(cards, cut...)

	d.Cards = cards
}

// fanMerge removes a random-length prefix and reinserts its cards one at
// a time into the front, reversing their order against the remainder
func (d *Deck) fanMerge() {
	n := len(d.Cards)
	length := 1 + d.rng.Intn(n/2)

	prefix := make([]*Card, length)
	copy(prefix, d.Cards[:length])

	cards := d.Cards[length:]
	for _, card := range prefix {
		cards = append([]*Card{card}, cards...)
	}

	d.Cards = cards
}

// Draw will draw the next card and advance the cursor
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	if d.cursor >= len(d.Cards) {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[d.cursor]
	d.cursor++

	return card, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards)-d.cursor >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards) - d.cursor
}

// Drawn returns how many cards have been drawn since the last reset or recycle
func (d *Deck) Drawn() int {
	return d.cursor
}

// Recycle moves the first {used} cards to the tail, clears the cursor,
// and reshuffles. Called once per completed round so the same 52-card
// set persists across rounds without reconstruction.
func (d *Deck) Recycle(used int) error {
	if used < 0 || used > len(d.Cards) {
		return fmt.Errorf("cannot recycle %d cards from a deck of %d", used, len(d.Cards))
	}

	cards := make([]*Card, 0, len(d.Cards))
	cards = append(cards, d.Cards[used:]...)
	cards = append(cards, d.Cards[:used]...)

	d.Cards = cards
	d.cursor = 0
	d.Shuffle(0)

	return nil
}

// Valid returns true if the deck still holds each of the 52 unique cards exactly once
func (d *Deck) Valid() bool {
	if len(d.Cards) != 52 {
		return false
	}

	seen := make(map[Card]bool, 52)
	for _, card := range d.Cards {
		if seen[*card] {
			return false
		}

		seen[*card] = true
	}

	return true
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}
