package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	d := New()

	assert.Equal(t, 52, d.CardsLeft())
	assert.Equal(t, Card{Rank: 2, Suit: Clubs}, *d.Cards[0])
	assert.Equal(t, Card{Rank: 14, Suit: Spades}, *d.Cards[51])
	assert.True(t, d.Valid())
}

func TestDeck_Shuffle(t *testing.T) {
	d := New()
	d.SetSeed(1)

	before := d.HashCode()
	d.Shuffle(0)

	assert.NotEqual(t, before, d.HashCode())
	assert.True(t, d.Valid())
	assert.Equal(t, 52, d.CardsLeft())

	// every pass count preserves the card multiset
	for passes := 1; passes <= 20; passes++ {
		d.Shuffle(passes)
		assert.True(t, d.Valid())
	}
}

func TestDeck_Draw(t *testing.T) {
	d := New()

	if !d.CanDraw(52) {
		t.Errorf("expected CanDraw(52) to be true")
	}

	if d.CanDraw(53) {
		t.Errorf("expected CanDraw(53) to be false")
	}

	for i := 0; i < 52; i++ {
		card, err := d.Draw()
		if card == nil {
			t.Error("expected card, got nil")
		}

		if err != nil {
			t.Errorf("expected err to be nil, got %v", err)
		}
	}

	if d.CanDraw(1) {
		t.Errorf("expected CanDraw(1) to be false")
	}

	card, err := d.Draw()
	if card != nil {
		t.Errorf("expected card to be nil, got %#v", card)
	}

	if err != ErrEndOfDeck {
		t.Errorf("expected err to be ErrEndOfDeck, got %#v", err)
	}

	assert.Equal(t, 52, d.Drawn())
	assert.True(t, d.Valid())
}

func TestDeck_Recycle(t *testing.T) {
	a := assert.New(t)
	d := New()
	d.SetSeed(42)
	d.Shuffle(3)

	for i := 0; i < 15; i++ {
		_, err := d.Draw()
		a.NoError(err)
	}

	a.Equal(15, d.Drawn())
	a.NoError(d.Recycle(d.Drawn()))
	a.Equal(0, d.Drawn())
	a.Equal(52, d.CardsLeft())
	a.True(d.Valid())

	a.Error(d.Recycle(-1))
	a.Error(d.Recycle(53))
}

func TestDeck_Reset(t *testing.T) {
	d := New()
	d.SetSeed(7)
	d.Shuffle(5)

	_, _ = d.Draw()
	_, _ = d.Draw()

	d.Reset()
	assert.Equal(t, 0, d.Drawn())
	assert.Equal(t, Card{Rank: 2, Suit: Clubs}, *d.Cards[0])
	assert.True(t, d.Valid())
}
