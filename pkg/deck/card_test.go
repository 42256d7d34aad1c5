package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard_String(t *testing.T) {
	assert.Equal(t, "A♠", CardFromString("14s").String())
	assert.Equal(t, "2♣", CardFromString("2c").String())
	assert.Equal(t, "10♡", CardFromString("10h").String())
	assert.Equal(t, "J♢", CardFromString("11d").String())
	assert.Equal(t, "Q♣", CardFromString("12c").String())
	assert.Equal(t, "K♣", CardFromString("13c").String())
}

func TestCardFromString(t *testing.T) {
	card := CardFromString("5h")
	assert.Equal(t, 5, card.Rank)
	assert.Equal(t, Hearts, card.Suit)

	assert.Nil(t, CardFromString(""))
	assert.PanicsWithValue(t, "could not parse card: 15c", func() {
		CardFromString("15c")
	})
}

func TestCard_Equal(t *testing.T) {
	assert.True(t, CardFromString("5h").Equal(CardFromString("5h")))
	assert.False(t, CardFromString("5h").Equal(CardFromString("5s")))
	assert.False(t, CardFromString("5h").Equal(CardFromString("6h")))
}

func TestCard_AceLowRank(t *testing.T) {
	assert.Equal(t, 1, CardFromString("14s").AceLowRank())
	assert.Equal(t, 13, CardFromString("13s").AceLowRank())
}

func TestCardsToString(t *testing.T) {
	cards := CardsFromString("2c,10h,14s")
	assert.Equal(t, "2c,10h,14s", CardsToString(cards))
}
