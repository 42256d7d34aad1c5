package fivedraw

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"drawpoker-server/pkg/deck"
	"drawpoker-server/pkg/playable"
	"drawpoker-server/pkg/playable/poker/handrank"
	"drawpoker-server/pkg/playable/poker/ledger"
	"drawpoker-server/pkg/playable/poker/wager"
)

// maxRNG makes the computer strategy fully deterministic: always the
// high end of the band, never a probabilistic drop
type maxRNG struct{}

func (maxRNG) Intn(n int) int {
	return n - 1
}

func testPlayers() []playable.Player {
	return []playable.Player{
		SeatedPlayer{ID: 1, Name: "alice", Stake: 100},
		SeatedPlayer{ID: 2, Name: "bob", Stake: 100},
	}
}

// newTestGame returns a game with an unshuffled deck and a
// deterministic computer strategy
func newTestGame(t *testing.T, options Options) *Game {
	t.Helper()

	g, err := NewGame(logrus.StandardLogger(), testPlayers(), options)
	assert.NoError(t, err)

	g.deck = deck.New()
	g.strategy = wager.NewComputerStrategyWithRNG(maxRNG{})
	return g
}

func action(t *testing.T, g *Game, playerID int64, name string, data playable.AdditionalData) error {
	t.Helper()

	_, _, err := g.Action(playerID, &playable.PayloadIn{Action: name, AdditionalData: data})
	return err
}

func drainLogs(g *Game) {
	for {
		select {
		case <-g.logChan:
		default:
			return
		}
	}
}

func TestNewGame(t *testing.T) {
	opts := Options{}
	g, err := NewGame(logrus.StandardLogger(), testPlayers(), opts)
	assert.EqualError(t, err, "ante must be greater than zero")
	assert.Nil(t, g)

	opts.Ante = 5
	g, err = NewGame(logrus.StandardLogger(), testPlayers(), opts)
	assert.EqualError(t, err, "game end threshold must be greater than zero")
	assert.Nil(t, g)

	opts.GameEndThreshold = 500
	g, err = NewGame(logrus.StandardLogger(), testPlayers()[:1], opts)
	assert.EqualError(t, err, "five-card draw is played heads-up by exactly two players")
	assert.Nil(t, g)

	g, err = NewGame(logrus.StandardLogger(), testPlayers(), opts)
	assert.NoError(t, err)
	assert.NotNil(t, g)
	assert.Equal(t, StateAwaitDeal, g.state)
	assert.True(t, g.deck.Valid())
}

func TestGame_Name(t *testing.T) {
	g := &Game{}
	assert.Equal(t, "Five-Card Draw", g.Name())
}

func TestGame_Deal(t *testing.T) {
	a := assert.New(t)
	g := newTestGame(t, DefaultOptions())

	a.NoError(action(t, g, 1, "deal", nil))

	a.Equal(StateFirstWager, g.state)
	a.Equal(10, g.pot)
	a.Equal(95, g.participants[0].Balance())
	a.Equal(95, g.participants[1].Balance())

	// unshuffled deck deals alternating clubs
	a.Equal("2c,4c,6c,8c,10c", g.participants[0].hand.String())
	a.Equal("3c,5c,7c,9c,11c", g.participants[1].hand.String())
	a.Equal(handrank.Flush, g.participants[0].rank.Category)
	a.Equal(handrank.Flush, g.participants[1].rank.Category)

	kind, seat := g.awaiting()
	a.Equal("bet", kind)
	a.Equal(0, seat)

	// a second deal is rejected
	a.Equal(ErrNotAwaitingDeal, action(t, g, 1, "deal", nil))
}

func TestGame_FullRoundToShowdown(t *testing.T) {
	a := assert.New(t)
	g := newTestGame(t, DefaultOptions())

	a.NoError(action(t, g, 1, "deal", nil))

	// first wager: human checks, computer bets, human calls
	a.NoError(action(t, g, 1, "check", nil))

	acted, err := g.Tick()
	a.True(acted)
	a.NoError(err)
	a.Equal(20, g.wagerRound.Outstanding(0))

	a.NoError(action(t, g, 1, "call", nil))
	a.Equal(StateDiscardFirst, g.state)
	a.Equal(50, g.pot)

	// human stands pat; computer has a flush and stands pat too
	a.NoError(action(t, g, 1, "discard", nil))
	a.Equal(StateDiscardSecond, g.state)

	acted, err = g.Tick()
	a.True(acted)
	a.NoError(err)
	a.Equal(StateSecondWager, g.state)
	a.Equal("2c,4c,6c,8c,10c", g.participants[0].hand.String())
	a.Equal("3c,5c,7c,9c,11c", g.participants[1].hand.String())

	// second wager: check, bet, call — then showdown settles
	a.NoError(action(t, g, 1, "check", nil))

	_, err = g.Tick()
	a.NoError(err)
	a.NoError(action(t, g, 1, "call", nil))

	// bob's jack-high flush beats alice's ten-high flush
	a.Equal(55, g.participants[0].Balance())
	a.Equal(145, g.participants[1].Balance())
	a.Equal(0, g.pot)
	a.Equal(1, g.winner)

	// next round waits on a deal, with the first bettor alternated
	a.Equal(StateAwaitDeal, g.state)
	a.Equal(1, g.firstBettor)
	a.Equal(1, g.roundNo)
	a.True(g.deck.Valid())
	a.Equal(0, g.deck.Drawn())

	_, over := g.GetEndOfGameDetails()
	a.False(over)
}

func TestGame_DropEndsRound(t *testing.T) {
	a := assert.New(t)
	g := newTestGame(t, DefaultOptions())

	a.NoError(action(t, g, 1, "deal", nil))
	a.NoError(action(t, g, 1, "fold", nil))

	// bob wins the antes without a showdown
	a.Equal(95, g.participants[0].Balance())
	a.Equal(105, g.participants[1].Balance())
	a.Equal(0, g.pot)
	a.True(g.participants[0].folded)
	a.Equal(StateAwaitDeal, g.state)
}

func TestGame_ZeroSum(t *testing.T) {
	a := assert.New(t)
	g := newTestGame(t, DefaultOptions())

	total := func() int {
		return g.participants[0].Balance() + g.participants[1].Balance() + g.pot
	}

	before := total()

	for round := 0; round < 2; round++ {
		drainLogs(g)
		g.deck = deck.New()
		a.NoError(action(t, g, 1, "deal", nil))

		for g.state != StateAwaitDeal && g.state != StateGameOver {
			a.Equal(before, total())

			kind, _ := g.awaiting()
			switch kind {
			case "bet":
				a.NoError(action(t, g, 1, "call", nil))
			case "discard":
				a.NoError(action(t, g, 1, "discard", nil))
			default:
				_, err := g.Tick()
				a.NoError(err)
			}
		}
	}

	// no money created or destroyed across the rounds
	a.Equal(before, total())
	a.Equal(0, g.participants[0].account.Loans())
	a.Equal(0, g.participants[1].account.Loans())
}

func TestGame_Quit(t *testing.T) {
	a := assert.New(t)
	g := newTestGame(t, DefaultOptions())

	a.NoError(action(t, g, 1, "deal", nil))
	a.NoError(action(t, g, 1, "quit", nil))

	a.Equal(StateGameOver, g.state)
	a.Equal(105, g.participants[1].Balance())

	details, over := g.GetEndOfGameDetails()
	a.True(over)
	a.Equal(map[int64]int{1: -5, 2: 5}, details.BalanceAdjustments)

	a.Equal(ErrGameIsOver, action(t, g, 1, "deal", nil))
}

func TestGame_EliminationAtAnte(t *testing.T) {
	a := assert.New(t)

	opts := DefaultOptions()
	opts.Terms = ledger.Terms{LoanAmount: 1, LoanLimit: 1, PaybackThreshold: 100}

	players := []playable.Player{
		SeatedPlayer{ID: 1, Name: "alice", Stake: 0},
		SeatedPlayer{ID: 2, Name: "bob", Stake: 100},
	}

	g, err := NewGame(logrus.StandardLogger(), players, opts)
	a.NoError(err)
	g.deck = deck.New()

	a.NoError(action(t, g, 1, "deal", nil))

	a.Equal(StateGameOver, g.state)
	a.Equal(0, g.eliminated)

	_, over := g.GetEndOfGameDetails()
	a.True(over)
}

func TestGame_InvalidInputLeavesStateIntact(t *testing.T) {
	a := assert.New(t)
	g := newTestGame(t, DefaultOptions())

	a.NoError(action(t, g, 1, "deal", nil))

	// bad amount
	err := action(t, g, 1, "bet", playable.AdditionalData{"amount": 7})
	a.EqualError(err, "bet amount ${7} is not allowed")
	a.Equal(StateFirstWager, g.state)
	a.Equal(10, g.pot)

	// out of turn
	err = action(t, g, 2, "bet", playable.AdditionalData{"amount": 5})
	a.Equal(ErrNotPlayersTurn, err)

	// missing amount
	err = action(t, g, 1, "bet", nil)
	a.EqualError(err, "the bet action requires an amount")

	// discard out of phase
	err = action(t, g, 1, "discard", nil)
	a.Equal(ErrNotDiscarding, err)

	// unknown action
	err = action(t, g, 1, "jump", nil)
	a.EqualError(err, "unknown action: jump")

	// unknown player
	err = action(t, g, 99, "deal", nil)
	a.EqualError(err, "player 99 is not in this game")
}

func TestGame_DiscardValidation(t *testing.T) {
	a := assert.New(t)
	g := newTestGame(t, DefaultOptions())

	a.NoError(action(t, g, 1, "deal", nil))
	a.NoError(action(t, g, 1, "check", nil))

	_, err := g.Tick()
	a.NoError(err)
	a.NoError(action(t, g, 1, "call", nil))
	a.Equal(StateDiscardFirst, g.state)

	// a card alice doesn't hold
	_, _, err = g.Action(1, &playable.PayloadIn{
		Action: "discard",
		Cards:  deck.CardsFromString("14s"),
	})
	a.Equal(ErrCardNotInHand, err)

	// index out of range
	err = action(t, g, 1, "discard", playable.AdditionalData{"cardIndices": []int{9}})
	a.EqualError(err, "discard index 9 is out of range")

	// not bob's turn to discard
	err = action(t, g, 2, "discard", nil)
	a.Equal(ErrNotPlayersTurn, err)

	// replace the two lowest clubs by index
	err = action(t, g, 1, "discard", playable.AdditionalData{"cardIndices": []int{0, 1}})
	a.NoError(err)
	a.Equal(5, len(g.participants[0].hand))
	a.Equal(StateDiscardSecond, g.state)
}

func TestGame_DuplicateCardAbortsRound(t *testing.T) {
	a := assert.New(t)
	g := newTestGame(t, DefaultOptions())

	// corrupt the deck so alice is dealt the same card twice
	g.deck.Cards[0] = deck.CardFromString("2c")
	g.deck.Cards[2] = deck.CardFromString("2c")

	err := action(t, g, 1, "deal", nil)
	a.Error(err)
	a.IsType(handrank.ErrDuplicateCard{}, err)
	a.Equal(StateGameOver, g.state)
}

func TestGame_PlayerState(t *testing.T) {
	a := assert.New(t)
	g := newTestGame(t, DefaultOptions())

	a.NoError(action(t, g, 1, "deal", nil))

	res, err := g.GetPlayerState(1)
	a.NoError(err)

	ps := res.Data.(*PlayerState)
	a.Equal("first-wager", ps.GameState.State)
	a.Equal(10, ps.GameState.Pot)
	a.Equal("bet", ps.GameState.Awaiting)
	a.Equal(int64(1), ps.GameState.Action)

	// alice sees her own hand, but not bob's
	a.Equal(5, len(ps.Participant.Hand))
	a.Empty(ps.GameState.Participants[1].Hand)
	a.Equal("Flush", ps.Participant.HandRank)

	// a viewer sees neither hand
	res, err = g.GetPlayerState(99)
	a.NoError(err)
	ps = res.Data.(*PlayerState)
	a.Nil(ps.Participant)
	a.Empty(ps.GameState.Participants[0].Hand)
}
