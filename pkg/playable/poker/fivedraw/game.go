package fivedraw

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"drawpoker-server/pkg/deck"
	"drawpoker-server/pkg/playable"
	"drawpoker-server/pkg/playable/poker/handrank"
	"drawpoker-server/pkg/playable/poker/ledger"
	"drawpoker-server/pkg/playable/poker/wager"
)

const handSize = 5

// noSeat marks the absence of a winner or eliminated seat
const noSeat = -1

// Game is a heads-up game of five-card draw.
// Seat 0 is the human-relayed player and seat 1 the computer, unless
// AutoPlay puts both seats on the computer strategy. The host drives
// the game through Action and Tick; the game never blocks for input.
type Game struct {
	options      Options
	logger       logrus.FieldLogger
	logChan      chan []*playable.LogMessage
	deck         *deck.Deck
	participants [2]*Participant
	idToSeat     map[int64]int

	state       State
	pot         int
	firstBettor int
	roundNo     int
	wagerRound  *wager.Round
	discardTurn int
	strategy    wager.Strategy

	// winner and eliminated are seats, noSeat when unset
	winner     int
	eliminated int
	revealed   bool
	done       bool
}

// NewGame returns a new game of five-card draw for exactly two players
func NewGame(logger logrus.FieldLogger, players []playable.Player, options Options) (*Game, error) {
	if options.Ante <= 0 {
		return nil, errors.New("ante must be greater than zero")
	}

	if options.GameEndThreshold <= 0 {
		return nil, errors.New("game end threshold must be greater than zero")
	}

	if len(players) != 2 {
		return nil, errors.New("five-card draw is played heads-up by exactly two players")
	}

	d := deck.New()
	d.Shuffle(0)

	g := &Game{
		options:    options,
		logger:     logger,
		logChan:    make(chan []*playable.LogMessage, 256),
		deck:       d,
		idToSeat:   make(map[int64]int),
		state:      StateAwaitDeal,
		winner:     noSeat,
		eliminated: noSeat,
		strategy:   wager.NewComputerStrategy(),
	}

	for seat, player := range players {
		computer := seat == 1 || options.AutoPlay
		g.participants[seat] = newParticipant(player.GetPlayerID(), player.GetName(), player.GetTableStake(), computer, options.Terms)
		g.idToSeat[player.GetPlayerID()] = seat
	}

	g.logChan <- playable.SimpleLogMessageSlice(0, "New game of Five-Card Draw started (ante: ${%d}; plays to ${%d})",
		options.Ante, options.GameEndThreshold)

	return g, nil
}

func (g *Game) setState(s State) {
	g.logger.WithFields(logrus.Fields{
		"from": g.state.String(),
		"to":   s.String(),
	}).Debug("state transition")

	g.state = s
}

func (g *Game) log(playerID int64, format string, a ...interface{}) {
	g.logChan <- playable.SimpleLogMessageSlice(playerID, format, a...)
}

// Seat returns the seat for the player ID, or noSeat for a viewer
func (g *Game) seat(playerID int64) int {
	if seat, ok := g.idToSeat[playerID]; ok {
		return seat
	}

	return noSeat
}

// dealCards starts a round: antes, ten cards alternating from the
// first bettor, and an evaluation of both hands
func (g *Game) dealCards() error {
	if g.done {
		return ErrGameIsOver
	}

	if g.state != StateAwaitDeal {
		return ErrNotAwaitingDeal
	}

	// ante before deal
	for i := 0; i < 2; i++ {
		seat := (g.firstBettor + i) % 2
		p := g.participants[seat]

		if repaid := p.account.SettlePaybacks(); repaid > 0 {
			g.log(p.PlayerID, "{} repaid %d loan(s)", repaid)
		}

		granted, err := p.account.CheckFunds(g.options.Ante)
		if granted > 0 {
			g.log(p.PlayerID, "{} took out %d loan(s) of ${%d}", granted, g.options.Terms.LoanAmount)
		}

		if err != nil {
			g.eliminate(seat)
			return nil
		}

		p.account.Debit(g.options.Ante)
		g.pot += g.options.Ante
		g.log(p.PlayerID, "{} paid the ${%d} ante", g.options.Ante)
	}

	for i := 0; i < 2; i++ {
		g.participants[i].resetForRound()
	}
	g.revealed = false
	g.winner = noSeat

	// alternate the deal the way it happens at a real table
	for i := 0; i < 2*handSize; i++ {
		seat := (g.firstBettor + i) % 2
		card, err := g.deck.Draw()
		if err != nil {
			return err
		}

		g.participants[seat].hand.AddCard(card)
	}

	g.setState(StateDealt)

	for _, p := range g.participants {
		if err := p.evaluate(); err != nil {
			return g.abortRound(err)
		}
	}

	g.startWagerRound(StateFirstWager)
	return nil
}

// abortRound handles the fatal engine-defect class: a corrupted deck
// must end the game with a diagnostic, never a silently wrong winner
func (g *Game) abortRound(err error) error {
	g.logger.WithError(err).Error("aborting round: deck invariant violated")
	g.log(0, "the round was aborted: %s", err)

	g.done = true
	g.setState(StateGameOver)
	return err
}

func (g *Game) startWagerRound(s State) {
	accounts := [2]*ledger.Account{g.participants[0].account, g.participants[1].account}
	g.wagerRound = wager.NewRound(accounts, g.firstBettor, g.options.RaiseLimit, g.options.BetSteps)
	g.setState(s)
}

// offerBet relays a chosen amount into the active wagering round and
// advances the orchestrator on a terminal outcome
func (g *Game) offerBet(seat, amount int) error {
	if g.done {
		return ErrGameIsOver
	}

	if g.state != StateFirstWager && g.state != StateSecondWager {
		return ErrNotWagering
	}

	p := g.participants[seat]

	res, err := g.wagerRound.Offer(seat, amount)
	if err != nil {
		if err == wager.ErrNotPlayersTurn {
			return ErrNotPlayersTurn
		}

		return err
	}

	if res.LoansRepaid > 0 {
		g.log(p.PlayerID, "{} repaid %d loan(s)", res.LoansRepaid)
	}

	if res.LoansGranted > 0 {
		g.log(p.PlayerID, "{} took out %d loan(s) of ${%d}", res.LoansGranted, g.options.Terms.LoanAmount)
	}

	g.pot += res.Committed

	switch res.Kind {
	case wager.Continue:
		if res.Committed == 0 {
			g.log(p.PlayerID, "{} checked")
		} else {
			g.log(p.PlayerID, "{} bet ${%d}", res.Committed)
		}

	case wager.Called:
		if res.ForcedCall {
			g.log(p.PlayerID, "{} called ${%d} (raise limit reached)", res.Committed)
		} else if res.Committed == 0 {
			g.log(p.PlayerID, "{} checked")
		} else {
			g.log(p.PlayerID, "{} called ${%d}", res.Committed)
		}

		g.resolveWagerRound()

	case wager.Dropped:
		g.log(p.PlayerID, "{} dropped")
		p.folded = true
		g.settle(1-seat, false)

	case wager.Eliminated:
		g.eliminate(seat)
	}

	return nil
}

func (g *Game) resolveWagerRound() {
	if g.state == StateFirstWager {
		g.setState(StateFirstResolved)
		g.discardTurn = g.firstBettor
		g.setState(StateDiscardFirst)
		return
	}

	g.setState(StateSecondResolved)
	g.showdown()
}

// discard replaces up to five of the seat's cards from the deck
func (g *Game) discard(seat int, cards []*deck.Card) error {
	if g.done {
		return ErrGameIsOver
	}

	if g.state != StateDiscardFirst && g.state != StateDiscardSecond {
		return ErrNotDiscarding
	}

	if seat != g.discardTurn {
		return ErrNotPlayersTurn
	}

	if len(cards) > handSize {
		return fmt.Errorf("cannot discard more than %d cards", handSize)
	}

	p := g.participants[seat]
	seen := make(map[deck.Card]bool, len(cards))
	for _, card := range cards {
		if !p.hand.HasCard(card) || seen[*card] {
			return ErrCardNotInHand
		}

		seen[*card] = true
	}

	for _, card := range cards {
		p.hand.Discard(card)

		replacement, err := g.deck.Draw()
		if err != nil {
			return err
		}

		p.hand.AddCard(replacement)
	}

	if err := p.evaluate(); err != nil {
		return g.abortRound(err)
	}

	g.log(p.PlayerID, "{} drew %d card(s)", len(cards))

	if g.state == StateDiscardFirst {
		g.discardTurn = 1 - g.firstBettor
		g.setState(StateDiscardSecond)
		return nil
	}

	g.startWagerRound(StateSecondWager)
	return nil
}

// showdown compares the two hands and settles the round
func (g *Game) showdown() {
	g.setState(StateShowdown)
	g.revealed = true

	first, second := g.participants[0], g.participants[1]

	for _, p := range g.participants {
		lm := playable.SimpleLogMessage(p.PlayerID, "{} shows a %s", p.rank)
		lm.Cards = p.hand.Clone()
		g.logChan <- []*playable.LogMessage{lm}
	}

	switch handrank.Compare(first.rank, second.rank) {
	case handrank.FirstWins:
		g.settle(0, false)
	case handrank.SecondWins:
		g.settle(1, false)
	default:
		g.settle(noSeat, true)
	}
}

// settle awards the pot (or rolls it on a draw), runs paybacks,
// recycles the deck, and checks the termination conditions
func (g *Game) settle(winnerSeat int, draw bool) {
	g.setState(StateSettlement)

	if draw {
		g.log(0, "the round is a draw; the pot of ${%d} rolls forward", g.pot)
	} else {
		p := g.participants[winnerSeat]
		p.account.Credit(g.pot)
		g.winner = winnerSeat
		g.log(p.PlayerID, "{} won the ${%d} pot", g.pot)
		g.pot = 0
	}

	for _, p := range g.participants {
		if repaid := p.account.SettlePaybacks(); repaid > 0 {
			g.log(p.PlayerID, "{} repaid %d loan(s)", repaid)
		}
	}

	if err := g.deck.Recycle(g.deck.Drawn()); err != nil {
		// cannot happen while Drawn() is in range
		g.logger.WithError(err).Error("could not recycle the deck")
	}

	g.checkTermination()
}

// checkTermination ends the game on elimination or a bankroll reaching
// the threshold; otherwise the next round waits on a deal trigger
func (g *Game) checkTermination() {
	if g.eliminated != noSeat {
		g.endGame()
		return
	}

	for _, p := range g.participants {
		if p.account.Balance() >= g.options.GameEndThreshold {
			g.log(p.PlayerID, "{} reached ${%d} and wins the game", g.options.GameEndThreshold)
			g.endGame()
			return
		}
	}

	g.firstBettor = 1 - g.firstBettor
	g.roundNo++
	g.wagerRound = nil
	g.setState(StateAwaitDeal)
}

// eliminate records a credit disapproval, which is terminal for the
// whole game, not just the round
func (g *Game) eliminate(seat int) {
	p := g.participants[seat]
	g.eliminated = seat
	g.log(p.PlayerID, "{} is out of credit and leaves the table")

	opponent := 1 - seat
	if g.pot > 0 {
		g.participants[opponent].account.Credit(g.pot)
		g.winner = opponent
		g.log(g.participants[opponent].PlayerID, "{} won the ${%d} pot", g.pot)
		g.pot = 0
	}

	g.endGame()
}

// quit is the player-walks-away transition; it must reach GameOver
// cleanly from any state
func (g *Game) quit(seat int) error {
	if g.done {
		return ErrGameIsOver
	}

	p := g.participants[seat]
	p.folded = true
	g.log(p.PlayerID, "{} left the game")

	opponent := 1 - seat
	if g.pot > 0 {
		g.participants[opponent].account.Credit(g.pot)
		g.winner = opponent
		g.log(g.participants[opponent].PlayerID, "{} won the ${%d} pot", g.pot)
		g.pot = 0
	}

	g.endGame()
	return nil
}

func (g *Game) endGame() {
	g.done = true
	g.wagerRound = nil
	g.setState(StateGameOver)
	g.log(0, "the game is over")
}

// awaiting reports which input the game is suspended on, and for whom.
// An empty kind means the computer will advance the game on its own.
func (g *Game) awaiting() (kind string, seat int) {
	switch g.state {
	case StateAwaitDeal:
		if g.options.AutoPlay {
			return "", noSeat
		}

		return "deal", 0

	case StateFirstWager, StateSecondWager:
		turn := g.wagerRound.Turn()
		if g.participants[turn].computer {
			return "", noSeat
		}

		return "bet", turn

	case StateDiscardFirst, StateDiscardSecond:
		if g.participants[g.discardTurn].computer {
			return "", noSeat
		}

		return "discard", g.discardTurn
	}

	return "", noSeat
}
