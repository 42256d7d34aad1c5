package fivedraw

import (
	"drawpoker-server/pkg/deck"
	"drawpoker-server/pkg/playable/poker/handrank"
	"drawpoker-server/pkg/playable/poker/ledger"
)

// Participant is one seat at a game of five-card draw.
// Both seats run identical engine logic; only the source of bet and
// discard decisions differs.
type Participant struct {
	PlayerID int64
	name     string
	computer bool
	account  *ledger.Account
	hand     deck.Hand
	rank     *handrank.HandRank
	folded   bool

	// stake is the balance the participant sat down with
	stake int
}

func newParticipant(id int64, name string, stake int, computer bool, terms ledger.Terms) *Participant {
	return &Participant{
		PlayerID: id,
		name:     name,
		computer: computer,
		account:  ledger.NewAccount(name, stake, terms),
		hand:     make(deck.Hand, 0, 5),
		stake:    stake,
	}
}

// Balance returns the participant's current bankroll
func (p *Participant) Balance() int {
	return p.account.Balance()
}

// balanceAdjustment is the net won or lost since the game started
func (p *Participant) balanceAdjustment() int {
	return p.account.Balance() - p.stake
}

// resetForRound clears per-round state
func (p *Participant) resetForRound() {
	p.hand = make(deck.Hand, 0, 5)
	p.rank = nil
	p.folded = false
}

// evaluate re-ranks the participant's hand.
// An evaluation error here means the deck invariant was violated and
// the round cannot continue.
func (p *Participant) evaluate() error {
	p.hand.Sort()

	rank, err := handrank.Evaluate(p.hand)
	if err != nil {
		return err
	}

	p.rank = rank
	return nil
}
