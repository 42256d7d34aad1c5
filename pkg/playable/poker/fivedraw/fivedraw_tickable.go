package fivedraw

import (
	"time"

	"drawpoker-server/pkg/playable/poker/wager"
)

// Delay specifies how frequently a Tick() should happen
func (g *Game) Delay() time.Duration {
	return time.Second
}

// Tick advances the game wherever the next decision belongs to the
// computer. The host keeps calling it; a human decision point leaves
// the state untouched until the corresponding Action arrives.
func (g *Game) Tick() (bool, error) {
	if g.done {
		return false, nil
	}

	switch g.state {
	case StateAwaitDeal:
		if !g.options.AutoPlay {
			return false, nil
		}

		return true, g.dealCards()

	case StateFirstWager, StateSecondWager:
		turn := g.wagerRound.Turn()
		p := g.participants[turn]
		if !p.computer {
			return false, nil
		}

		amount := g.strategy.ChooseBet(wager.View{
			Category:    p.rank.Category,
			Pot:         g.pot,
			Outstanding: g.wagerRound.Outstanding(turn),
			Opening:     g.wagerRound.Outstanding(turn) == 0 && g.wagerRound.Raises() == 0,
			FirstBettor: turn == g.firstBettor,
			InDebt:      p.account.InDebt(),
			Ante:        g.options.Ante,
		})

		return true, g.offerBet(turn, amount)

	case StateDiscardFirst, StateDiscardSecond:
		p := g.participants[g.discardTurn]
		if !p.computer {
			return false, nil
		}

		return true, g.discard(g.discardTurn, chooseDiscards(p.hand, p.rank))
	}

	return false, nil
}
