package fivedraw

import (
	"fmt"

	"drawpoker-server/pkg/playable"
	"drawpoker-server/pkg/playable/poker/wager"
)

// Action performs a game action on behalf of the player
func (g *Game) Action(playerID int64, message *playable.PayloadIn) (*playable.Response, bool, error) {
	seat := g.seat(playerID)
	if seat == noSeat {
		return nil, false, fmt.Errorf("player %d is not in this game", playerID)
	}

	switch message.Action {
	case "deal":
		if err := g.dealCards(); err != nil {
			return nil, false, err
		}

		return playable.OK(message.Context), true, nil

	case "bet", "raise":
		amount, ok := message.AdditionalData.GetInt("amount")
		if !ok {
			return nil, false, fmt.Errorf("the %s action requires an amount", message.Action)
		}

		if err := g.offerBet(seat, amount); err != nil {
			return nil, false, err
		}

		return playable.OK(message.Context), true, nil

	case "check", "call":
		if err := g.offerBet(seat, 0); err != nil {
			return nil, false, err
		}

		return playable.OK(message.Context), true, nil

	case "drop", "fold":
		if err := g.offerBet(seat, wager.DropAmount); err != nil {
			return nil, false, err
		}

		return playable.OK(message.Context), true, nil

	case "discard":
		cards := message.Cards
		if indices, ok := message.AdditionalData.GetIntSlice("cardIndices"); ok {
			hand := g.participants[seat].hand
			for _, index := range indices {
				if index < 0 || index >= len(hand) {
					return nil, false, fmt.Errorf("discard index %d is out of range", index)
				}

				cards = append(cards, hand[index])
			}
		}

		if err := g.discard(seat, cards); err != nil {
			return nil, false, err
		}

		return playable.OK(message.Context), true, nil

	case "quit":
		if err := g.quit(seat); err != nil {
			return nil, false, err
		}

		return playable.OK(message.Context), true, nil
	}

	return nil, false, fmt.Errorf("unknown action: %s", message.Action)
}

// GetPlayerState returns the state of the game for the player
func (g *Game) GetPlayerState(playerID int64) (*playable.Response, error) {
	return &playable.Response{
		Key:   "game",
		Value: g.Name(),
		Data:  g.playerStateFor(playerID),
	}, nil
}

// GetEndOfGameDetails returns the details at the end of a game
func (g *Game) GetEndOfGameDetails() (*playable.GameOverDetails, bool) {
	if !g.done {
		return nil, false
	}

	adjustments := make(map[int64]int)
	for _, p := range g.participants {
		adjustments[p.PlayerID] = p.balanceAdjustment()
	}

	return &playable.GameOverDetails{
		BalanceAdjustments: adjustments,
		Log:                g.playerStateFor(0).GameState,
	}, true
}

// Name returns the name of the game
func (g *Game) Name() string {
	return "Five-Card Draw"
}

// LogChan returns a channel that can receive log messages
func (g *Game) LogChan() <-chan []*playable.LogMessage {
	return g.logChan
}
