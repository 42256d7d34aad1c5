package fivedraw

import (
	"drawpoker-server/pkg/deck"
)

type participantJSON struct {
	PlayerID int64     `json:"playerId"`
	Name     string    `json:"name"`
	Computer bool      `json:"computer"`
	Balance  int       `json:"balance"`
	Loans    int       `json:"loans"`
	DidFold  bool      `json:"didFold"`
	Hand     deck.Hand `json:"hand"`
	HandRank string    `json:"handRank"`
}

// GameState is the state of the game
type GameState struct {
	Name         string             `json:"name"`
	State        string             `json:"state"`
	Round        int                `json:"round"`
	Participants []*participantJSON `json:"participants"`
	FirstBettor  int64              `json:"firstBettor"`
	Pot          int                `json:"pot"`
	CurrentBet   int                `json:"currentBet"`
	Ante         int                `json:"ante"`
	Awaiting     string             `json:"awaiting"`
	Action       int64              `json:"action"`
	Winner       int64              `json:"winner"`
}

// PlayerState is the game state plus the viewer's own participant
type PlayerState struct {
	Participant *participantJSON `json:"participant"`
	GameState   *GameState       `json:"gameState"`
}

// playerStateFor builds a snapshot for the given viewer.
// The opponent's cards are masked until the showdown reveals them.
func (g *Game) playerStateFor(playerID int64) *PlayerState {
	viewerSeat := g.seat(playerID)

	reveal := g.revealed || g.state == StateGameOver

	participants := make([]*participantJSON, 2)
	for seat, p := range g.participants {
		pj := &participantJSON{
			PlayerID: p.PlayerID,
			Name:     p.name,
			Computer: p.computer,
			Balance:  p.account.Balance(),
			Loans:    p.account.Loans(),
			DidFold:  p.folded,
		}

		if seat == viewerSeat || reveal {
			pj.Hand = p.hand.Clone()
			if p.rank != nil {
				pj.HandRank = p.rank.String()
			}
		}

		participants[seat] = pj
	}

	awaitingKind, awaitingSeat := g.awaiting()
	action := int64(0)
	if awaitingSeat != noSeat {
		action = g.participants[awaitingSeat].PlayerID
	}

	currentBet := 0
	if g.wagerRound != nil && viewerSeat != noSeat {
		currentBet = g.wagerRound.Outstanding(viewerSeat)
	}

	winner := int64(0)
	if g.winner != noSeat {
		winner = g.participants[g.winner].PlayerID
	}

	gs := &GameState{
		Name:         g.Name(),
		State:        g.state.String(),
		Round:        g.roundNo,
		Participants: participants,
		FirstBettor:  g.participants[g.firstBettor].PlayerID,
		Pot:          g.pot,
		CurrentBet:   currentBet,
		Ante:         g.options.Ante,
		Awaiting:     awaitingKind,
		Action:       action,
		Winner:       winner,
	}

	ps := &PlayerState{GameState: gs}
	if viewerSeat != noSeat {
		ps.Participant = participants[viewerSeat]
	}

	return ps
}
