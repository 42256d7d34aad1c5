package main

import (
	"flag"

	"github.com/sirupsen/logrus"

	"drawpoker-server/internal/config"
	"drawpoker-server/pkg/playable"
	"drawpoker-server/pkg/playable/poker/fivedraw"
	"drawpoker-server/pkg/playable/poker/ledger"
)

var games = flag.Int("n", 100, "number of games to simulate")

func main() {
	flag.Parse()
	logrus.SetLevel(logrus.WarnLevel)

	cfg := config.Instance()

	options := fivedraw.Options{
		Ante:       cfg.Game.Ante,
		BetSteps:   cfg.Game.BetSteps,
		RaiseLimit: cfg.Game.RaiseLimit,
		Terms: ledger.Terms{
			LoanAmount:       cfg.Game.LoanAmount,
			LoanLimit:        cfg.Game.LoanLimit,
			PaybackThreshold: cfg.Game.PaybackThreshold,
		},
		GameEndThreshold: cfg.Game.GameEndThreshold,
		AutoPlay:         true,
	}

	wins := make(map[int64]int)
	totalAdjustment := make(map[int64]int)

	for i := 0; i < *games; i++ {
		details := runGame(options, cfg.Game.StartingBankroll)

		best := int64(0)
		for playerID, adjustment := range details.BalanceAdjustments {
			totalAdjustment[playerID] += adjustment
			if best == 0 || adjustment > details.BalanceAdjustments[best] {
				best = playerID
			}
		}

		wins[best]++
	}

	logrus.SetLevel(logrus.InfoLevel)
	for _, playerID := range []int64{1, 2} {
		logrus.WithFields(logrus.Fields{
			"player":          playerID,
			"wins":            wins[playerID],
			"totalAdjustment": totalAdjustment[playerID],
		}).Info("simulation results")
	}
}

func runGame(options fivedraw.Options, stake int) *playable.GameOverDetails {
	game, err := fivedraw.NewGame(logrus.StandardLogger(), []playable.Player{
		fivedraw.SeatedPlayer{ID: 1, Name: "Seat 1", Stake: stake},
		fivedraw.SeatedPlayer{ID: 2, Name: "Seat 2", Stake: stake},
	}, options)
	if err != nil {
		logrus.WithError(err).Fatal("could not create game")
	}

	for {
		drainLogs(game)

		if details, isGameOver := game.GetEndOfGameDetails(); isGameOver {
			return details
		}

		if _, err := game.Tick(); err != nil {
			logrus.WithError(err).Fatal("could not advance game")
		}
	}
}

// drainLogs keeps the buffered log channel from filling up
func drainLogs(game *fivedraw.Game) {
	for {
		select {
		case <-game.LogChan():
		default:
			return
		}
	}
}
