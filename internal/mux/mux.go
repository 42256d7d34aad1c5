package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"

	"drawpoker-server/internal/config"
	"drawpoker-server/pkg/playable/poker/fivedraw"
	"drawpoker-server/pkg/playable/poker/ledger"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	options fivedraw.Options
	stake   int
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	cfg := config.Instance()

	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		options: gameOptions(cfg),
		stake:   cfg.Game.StartingBankroll,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/game").Handler(this.getGameWS())

	return this
}

func gameOptions(cfg config.Config) fivedraw.Options {
	return fivedraw.Options{
		Ante:       cfg.Game.Ante,
		BetSteps:   cfg.Game.BetSteps,
		RaiseLimit: cfg.Game.RaiseLimit,
		Terms: ledger.Terms{
			LoanAmount:       cfg.Game.LoanAmount,
			LoanLimit:        cfg.Game.LoanLimit,
			PaybackThreshold: cfg.Game.PaybackThreshold,
		},
		GameEndThreshold: cfg.Game.GameEndThreshold,
	}
}
