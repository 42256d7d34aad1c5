package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"drawpoker-server/internal/config"
	"drawpoker-server/internal/util"
	"drawpoker-server/pkg/playable"
	"drawpoker-server/pkg/playable/poker/fivedraw"
	"drawpoker-server/pkg/playable/poker/ledger"
)

const humanPlayerID = int64(1)
const computerPlayerID = int64(2)

var name = flag.String("name", "", "your display name")

func main() {
	flag.Parse()
	logrus.SetLevel(logrus.WarnLevel)

	cfg := config.Instance()

	playerName := *name
	if playerName == "" {
		playerName = util.Getenv("USER", "Player")
	}

	game, err := fivedraw.NewGame(logrus.StandardLogger(), []playable.Player{
		fivedraw.SeatedPlayer{ID: humanPlayerID, Name: playerName, Stake: cfg.Game.StartingBankroll},
		fivedraw.SeatedPlayer{ID: computerPlayerID, Name: util.GetRandomName(), Stake: cfg.Game.StartingBankroll},
	}, gameOptions(cfg))
	if err != nil {
		logrus.WithError(err).Fatal("could not create game")
	}

	c := &console{
		game:        game,
		scanner:     bufio.NewScanner(os.Stdin),
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
	}

	c.run()
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

// console drives a single game from stdin. A single goroutine owns the
// game, so no locking is needed.
type console struct {
	game        *fivedraw.Game
	scanner     *bufio.Scanner
	interactive bool
}

func (c *console) run() {
	for {
		c.drainLogs()

		if details, isGameOver := c.game.GetEndOfGameDetails(); isGameOver {
			c.reportGameOver(details)
			return
		}

		state := c.state()
		if state.GameState.Action == computerPlayerID || state.GameState.Awaiting == "" {
			if c.interactive {
				time.Sleep(c.game.Delay())
			}

			if _, err := c.game.Tick(); err != nil {
				logrus.WithError(err).Fatal("could not advance game")
			}

			continue
		}

		if !c.humanTurn(state) {
			return
		}
	}
}

// humanTurn prompts for and performs one action; it returns false when
// stdin is exhausted
func (c *console) humanTurn(state *fivedraw.PlayerState) bool {
	var payload *playable.PayloadIn

	switch state.GameState.Awaiting {
	case "deal":
		c.printBalances(state)
		if !c.prompt("press enter to deal (or \"quit\")") {
			return false
		}

		line := strings.TrimSpace(c.scanner.Text())
		if line == "quit" || line == "q" {
			payload = &playable.PayloadIn{Action: "quit"}
			break
		}

		payload = &playable.PayloadIn{Action: "deal"}

	case "bet":
		c.printHand(state)
		fmt.Printf("pot $%d; $%d to call\n", state.GameState.Pot, state.GameState.CurrentBet)
		if !c.prompt("bet <amount> | call | check | drop | quit") {
			return false
		}

		payload = parseBetCommand(c.scanner.Text())
		if payload == nil {
			fmt.Println("unrecognized command")
			return true
		}

	case "discard":
		c.printHand(state)
		if !c.prompt("card numbers to discard (e.g. \"1 3\"), or enter to stand pat") {
			return false
		}

		indices, err := parseDiscardIndices(c.scanner.Text())
		if err != nil {
			fmt.Println(err)
			return true
		}

		payload = &playable.PayloadIn{
			Action:         "discard",
			AdditionalData: playable.AdditionalData{"cardIndices": indices},
		}

	default:
		logrus.WithField("awaiting", state.GameState.Awaiting).Fatal("unexpected input state")
	}

	if _, _, err := c.game.Action(humanPlayerID, payload); err != nil {
		fmt.Println(err)
	}

	return true
}

func parseBetCommand(line string) *playable.PayloadIn {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return &playable.PayloadIn{Action: "check"}
	}

	switch fields[0] {
	case "bet", "b", "raise", "r":
		if len(fields) != 2 {
			return nil
		}

		amount, err := strconv.Atoi(strings.TrimPrefix(fields[1], "$"))
		if err != nil {
			return nil
		}

		return &playable.PayloadIn{
			Action:         "bet",
			AdditionalData: playable.AdditionalData{"amount": amount},
		}
	case "call", "check", "c":
		return &playable.PayloadIn{Action: "call"}
	case "drop", "fold", "d", "f":
		return &playable.PayloadIn{Action: "drop"}
	case "quit", "q":
		return &playable.PayloadIn{Action: "quit"}
	}

	return nil
}

// parseDiscardIndices converts 1-based card numbers to 0-based indices
func parseDiscardIndices(line string) ([]int, error) {
	fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
	indices := make([]int, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%q is not a card number", field)
		}

		indices = append(indices, n-1)
	}

	return indices, nil
}

func (c *console) state() *fivedraw.PlayerState {
	res, err := c.game.GetPlayerState(humanPlayerID)
	if err != nil {
		logrus.WithError(err).Fatal("could not get player state")
	}

	return res.Data.(*fivedraw.PlayerState)
}

func (c *console) prompt(msg string) bool {
	if c.interactive {
		fmt.Printf("%s > ", msg)
	}

	return c.scanner.Scan()
}

func (c *console) drainLogs() {
	for {
		select {
		case msgs := <-c.game.LogChan():
			for _, msg := range msgs {
				fmt.Printf("* %s\n", c.renderLog(msg))
			}
		default:
			return
		}
	}
}

// renderLog substitutes the {} player placeholder the games log with
func (c *console) renderLog(msg *playable.LogMessage) string {
	if len(msg.PlayerIDs) == 0 {
		return msg.Message
	}

	return strings.ReplaceAll(msg.Message, "{}", c.playerName(msg.PlayerIDs[0]))
}

func (c *console) playerName(playerID int64) string {
	for _, p := range c.state().GameState.Participants {
		if p.PlayerID == playerID {
			return p.Name
		}
	}

	return fmt.Sprintf("player %d", playerID)
}

func (c *console) printHand(state *fivedraw.PlayerState) {
	fmt.Printf("your hand (%s):", state.Participant.HandRank)
	for i, card := range state.Participant.Hand {
		fmt.Printf("  %d:%s", i+1, card)
	}
	fmt.Println()
}

func (c *console) printBalances(state *fivedraw.PlayerState) {
	for _, p := range state.GameState.Participants {
		loans := ""
		if p.Loans > 0 {
			loans = fmt.Sprintf(" (%d loans)", p.Loans)
		}

		fmt.Printf("%s: $%d%s\n", p.Name, p.Balance, loans)
	}
}

func (c *console) reportGameOver(details *playable.GameOverDetails) {
	fmt.Println("game over")
	state := c.state()
	for _, p := range state.GameState.Participants {
		adjustment := details.BalanceAdjustments[p.PlayerID]
		fmt.Printf("%s: $%d (%+d)\n", p.Name, p.Balance, adjustment)
	}
}
