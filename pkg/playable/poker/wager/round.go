package wager

import (
	"errors"
	"fmt"

	"drawpoker-server/pkg/playable/poker/ledger"
)

// DropAmount is the sentinel a bettor offers to drop out of the round
const DropAmount = -1

// DefaultBetSteps is the conventional discrete set of wager amounts
var DefaultBetSteps = []int{0, 5, 10, 15, 20, 25}

// DefaultRaiseLimit is how many raises are allowed per betting round
const DefaultRaiseLimit = 3

// ErrNotPlayersTurn is returned when it's not the player's turn
var ErrNotPlayersTurn = errors.New("not player's turn")

// ErrRoundOver is an error when an action is offered on a finished round
var ErrRoundOver = errors.New("the betting round is over")

// state of a betting round
type state int

const (
	// stateBet is the first action of the round, before any bet is outstanding
	stateBet state = iota
	// stateRaise covers subsequent actions while a bet is outstanding
	stateRaise
	stateCalled
	stateDropped
)

// ResultKind classifies the outcome of a single offered action
type ResultKind int

// result kinds
const (
	// Continue means the round goes on and it's the other player's turn
	Continue ResultKind = iota
	// Called means the round terminated with matched bets
	Called
	// Dropped means the acting seat dropped; the opponent wins without a showdown
	Dropped
	// Eliminated means the acting seat was disapproved for credit,
	// which is terminal for the game, not just the round
	Eliminated
)

// Result describes what one offered action did
type Result struct {
	Kind         ResultKind
	Seat         int
	Committed    int
	ForcedCall   bool
	LoansGranted int
	LoansRepaid  int
}

// Round is a turn-based betting round between two seats.
// Amounts come from a fixed discrete set; zero means check or call
// depending on whether a bet is outstanding, and DropAmount drops.
type Round struct {
	accounts    [2]*ledger.Account
	steps       map[int]bool
	firstBettor int
	turn        int
	raiseLimit  int
	raises      int
	committed   [2]int
	pot         int
	state       state
	checked     bool
}

// NewRound starts a betting round with the given seat acting first
func NewRound(accounts [2]*ledger.Account, firstBettor int, raiseLimit int, betSteps []int) *Round {
	if len(betSteps) == 0 {
		betSteps = DefaultBetSteps
	}

	steps := make(map[int]bool, len(betSteps))
	for _, s := range betSteps {
		steps[s] = true
	}

	return &Round{
		accounts:    accounts,
		steps:       steps,
		firstBettor: firstBettor,
		turn:        firstBettor,
		raiseLimit:  raiseLimit,
	}
}

// Turn returns the seat whose action is expected
func (r *Round) Turn() int {
	return r.turn
}

// Outstanding returns how much the seat owes to match the current bet
func (r *Round) Outstanding(seat int) int {
	other := r.committed[1-seat]
	if other > r.committed[seat] {
		return other - r.committed[seat]
	}

	return 0
}

// Pot returns the total committed this round
func (r *Round) Pot() int {
	return r.pot
}

// Raises returns the number of raises so far
func (r *Round) Raises() int {
	return r.raises
}

// RaiseCapped returns true once further raises will be resolved as calls
func (r *Round) RaiseCapped() bool {
	return r.raises >= r.raiseLimit
}

// Done returns true once the round has terminated
func (r *Round) Done() bool {
	return r.state == stateCalled || r.state == stateDropped
}

// Dropped returns true if the round ended with a drop
func (r *Round) Dropped() bool {
	return r.state == stateDropped
}

// Offer submits the seat's chosen amount.
// A positive amount is a bet or raise beyond the matched portion; zero
// checks when nothing is outstanding and calls otherwise; DropAmount
// drops. Credit disapproval surfaces as an Eliminated result, never as
// an error.
func (r *Round) Offer(seat, amount int) (*Result, error) {
	if r.Done() {
		return nil, ErrRoundOver
	}

	if seat != r.turn {
		return nil, ErrNotPlayersTurn
	}

	if amount == DropAmount {
		r.state = stateDropped
		return &Result{Kind: Dropped, Seat: seat}, nil
	}

	if !r.steps[amount] {
		return nil, fmt.Errorf("bet amount ${%d} is not allowed", amount)
	}

	forced := false
	if amount > 0 && r.RaiseCapped() {
		// the raise limit resolves further raises as calls
		amount = 0
		forced = true
	}

	owed := r.Outstanding(seat)
	if amount == 0 && owed == 0 {
		if r.state == stateBet && !r.checked {
			// opening check, play passes
			r.checked = true
			r.turn = 1 - r.turn
			return &Result{Kind: Continue, Seat: seat}, nil
		}

		r.state = stateCalled
		return &Result{Kind: Called, Seat: seat, ForcedCall: forced}, nil
	}

	commit := owed + amount

	acct := r.accounts[seat]
	repaid := acct.SettlePaybacks()

	granted, err := acct.CheckFunds(commit)
	if err != nil {
		r.state = stateDropped
		return &Result{Kind: Eliminated, Seat: seat, LoansGranted: granted, LoansRepaid: repaid}, nil
	}

	acct.Debit(commit)
	r.committed[seat] += commit
	r.pot += commit

	res := &Result{
		Seat:         seat,
		Committed:    commit,
		ForcedCall:   forced,
		LoansGranted: granted,
		LoansRepaid:  repaid,
	}

	if amount == 0 {
		r.state = stateCalled
		res.Kind = Called
		return res, nil
	}

	if r.state == stateBet {
		r.state = stateRaise
	} else {
		r.raises++
	}

	r.turn = 1 - r.turn
	res.Kind = Continue
	return res, nil
}
