package fivedraw

import "errors"

// ErrNotPlayersTurn is returned when it's not the player's turn
var ErrNotPlayersTurn = errors.New("not player's turn")

// ErrNotAwaitingDeal happens when a deal is requested mid-round
var ErrNotAwaitingDeal = errors.New("the game is not waiting on a deal")

// ErrNotWagering happens when a bet arrives outside a wagering state
var ErrNotWagering = errors.New("the game is not in a betting round")

// ErrNotDiscarding happens when a discard arrives outside a discard state
var ErrNotDiscarding = errors.New("the game is not in the discard round")

// ErrCardNotInHand happens when the player discards a card they don't hold
var ErrCardNotInHand = errors.New("card is not in player's hand")

// ErrGameIsOver is an error when an action is attempted on an ended game
var ErrGameIsOver = errors.New("game is over")
