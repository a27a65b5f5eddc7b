package blackjack

import "errors"

// ErrInvalidBet is an error when a bet is not a positive whole number
var ErrInvalidBet = errors.New("invalid bet")

// ErrInsufficientFunds is an error when a bet exceeds the bankroll, or the bankroll is empty
var ErrInsufficientFunds = errors.New("insufficient funds")
