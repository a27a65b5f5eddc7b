package blackjack

import (
	"blackjack-cli/pkg/deck"
	"fmt"
	"math"
)

// MaxBankroll is the largest starting bankroll, and the largest single bet
// The best payout is 3x the bet, so a bet up to this size can be credited without overflowing.
const MaxBankroll = math.MaxInt / 3

// Player is the person playing against the house
type Player struct {
	Name string    `json:"name"`
	Hand deck.Hand `json:"hand"`

	bankroll int
	bet      int
}

// NewPlayer returns a new player with a starting bankroll
func NewPlayer(name string, bankroll int) *Player {
	return &Player{
		Name:     name,
		Hand:     make(deck.Hand, 0, 5),
		bankroll: bankroll,
	}
}

// Bankroll returns the money the player has available
func (p *Player) Bankroll() int {
	return p.bankroll
}

// Bet returns the current wager
func (p *Player) Bet() int {
	return p.bet
}

// CanBet returns true if the player has any money left to wager
func (p *Player) CanBet() bool {
	return p.bankroll > 0
}

// PlaceBet moves amount from the bankroll into the current bet
// On error the bankroll and bet are left alone.
func (p *Player) PlaceBet(amount int) error {
	if amount <= 0 {
		return fmt.Errorf("%w: bet must be greater than zero", ErrInvalidBet)
	}

	if amount > MaxBankroll {
		return fmt.Errorf("%w: bet must be <= %d", ErrInvalidBet, MaxBankroll)
	}

	if amount > p.bankroll {
		return fmt.Errorf("%w: bet of %d exceeds bankroll of %d", ErrInsufficientFunds, amount, p.bankroll)
	}

	p.bankroll -= amount
	p.bet = amount
	return nil
}

// Settle credits the bankroll with the gross return for the outcome and returns the amount credited
// The bet is cleared afterwards.
func (p *Player) Settle(outcome Outcome) int {
	credit := p.bet * outcome.Multiplier()
	p.addToBankroll(credit)
	p.bet = 0

	return credit
}

// Refund returns the current bet to the bankroll and returns the amount refunded
func (p *Player) Refund() int {
	return p.Settle(OutcomePush)
}

// addToBankroll adds to the bankroll, capping at math.MaxInt
func (p *Player) addToBankroll(amount int) {
	if amount > math.MaxInt-p.bankroll {
		p.bankroll = math.MaxInt
		return
	}

	p.bankroll += amount
}

// Reset clears the bet and hand for the next round
func (p *Player) Reset() {
	p.bet = 0
	p.Hand = make(deck.Hand, 0, 5)
}
