package blackjack

import (
	"errors"
	"github.com/bmizerany/assert"
	"math"
	"testing"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer("Alice", 2000)
	assert.Equal(t, "Alice", p.Name)
	assert.Equal(t, 2000, p.Bankroll())
	assert.Equal(t, 0, p.Bet())
	assert.Equal(t, 0, len(p.Hand))
	assert.T(t, p.CanBet())
}

func TestPlayer_PlaceBet(t *testing.T) {
	p := NewPlayer("Alice", 2000)

	err := p.PlaceBet(2500)
	assert.T(t, errors.Is(err, ErrInsufficientFunds))
	assert.Equal(t, 2000, p.Bankroll())
	assert.Equal(t, 0, p.Bet())

	err = p.PlaceBet(0)
	assert.T(t, errors.Is(err, ErrInvalidBet))
	err = p.PlaceBet(-100)
	assert.T(t, errors.Is(err, ErrInvalidBet))
	assert.Equal(t, 2000, p.Bankroll())

	assert.Equal(t, nil, p.PlaceBet(2000))
	assert.Equal(t, 0, p.Bankroll())
	assert.Equal(t, 2000, p.Bet())
	assert.T(t, !p.CanBet())

	p = NewPlayer("Bob", 0)
	err = p.PlaceBet(1)
	assert.T(t, errors.Is(err, ErrInsufficientFunds))
}

func TestPlayer_Settle(t *testing.T) {
	tests := []struct {
		outcome  Outcome
		credit   int
		bankroll int
	}{
		{OutcomeWin, 200, 2100},
		{OutcomeDealerBust, 200, 2100},
		{OutcomeNatural, 300, 2200},
		{OutcomePush, 100, 2000},
		{OutcomeLoss, 0, 1900},
		{OutcomeBust, 0, 1900},
	}

	for _, test := range tests {
		p := NewPlayer("Alice", 2000)
		assert.Equal(t, nil, p.PlaceBet(100))
		assert.Equal(t, 1900, p.Bankroll())

		assert.Equal(t, test.credit, p.Settle(test.outcome), test.outcome.String())
		assert.Equal(t, test.bankroll, p.Bankroll(), test.outcome.String())
		assert.Equal(t, 0, p.Bet())
	}
}

func TestPlayer_Reset(t *testing.T) {
	p := NewPlayer("Alice", 2000)
	assert.Equal(t, nil, p.PlaceBet(100))
	p.Hand.AddCard(nil)

	p.Reset()
	assert.Equal(t, 0, p.Bet())
	assert.Equal(t, 0, len(p.Hand))
	assert.Equal(t, 1900, p.Bankroll())
}

func TestPlayer_Refund(t *testing.T) {
	p := NewPlayer("Alice", 2000)
	assert.Equal(t, nil, p.PlaceBet(100))

	assert.Equal(t, 100, p.Refund())
	assert.Equal(t, 2000, p.Bankroll())
	assert.Equal(t, 0, p.Bet())

	assert.Equal(t, 0, p.Refund())
	assert.Equal(t, 2000, p.Bankroll())
}

func TestPlayer_largeAmounts(t *testing.T) {
	p := NewPlayer("Alice", MaxBankroll)
	assert.T(t, errors.Is(p.PlaceBet(MaxBankroll+1), ErrInvalidBet))

	assert.Equal(t, nil, p.PlaceBet(MaxBankroll))
	assert.Equal(t, 3*MaxBankroll, p.Settle(OutcomeNatural))
	assert.Equal(t, 3*MaxBankroll, p.Bankroll())

	assert.Equal(t, nil, p.PlaceBet(MaxBankroll))
	p.Settle(OutcomeNatural)
	assert.Equal(t, math.MaxInt, p.Bankroll())
}
