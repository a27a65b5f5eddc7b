package blackjack

import "blackjack-cli/pkg/deck"

// dealerStandsOn is the score the dealer stops drawing at, soft or hard
const dealerStandsOn = 17

// Dealer is the house
type Dealer struct {
	Name string    `json:"name"`
	Hand deck.Hand `json:"hand"`
}

// NewDealer returns a new dealer
func NewDealer(name string) *Dealer {
	return &Dealer{
		Name: name,
		Hand: make(deck.Hand, 0, 5),
	}
}

// ShouldHit returns true while the dealer is below 17
func (d *Dealer) ShouldHit() bool {
	return d.Hand.Score() < dealerStandsOn
}

// Reset clears the hand for the next round
func (d *Dealer) Reset() {
	d.Hand = make(deck.Hand, 0, 5)
}
