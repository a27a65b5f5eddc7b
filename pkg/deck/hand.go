package deck

import (
	"strings"
)

// BlackjackScore is the highest score a hand can have without busting
const BlackjackScore = 21

// Hand represents a collection of cards
type Hand []*Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// Score returns the blackjack value of the hand
// Non-aces are counted first. Each ace then counts 11, unless that would take the
// running total over 21, in which case it counts 1.
func (h Hand) Score() int {
	score := 0
	aces := 0
	for _, c := range h {
		if c.IsAce() {
			aces++
			continue
		}

		score += c.Value()
	}

	for i := 0; i < aces; i++ {
		if score+11 > BlackjackScore {
			score++
		} else {
			score += 11
		}
	}

	return score
}

// IsBust returns true if the score is over 21
func (h Hand) IsBust() bool {
	return h.Score() > BlackjackScore
}

// IsNatural returns true if the hand is an ace and a ten-valued card
func (h Hand) IsNatural() bool {
	if len(h) != 2 {
		return false
	}

	hasAce, hasTen := false, false
	for _, c := range h {
		if c.IsAce() {
			hasAce = true
		} else if c.IsTenValued() {
			hasTen = true
		}
	}

	return hasAce && hasTen
}

// LastCard returns the last card in the hand or nil if the cards are empty
func (h Hand) LastCard() *Card {
	n := len(h)
	if n == 0 {
		return nil
	}

	return h[n-1]
}

// Display returns the cards as they are shown to the player, e.g., [A♠ 10♡]
func (h Hand) Display() string {
	c := make([]string, len(h))
	for i, card := range h {
		c[i] = card.String()
	}

	return "[" + strings.Join(c, " ") + "]"
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}

func (h Hand) String() string {
	return CardsToString(h)
}
