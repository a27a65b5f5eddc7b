package blackjack

import "fmt"

// Outcome is how a round ended for the player
type Outcome int

// Outcome constants
const (
	OutcomeNatural Outcome = iota + 1
	OutcomeBust
	OutcomeDealerBust
	OutcomeWin
	OutcomeLoss
	OutcomePush
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNatural:
		return "natural"
	case OutcomeBust:
		return "bust"
	case OutcomeDealerBust:
		return "dealer-bust"
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	case OutcomePush:
		return "push"
	}

	panic(fmt.Sprintf("invalid outcome: %d", o))
}

// Multiplier is the gross return on the bet
// The bet was already taken from the bankroll when it was placed, so a push returns 1x.
func (o Outcome) Multiplier() int {
	switch o {
	case OutcomeNatural:
		return 3
	case OutcomeDealerBust, OutcomeWin:
		return 2
	case OutcomePush:
		return 1
	}

	return 0
}

// Message is the line shown to the player when the round ends
func (o Outcome) Message(playerName string) string {
	switch o {
	case OutcomeNatural:
		return "Blackjack!"
	case OutcomeBust:
		return "Bust!"
	case OutcomeDealerBust:
		return "Dealer bust!"
	case OutcomeWin:
		return fmt.Sprintf("%s wins!", playerName)
	case OutcomeLoss:
		return fmt.Sprintf("%s loses!", playerName)
	case OutcomePush:
		return "Push!"
	}

	return o.String()
}

// compareScores decides a round where neither side busted
func compareScores(playerScore, dealerScore int) Outcome {
	switch {
	case playerScore > dealerScore:
		return OutcomeWin
	case playerScore < dealerScore:
		return OutcomeLoss
	}

	return OutcomePush
}
