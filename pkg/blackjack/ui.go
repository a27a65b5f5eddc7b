package blackjack

import "blackjack-cli/pkg/deck"

// UI is everything the engine needs from whoever is sitting at the table
// Prompts block until the player answers. An error from a prompt ends the session.
type UI interface {
	PromptName() (string, error)

	// PromptBetAmount asks for a wager. Returning an error wrapping ErrInvalidBet causes a re-prompt.
	PromptBetAmount(bankroll int) (int, error)

	PromptHitOrStay() (Action, error)
	PromptPlayAgain() (bool, error)
	Render(event Event)
}

// Event is something for the UI to display
type Event interface {
	EventName() string
}

// Dealing is sent once the cards are out
type Dealing struct{}

// EventName implements Event
func (Dealing) EventName() string { return "dealing" }

// DealerHiddenHand shows the dealer's hand with the first card face down
type DealerHiddenHand struct {
	Name    string
	Visible deck.Hand
}

// EventName implements Event
func (DealerHiddenHand) EventName() string { return "dealer-hidden-hand" }

// DealerFullHand shows the dealer's whole hand
// Drew is the card just drawn, or nil for the initial reveal
type DealerFullHand struct {
	Name  string
	Hand  deck.Hand
	Score int
	Drew  *deck.Card
}

// EventName implements Event
func (DealerFullHand) EventName() string { return "dealer-full-hand" }

// PlayerHand shows the player's hand along with the money on the table
type PlayerHand struct {
	Name     string
	Hand     deck.Hand
	Score    int
	Bankroll int
	Bet      int
}

// EventName implements Event
func (PlayerHand) EventName() string { return "player-hand" }

// OutcomeMessage announces how the round ended
type OutcomeMessage struct {
	Outcome Outcome
	Message string
}

// EventName implements Event
func (OutcomeMessage) EventName() string { return "outcome" }

// BankrollUpdate shows the player's current bankroll
type BankrollUpdate struct {
	Bankroll int
}

// EventName implements Event
func (BankrollUpdate) EventName() string { return "bankroll-update" }

// Notice tells the player why their input was rejected, or that the session is ending
type Notice struct {
	Message string
}

// EventName implements Event
func (Notice) EventName() string { return "notice" }
