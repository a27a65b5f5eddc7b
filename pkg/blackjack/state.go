package blackjack

// RoundState is where the engine is within a round
type RoundState string

// RoundState constants
const (
	// StateBetting is waiting on a valid bet from the player
	StateBetting RoundState = "betting"

	// StateDealing is shuffling a fresh deck and dealing two cards each
	StateDealing RoundState = "dealing"

	// StateNaturalCheck checks the player for a natural blackjack
	StateNaturalCheck RoundState = "natural-check"

	// StatePlayerTurn is waiting on the player to hit or stay
	StatePlayerTurn RoundState = "player-turn"

	// StateDealerTurn means the dealer is drawing to 17
	StateDealerTurn RoundState = "dealer-turn"

	// StateSettlement means the outcome is known and the bankroll is being paid out
	StateSettlement RoundState = "settlement"

	// StateFinished means the session is over
	StateFinished RoundState = "finished"
)
