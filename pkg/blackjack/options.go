package blackjack

// Options configures a game
type Options struct {
	StartingBankroll int
	DealerName       string
}

// DefaultOptions returns the default options for a game
func DefaultOptions() Options {
	return Options{
		StartingBankroll: 2000,
		DealerName:       "Dealer",
	}
}
