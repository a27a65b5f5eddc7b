package deck

import (
	"blackjack-cli/internal/rng"
	"errors"
)

// ErrEmptyDeck is an error when Draw() is attempted and there are no more cards
var ErrEmptyDeck = errors.New("deck is empty")

// Ranks is every rank in deck order
var Ranks = []int{Ace, 2, 3, 4, 5, 6, 7, 8, 9, 10, Jack, Queen, King}

// Deck represents a single 52-card playing deck
type Deck struct {
	Cards []*Card `json:"cards"`
	rng   rng.Generator
}

// New returns a new deck of cards that draws its randomness from gen.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New(gen rng.Generator) *Deck {
	d := &Deck{
		rng: gen,
	}

	d.Create()
	return d
}

// Create replaces the contents of the deck with the 52 standard cards
func (d *Deck) Create() {
	cards := make([]*Card, 0, len(Ranks)*len(Suits))
	for _, rank := range Ranks {
		for _, suit := range Suits {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle will shuffle the deck of cards
// If resetFirst is true, the full 52 cards are rebuilt before shuffling, otherwise only the remaining cards are shuffled.
// Each step pulls a uniformly random card from the shrinking pool.
func (d *Deck) Shuffle(resetFirst bool) {
	if resetFirst {
		d.Create()
	}

	pool := make([]*Card, len(d.Cards))
	copy(pool, d.Cards)

	shuffled := make([]*Card, 0, len(pool))
	for len(pool) > 0 {
		i := d.rng.Intn(len(pool))
		shuffled = append(shuffled, pool[i])
		pool = append(pool[:i], pool[i+1:]...)
	}

	d.Cards = shuffled
}

// Draw removes and returns a uniformly random card from the deck
// If there are no more cards, an ErrEmptyDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	if len(d.Cards) <= 0 {
		return nil, ErrEmptyDeck
	}

	i := d.rng.Intn(len(d.Cards))
	card := d.Cards[i]
	d.Cards = append(d.Cards[:i], d.Cards[i+1:]...)

	return card, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
