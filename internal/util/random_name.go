package util

import (
	"blackjack-cli/internal/rng"
	"fmt"
)

var adjectives = []string{
	"Lucky", "Bold", "Steady", "Quick", "Cool", "Sly", "Sharp", "Lonesome", "Gracious", "Happy", "Funny",
	"Red", "Blue", "Green", "Golden", "Silver", "Fuzzy", "Smiling", "Tall", "Grand", "Dapper", "Prime",
}

var animals = []string{
	"Dog", "Cat", "Otter", "Fox", "Shark", "Hippo", "Giraffe", "Lion", "Tiger", "Bear", "Muskrat",
	"Dolphin", "Porcupine", "Hedgehog", "Lizard", "Chipmunk", "Eagle", "Wolf", "Panda", "Okapi",
}

// GetRandomName returns a random name by combining an adjective with an animal
func GetRandomName(gen rng.Generator) string {
	adjectivesIndex := gen.Intn(len(adjectives))
	animalsIndex := gen.Intn(len(animals))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], animals[animalsIndex])
}
