package rng

// Generator provides a simple random number
// Every shuffle and draw in a game goes through a single Generator, so tests can swap in a Seeded one.
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}
