package rng

// Generator is the randomness seam for shuffling and the computer
// strategy; tests substitute a deterministic implementation
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}
