package rng

import "math/rand"

// Seeded is a deterministic generator for tests and replayable shuffles
type Seeded struct {
	r *rand.Rand
}

// NewSeeded returns a generator backed by math/rand with the given seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{r: rand.New(rand.NewSource(seed))}
}

// Intn returns a random number from 0 < n
func (s *Seeded) Intn(n int) int {
	return s.r.Intn(n)
}
