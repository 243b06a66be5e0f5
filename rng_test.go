package mapgen

import "math/rand"

// newTestRNG returns a seeded *rand.Rand, which satisfies the RNG
// interface, for deterministic test fixtures.
func newTestRNG(seed int64) RNG {
	return rand.New(rand.NewSource(seed))
}
