// Package rng provides the single injectable source of randomness used by
// the planner. Every shuffle and random pick in internal/order and
// internal/variant draws from a Source so that tests (and callers wanting
// reproducible output) can pin a seed.
package rng

import "math/rand"

// Source is the randomness the planner is allowed to consume. It is a thin
// wrapper around *rand.Rand so callers can substitute a deterministic
// implementation without pulling in the full math/rand surface.
type Source interface {
	// Intn returns a non-negative pseudo-random number in [0,n).
	Intn(n int) int
	// Shuffle pseudo-randomizes the order of elements using swap.
	Shuffle(n int, swap func(i, j int))
}

// New returns a Source seeded deterministically from seed. The same seed
// always produces the same sequence of draws, which is what lets
// VariantPlanner be deterministic under a fixed (clips, settings, seed).
func New(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// FisherYates shuffles ids in place using src. It is the one shuffle
// algorithm used throughout the planner (OrderGenerator rules 1 and 2,
// VariantPlanner's shuffle-and-truncate fallback), kept here so every call
// site shares the exact same algorithm and swap semantics.
func FisherYates[T any](items []T, src Source) {
	src.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}
