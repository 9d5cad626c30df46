// Package rng provides the seedable randomness source for the Ironmark
// fight engine. Every chance roll, damage spread, and catalog pick in a
// fight flows through a single Source so that a recorded seed replays the
// whole fight byte for byte.
package rng

// Source is the randomness provider for fight resolution.
//
// Implementations are not safe for concurrent use; the engine resolves one
// action at a time and owns its Source exclusively.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int

	// Float64 returns a random float64 in [0.0, 1.0).
	Float64() float64
}

// Chance draws once from src and reports whether the draw landed under p.
// Probabilities at or below 0 never succeed and probabilities at or above 1
// always succeed, without consuming a draw.
//
// Postcondition: Returns true with probability p for p in (0, 1).
func Chance(src Source, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return src.Float64() < p
}

// Between returns a uniform random float64 in [lo, hi).
//
// Precondition: hi >= lo. Panics with "rng: Between called with hi < lo"
// otherwise.
// Postcondition: lo <= result < hi (result == lo when hi == lo).
func Between(src Source, lo, hi float64) float64 {
	if hi < lo {
		panic("rng: Between called with hi < lo")
	}
	if hi == lo {
		return lo
	}
	return lo + src.Float64()*(hi-lo)
}

// Pick returns a uniformly chosen element of items.
//
// Precondition: items is non-empty. Panics with "rng: Pick called with no
// items" otherwise.
func Pick[T any](src Source, items []T) T {
	if len(items) == 0 {
		panic("rng: Pick called with no items")
	}
	return items[src.Intn(len(items))]
}
