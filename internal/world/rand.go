package world

import (
	"math/rand"
	"time"
)

// RandFunc chooses one of n ordered candidates and returns its index.
//
// It is the only source of randomness during generation; a deterministic
// RandFunc yields a reproducible cave. Results outside [0, n) are wrapped
// into range, so a selector that always answers 1 picks the second candidate
// when there is one and the first otherwise.
type RandFunc func(n int) int

// SeededRandFunc returns a RandFunc backed by a math/rand source.
// A seed of 0 means a seed is derived from the current time.
func SeededRandFunc(seed int64) RandFunc {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	return func(n int) int {
		return rng.Intn(n)
	}
}

// choose asks rf for an index in [0, n). It returns 0 when n <= 0.
func (rf RandFunc) choose(n int) int {
	if n <= 0 {
		return 0
	}
	i := rf(n) % n
	if i < 0 {
		i += n
	}
	return i
}

// Pick returns the candidate chosen by rf. candidates must not be empty.
func Pick[T any](rf RandFunc, candidates []T) T {
	return candidates[rf.choose(len(candidates))]
}
