package utils

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// lockedSource makes a rand.Source safe for concurrent use
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source64
}

func (s *lockedSource) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Int63()
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Uint64()
}

func (s *lockedSource) Seed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src.Seed(seed)
}

// NewRand returns a goroutine-safe generator. A zero seed uses the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	src := rand.NewSource(seed).(rand.Source64) //nolint:gosec // G404: game logic randomness, not security critical
	return rand.New(&lockedSource{src: src})   //nolint:gosec // G404: game logic randomness, not security critical
}

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(rng *rand.Rand, min, max int) int {
	if min >= max {
		return min
	}
	return rng.Intn(max-min+1) + min
}

// RandomIntN returns a random integer in [min, max)
func RandomIntN(rng *rand.Rand, min, max int) int {
	if min >= max {
		return min
	}
	return rng.Intn(max-min) + min
}

// RandomFloat returns a random float64 in [min, max)
func RandomFloat(rng *rand.Rand, min, max float64) float64 {
	if min >= max {
		return min
	}
	return min + rng.Float64()*(max-min)
}

// Chance reports true with probability p
func Chance(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

// Pick returns a uniformly chosen element; ok is false for an empty slice
func Pick[T any](rng *rand.Rand, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[rng.Intn(len(items))], true
}

// Round rounds half away from zero and returns an int
func Round(v float64) int {
	return int(math.Round(v))
}

// Clamp bounds v to [lo, hi]
func Clamp[T int | int64 | float64](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
