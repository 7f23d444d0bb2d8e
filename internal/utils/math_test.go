package utils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRandomInt tests the inclusive integer generator
func TestRandomInt(t *testing.T) {
	rng := NewRand(42)

	t.Run("returns value within range", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			result := RandomInt(rng, 1, 10)
			assert.GreaterOrEqual(t, result, 1)
			assert.LessOrEqual(t, result, 10)
		}
	})

	t.Run("handles min equals max", func(t *testing.T) {
		assert.Equal(t, 42, RandomInt(rng, 42, 42))
	})

	t.Run("handles inverted range gracefully", func(t *testing.T) {
		assert.Equal(t, 10, RandomInt(rng, 10, 5))
	})

	t.Run("handles negative ranges", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			result := RandomInt(rng, -10, -1)
			assert.GreaterOrEqual(t, result, -10)
			assert.LessOrEqual(t, result, -1)
		}
	})

	t.Run("reaches both ends", func(t *testing.T) {
		seen := make(map[int]bool)
		for i := 0; i < 500; i++ {
			seen[RandomInt(rng, 1, 3)] = true
		}
		assert.True(t, seen[1])
		assert.True(t, seen[3])
	})
}

func TestRandomIntN_ExcludesUpperBound(t *testing.T) {
	rng := NewRand(7)
	for i := 0; i < 500; i++ {
		v := RandomIntN(rng, 10, 12)
		assert.GreaterOrEqual(t, v, 10)
		assert.Less(t, v, 12)
	}
	assert.Equal(t, 5, RandomIntN(rng, 5, 5))
}

func TestRandomFloat(t *testing.T) {
	rng := NewRand(3)
	for i := 0; i < 100; i++ {
		v := RandomFloat(rng, 0.6, 0.8)
		assert.GreaterOrEqual(t, v, 0.6)
		assert.Less(t, v, 0.8)
	}
	assert.Equal(t, 2.0, RandomFloat(rng, 2.0, 2.0))
}

func TestNewRand_SameSeedSameSequence(t *testing.T) {
	a := NewRand(99)
	b := NewRand(99)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestNewRand_ConcurrentUse(t *testing.T) {
	rng := NewRand(1)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				_ = RandomInt(rng, 1, 20)
			}
		}()
	}
	wg.Wait()
}

func TestChanceAndPick(t *testing.T) {
	rng := NewRand(5)

	assert.False(t, Chance(rng, 0))
	assert.True(t, Chance(rng, 1))

	_, ok := Pick[int](rng, nil)
	assert.False(t, ok)

	v, ok := Pick(rng, []string{"only"})
	assert.True(t, ok)
	assert.Equal(t, "only", v)
}

func TestClampAndRound(t *testing.T) {
	assert.Equal(t, 5, Clamp(9, 0, 5))
	assert.Equal(t, 0, Clamp(-3, 0, 5))
	assert.Equal(t, 0.75, Clamp(0.2, 0.75, 10))
	assert.Equal(t, 40, Round(39.5))
	assert.Equal(t, 2, Round(2.4))
}
