package agents

import (
	"math/rand/v2"
	"sync"
	"time"
)

// RandomSource is the only source of randomness used by the generators.
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
}

type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSource returns a goroutine-safe source seeded with seed,
// or with the current time when seed is zero
func NewRandomSource(seed uint64) RandomSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &lockedSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// between returns a value in [lo, hi]
func between(rng RandomSource, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

func choice(rng RandomSource, items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[rng.IntN(len(items))]
}

// shuffled returns a shuffled copy of items
func shuffled(rng RandomSource, items []string) []string {
	out := append([]string(nil), items...)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// sample picks k distinct entries without replacement
func sample(rng RandomSource, items []string, k int) []string {
	out := shuffled(rng, items)
	if k < len(out) {
		out = out[:k]
	}
	return out
}
