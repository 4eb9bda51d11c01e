package weather

import (
	"math/rand/v2"
	"sync"
)

// RandomSource draws uniform integers in [0, n). *rand.Rand satisfies it.
type RandomSource interface {
	IntN(n int) int
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int {
	return rand.IntN(n)
}

type lockedRandom struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (l *lockedRandom) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.IntN(n)
}

// NewRandomSource returns a goroutine-safe source. A zero seed uses the runtime's
// randomly seeded generator; any other seed gives a reproducible sequence.
func NewRandomSource(seed uint64) RandomSource {
	if seed == 0 {
		return globalRandom{}
	}
	return &lockedRandom{rng: rand.New(rand.NewPCG(seed, seed))}
}
