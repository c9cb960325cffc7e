package enhance

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// NoiseInjector flips randomly chosen pixels of a binary image between its
// two sentinel colours. The random source is seeded once, when the injector
// is built, and is shared by every Inject call. A zero NoiseInjector toggles
// between zero-valued sentinels and seeds itself from the clock on first
// use.
type NoiseInjector struct {
	Sentinels Sentinels

	mu  sync.Mutex
	rng *rand.Rand
}

// NewNoiseInjector returns an injector drawing from a source seeded with seed.
// A zero seed picks one from the wall clock.
func NewNoiseInjector(seed int64, s Sentinels) *NoiseInjector {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &NoiseInjector{
		Sentinels: s,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Inject returns a copy of g where round(Width*Height*percentage/100) pixels,
// drawn uniformly with replacement, have been toggled: a black pixel turns
// white and anything else turns black.
//
// g must only contain the two sentinel colours and percentage must lie in
// [0, 100]; neither is checked.
func (n *NoiseInjector) Inject(g *Grid, percentage float64) *Grid {
	dst := g.Clone()
	if g.Pixels() == 0 {
		return dst
	}

	iterations := int(math.Round(float64(g.Pixels()) * percentage / 100))

	n.mu.Lock()
	defer n.mu.Unlock()
	if n.rng == nil {
		n.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	for range iterations {
		row := n.rng.Intn(g.Height)
		col := n.rng.Intn(g.Width)

		if dst.equal(row, col, n.Sentinels.Black) {
			dst.Set(row, col, n.Sentinels.White[:]...)
		} else {
			dst.Set(row, col, n.Sentinels.Black[:]...)
		}
	}
	return dst
}
