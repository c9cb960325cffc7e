package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPool(t *testing.T) {
	for _, workers := range []int{0, 1, 4} {
		pool := Start(workers)
		assert.Positive(t, pool.Size)

		var n, running, peak atomic.Int64
		for range 50 {
			pool.Do(func() {
				cur := running.Add(1)
				for {
					p := peak.Load()
					if cur <= p || peak.CompareAndSwap(p, cur) {
						break
					}
				}
				n.Add(1)
				running.Add(-1)
			})
		}
		pool.Wait(false)
		assert.Equal(t, int64(50), n.Load(), "workers %d", workers)
		assert.LessOrEqual(t, peak.Load(), int64(pool.Size))

		pool.Do(func() { n.Add(1) })
		pool.Wait(true)
		assert.Equal(t, int64(51), n.Load())
	}
}

func TestPool_DoneRefusesWork(t *testing.T) {
	for _, workers := range []int{1, 2} {
		pool := Start(workers)
		pool.Wait(true)
		assert.Panics(t, func() { pool.Do(func() {}) }, "workers %d", workers)
	}
}
