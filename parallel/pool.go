package parallel

import (
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

type (
	WorkerFunc func(func())
	WaitFunc   func(done bool)
)

// Pool runs submitted work on at most Size goroutines. Do blocks while every
// worker is busy. A single worker pool runs work inline.
type Pool struct {
	Size int
	Do   WorkerFunc
	Wait WaitFunc

	group  errgroup.Group
	mu     sync.Mutex
	closed bool
}

func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{Size: numWorkers}
	if numWorkers > 1 {
		pool.group.SetLimit(numWorkers)
	}

	pool.Do = func(f func()) {
		pool.mu.Lock()
		closed := pool.closed
		pool.mu.Unlock()
		if closed {
			panic("parallel: Do called on a finished pool")
		}

		if numWorkers == 1 {
			f()
			return
		}
		pool.group.Go(func() error {
			f()
			return nil
		})
	}
	// Wait(true) also refuses further work.
	pool.Wait = func(done bool) {
		if done {
			pool.mu.Lock()
			pool.closed = true
			pool.mu.Unlock()
		}
		_ = pool.group.Wait()
	}

	return pool
}
