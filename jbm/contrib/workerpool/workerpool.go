// Copyright 2025 go-jbm Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs bulk evaluations of the scalar functions on a fixed
// set of goroutines. A Pool is created once and reused for every batch, so
// splitting a slice over the workers costs no goroutine spawns.
//
// Results travel back by return value (Map) or through disjoint output
// ranges (ParallelFor); the pool itself holds no result state.
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	maxErr := workerpool.Map(pool, len(xs), func(start, end int) float64 {
//	    return worstError(xs[start:end])
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of worker goroutines fed through a buffered channel.
type Pool struct {
	numWorkers int
	tasks      chan task
	// mu is held for reading while a batch is queued and for writing by
	// Close, so the channel is never closed under a pending send.
	mu     sync.RWMutex
	closed bool
}

type task struct {
	run  func()
	done *sync.WaitGroup
}

// New starts numWorkers workers, or GOMAXPROCS workers if numWorkers <= 0.
// They run until Close.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		tasks:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.loop()
	}
	return p
}

func (p *Pool) loop() {
	for t := range p.tasks {
		t.run()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers once queued work has drained. It is safe to call
// more than once and concurrently with running batches; calls made after
// Close run on the caller's goroutine.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.tasks)
	}
}

// split returns the chunk length and the number of non-empty chunks used to
// cover [0, n) with at most workers contiguous ranges.
func split(n, workers int) (size, count int) {
	workers = min(workers, n)
	size = (n + workers - 1) / workers
	count = (n + size - 1) / size
	return size, count
}

// run queues one task per chunk and waits for all of them. On a closed pool
// the chunks run in order on the caller's goroutine.
func (p *Pool) run(count int, fn func(chunk int)) {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		for c := range count {
			fn(c)
		}
		return
	}
	var wg sync.WaitGroup
	wg.Add(count)
	for c := range count {
		p.tasks <- task{run: func() { fn(c) }, done: &wg}
	}
	p.mu.RUnlock()
	wg.Wait()
}

// ParallelFor calls fn on contiguous ranges [start, end) that together cover
// [0, n), at most one range per worker, and returns when all have finished.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	size, count := split(n, p.numWorkers)
	if count == 1 {
		fn(0, n)
		return
	}
	p.run(count, func(c int) {
		start := c * size
		fn(start, min(start+size, n))
	})
}

// ParallelForAtomic calls fn(i) for every i in [0, n). Workers claim indices
// one at a time from a shared counter, which balances uneven per-item cost.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	workers := min(p.numWorkers, n)
	if workers == 1 {
		for i := range n {
			fn(i)
		}
		return
	}
	var next atomic.Int64
	p.run(workers, func(int) {
		for {
			i := int(next.Add(1)) - 1
			if i >= n {
				return
			}
			fn(i)
		}
	})
}

// Map splits [0, n) the way ParallelFor does and returns fn's result for each
// range, in range order. The split depends only on n and NumWorkers, so the
// same inputs give the same slice of results.
func Map[R any](p *Pool, n int, fn func(start, end int) R) []R {
	if n <= 0 {
		return nil
	}
	size, count := split(n, p.numWorkers)
	out := make([]R, count)
	p.run(count, func(c int) {
		start := c * size
		out[c] = fn(start, min(start+size, n))
	})
	return out
}
