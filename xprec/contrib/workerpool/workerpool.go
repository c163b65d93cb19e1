// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package workerpool runs sweeps over an index range on a fixed set of
// goroutines. It backs the identity checks of cmd/lgamma, where the cost of
// one sample depends on which approximation covers it.
//
// Example:
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//
//	residuals := workerpool.Map(pool, len(xs), func(i int) float64 {
//	    return check(xs[i])
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// DefaultBatch is the number of indices a worker claims at a time in
// ParallelForAtomic when the caller passes batch <= 0.
const DefaultBatch = 16

// Pool is a set of persistent workers shared by successive sweeps.
type Pool struct {
	workers int
	jobs    chan job

	// mu is held for reading while a sweep queues jobs and for writing by
	// Close, so jobs is never sent on after it is closed.
	mu     sync.RWMutex
	closed atomic.Bool
}

type job struct {
	run  func()
	done *sync.WaitGroup
}

// New starts a pool of n workers. If n <= 0 it uses GOMAXPROCS.
func New(n int) *Pool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: n,
		jobs:    make(chan job, n),
	}
	for range n {
		go p.loop()
	}
	return p
}

func (p *Pool) loop() {
	for j := range p.jobs {
		j.run()
		j.done.Done()
	}
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// Close stops the workers once queued sweeps finish. It is safe to call more
// than once and concurrently with sweeps; sweeps that start queueing after
// Close run on the calling goroutine.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed.Load() {
		return
	}
	p.closed.Store(true)
	close(p.jobs)
}

// serial reports whether a sweep of n items should run on the caller.
func (p *Pool) serial(n int) bool {
	return p.closed.Load() || p.workers == 1 || n == 1
}

// dispatch hands one closure per worker to the pool and waits for all of
// them.
func (p *Pool) dispatch(k int, run func(w int)) {
	p.mu.RLock()
	if p.closed.Load() {
		p.mu.RUnlock()
		for w := range k {
			run(w)
		}
		return
	}
	var wg sync.WaitGroup
	wg.Add(k)
	for w := range k {
		p.jobs <- job{run: func() { run(w) }, done: &wg}
	}
	p.mu.RUnlock()
	wg.Wait()
}

// ParallelFor splits [0, n) into one contiguous chunk per worker and calls
// fn(start, end) for each. It returns when every chunk is done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if p.serial(n) {
		fn(0, n)
		return
	}

	k := min(p.workers, n)
	chunk := (n + k - 1) / k
	k = (n + chunk - 1) / chunk
	p.dispatch(k, func(w int) {
		start := w * chunk
		fn(start, min(start+chunk, n))
	})
}

// ParallelForAtomic calls fn(start, end) on batches of at most batch indices
// claimed from a shared counter, so workers that draw cheap samples take more
// of them. It returns when [0, n) is exhausted.
func (p *Pool) ParallelForAtomic(n, batch int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if batch <= 0 {
		batch = DefaultBatch
	}
	if p.serial(n) {
		fn(0, n)
		return
	}

	var next atomic.Int64
	k := min(p.workers, (n+batch-1)/batch)
	p.dispatch(k, func(int) {
		for {
			start := int(next.Add(int64(batch))) - batch
			if start >= n {
				return
			}
			fn(start, min(start+batch, n))
		}
	})
}

// Map returns fn(i) for every i in [0, n), in index order, computed on the
// pool.
func Map[T any](p *Pool, n int, fn func(i int) T) []T {
	if n <= 0 {
		return nil
	}
	out := make([]T, n)
	p.ParallelForAtomic(n, 0, func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = fn(i)
		}
	})
	return out
}
