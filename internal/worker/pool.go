// Package worker provides a generic worker pool for checking saved games in parallel.
package worker

import (
	"sync"
	"sync/atomic"
)

// Job is one unit of work. Index records submission order so results,
// which arrive in completion order, can be put back in sequence.
type Job[In any] struct {
	Index int
	Value In
}

// Result is the outcome of processing one Job.
type Result[Out any] struct {
	Index int
	Value Out
	Err   error
}

// ProcessFunc processes one job value.
type ProcessFunc[In, Out any] func(In) (Out, error)

// Pool runs a fixed number of workers over a stream of jobs.
type Pool[In, Out any] struct {
	numWorkers  int
	bufferSize  int
	jobs        chan Job[In]
	results     chan Result[Out]
	processFunc ProcessFunc[In, Out]
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
	submitted   int32
}

// PoolOption configures a Pool.
type PoolOption func(*poolSettings)

type poolSettings struct {
	numWorkers int
	bufferSize int
}

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(s *poolSettings) {
		if n >= 1 {
			s.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(s *poolSettings) {
		if size >= 1 {
			s.bufferSize = size
		}
	}
}

// NewPool creates a pool. processFunc is required; by default the pool
// has 1 worker and a buffer size of 10.
func NewPool[In, Out any](processFunc ProcessFunc[In, Out], opts ...PoolOption) *Pool[In, Out] {
	s := poolSettings{numWorkers: 1, bufferSize: 10}
	for _, opt := range opts {
		opt(&s)
	}
	return &Pool[In, Out]{
		numWorkers:  s.numWorkers,
		bufferSize:  s.bufferSize,
		jobs:        make(chan Job[In], s.bufferSize),
		results:     make(chan Result[Out], s.bufferSize),
		processFunc: processFunc,
	}
}

// Start starts the worker goroutines.
func (p *Pool[In, Out]) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes jobs until the job channel is closed.
func (p *Pool[In, Out]) worker() {
	defer p.wg.Done()

	for job := range p.jobs {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		out, err := p.processFunc(job.Value)
		p.results <- Result[Out]{Index: job.Index, Value: out, Err: err}
	}
}

// Submit queues v and returns its index. It blocks while the buffer is full.
func (p *Pool[In, Out]) Submit(v In) int {
	idx := int(atomic.AddInt32(&p.submitted, 1)) - 1
	p.jobs <- Job[In]{Index: idx, Value: v}
	return idx
}

// Stop signals workers to skip the jobs still queued.
func (p *Pool[In, Out]) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool[In, Out]) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the job channel and waits for all workers to finish, then
// closes the result channel. Results must be drained concurrently.
func (p *Pool[In, Out]) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Results returns the result channel for reading processed results.
func (p *Pool[In, Out]) Results() <-chan Result[Out] {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool[In, Out]) NumWorkers() int {
	return p.numWorkers
}

// Map runs fn over values with n workers and returns the results in input order.
func Map[In, Out any](values []In, n int, fn ProcessFunc[In, Out]) []Result[Out] {
	pool := NewPool(fn, WithWorkers(n), WithBufferSize(len(values)+1))
	pool.Start()

	go func() {
		for _, v := range values {
			pool.Submit(v)
		}
		pool.Close()
	}()

	results := make([]Result[Out], len(values))
	for r := range pool.Results() {
		results[r.Index] = r
	}
	return results
}
