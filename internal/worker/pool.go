// Package worker provides a worker pool for running independent jobs,
// such as arena games, in parallel.
package worker

import (
	"context"
	"sync"
	"sync/atomic"
)

// WorkItem is one job submitted to the pool.
type WorkItem[T any] struct {
	Job   T
	Index int // Submission order
}

// Result is the outcome of one job.
type Result[R any] struct {
	Value R
	Index int
	Err   error
}

// ProcessFunc runs a single job.
type ProcessFunc[T, R any] func(ctx context.Context, item WorkItem[T]) Result[R]

// Pool runs jobs on a fixed number of goroutines.
type Pool[T, R any] struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem[T]
	resultChan  chan Result[R]
	processFunc ProcessFunc[T, R]
	wg          sync.WaitGroup
	stopFlag    int32
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

// NewPool creates a pool. Defaults: 1 worker, buffer size of 10.
func NewPool[T, R any](processFunc ProcessFunc[T, R], opts ...PoolOption) *Pool[T, R] {
	settings := poolSettings{numWorkers: 1, bufferSize: 10}
	for _, opt := range opts {
		opt(&settings)
	}
	return &Pool[T, R]{
		numWorkers:  settings.numWorkers,
		bufferSize:  settings.bufferSize,
		workChan:    make(chan WorkItem[T], settings.bufferSize),
		resultChan:  make(chan Result[R], settings.bufferSize),
		processFunc: processFunc,
	}
}

// Start starts the worker goroutines. Each job receives ctx; once ctx is
// done, queued jobs are drained without being run.
func (p *Pool[T, R]) Start(ctx context.Context) {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

func (p *Pool[T, R]) worker(ctx context.Context) {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue
		}
		if err := ctx.Err(); err != nil {
			p.resultChan <- Result[R]{Index: item.Index, Err: err}
			continue
		}
		res := p.processFunc(ctx, item)
		res.Index = item.Index
		p.resultChan <- res
	}
}

// Submit queues a job. It blocks while the buffer is full.
func (p *Pool[T, R]) Submit(item WorkItem[T]) {
	p.workChan <- item
}

// TrySubmit queues a job without blocking. It returns false if the buffer
// is full or the pool is stopped.
func (p *Pool[T, R]) TrySubmit(item WorkItem[T]) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	default:
		return false
	}
}

// Stop makes workers drop queued jobs without running them or producing
// results.
func (p *Pool[T, R]) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped reports whether Stop has been called.
func (p *Pool[T, R]) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel, waits for the workers and then closes the
// result channel.
func (p *Pool[T, R]) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel.
func (p *Pool[T, R]) Results() <-chan Result[R] {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool[T, R]) NumWorkers() int {
	return p.numWorkers
}

// Run submits every job, waits for all of them and returns the results in
// submission order.
func Run[T, R any](ctx context.Context, jobs []T, processFunc ProcessFunc[T, R], opts ...PoolOption) []Result[R] {
	pool := NewPool(processFunc, opts...)
	pool.Start(ctx)

	go func() {
		for i, job := range jobs {
			pool.Submit(WorkItem[T]{Job: job, Index: i})
		}
		pool.Close()
	}()

	results := make([]Result[R], len(jobs))
	for res := range pool.Results() {
		results[res.Index] = res
	}
	return results
}
