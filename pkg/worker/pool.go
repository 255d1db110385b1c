/*
Package worker provides a bounded worker pool for concurrent task processing
with rate limiting and context cancellation support.

Results come back from Wait in submission order regardless of which worker
finished first, which lets callers rely on a stable ordering even under full
concurrency.

Basic usage:

	pool, err := worker.NewPool(worker.Config{
		Workers:   4,
		RateLimit: 10, // 10 ops/sec, 0 for unlimited
	})

	ctx := context.Background()
	pool.Start(ctx)

	pool.Submit(worker.Task{
		ID: 1,
		Execute: func(ctx context.Context) (worker.Result, error) {
			return worker.Result{ID: 1, Data: "processed"}, nil
		},
	})

	results, err := pool.Wait()
*/
package worker

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// Task represents a unit of work to be processed by the worker pool
type Task struct {
	// ID uniquely identifies the task
	ID int

	// Execute is the function that performs the actual work
	Execute func(context.Context) (Result, error)
}

// Result represents the output of a processed task
type Result struct {
	// ID matches the task ID that produced this result
	ID int

	// Data holds the actual result data
	Data interface{}

	// order is assigned at submit time and drives the ordering of Wait
	order int
}

// Config holds the configuration for the worker pool
type Config struct {
	// Workers is the number of concurrent workers
	Workers int

	// RateLimit is the maximum number of operations per second (0 for unlimited)
	RateLimit int
}

// Pool defines the interface for a worker pool
type Pool interface {
	// Start initializes and starts the worker pool
	Start(context.Context) error

	// Submit adds a task to the pool for processing
	Submit(Task) error

	// Wait blocks until all submitted tasks are processed and returns the
	// results sorted by submission order
	Wait() ([]Result, error)

	// GetStats returns current statistics about the pool
	GetStats() Stats

	// Status returns the current status of the pool
	Status() Status

	// Stop gracefully shuts down the pool
	Stop() error
}

type orderedTask struct {
	Task
	order int
}

// pool implements the Pool interface
type pool struct {
	config  Config
	tasks   chan orderedTask
	results chan Result
	errors  chan error
	limiter *rate.Limiter

	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc

	mu        sync.Mutex
	started   bool
	stopped   bool
	taskOrder int
	startTime time.Time

	collected    []Result
	drained      chan struct{}
	closeResults sync.Once

	activeWorkers  atomic.Int32
	completedTasks atomic.Int64
	failedTasks    atomic.Int64
}

// NewPool creates a new worker pool with the given configuration
func NewPool(config Config) (Pool, error) {
	if config.Workers <= 0 {
		return nil, fmt.Errorf("number of workers must be positive")
	}
	if config.RateLimit < 0 {
		return nil, fmt.Errorf("rate limit must be non-negative")
	}

	var limiter *rate.Limiter
	if config.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(config.RateLimit), 1)
	}

	return &pool{
		config:  config,
		tasks:   make(chan orderedTask, config.Workers*2),
		results: make(chan Result, config.Workers*2),
		errors:  make(chan error, config.Workers),
		limiter: limiter,
	}, nil
}

// Start initializes and starts the worker pool
func (p *pool) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return fmt.Errorf("pool already started")
	}

	p.ctx, p.cancel = context.WithCancel(ctx)
	p.started = true
	p.startTime = time.Now()
	p.drained = make(chan struct{})

	// Drain results for the pool's whole lifetime. Workers must never block
	// sending a result, otherwise a full results channel backs up into the
	// task channel and wedges Submit.
	go p.collect()

	for i := 0; i < p.config.Workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}

	return nil
}

// collect accumulates worker results until the results channel closes.
func (p *pool) collect() {
	defer close(p.drained)

	for result := range p.results {
		p.collected = append(p.collected, result)
	}
}

// Submit adds a task to the pool for processing. The submission order is
// recorded and preserved by Wait.
func (p *pool) Submit(task Task) error {
	p.mu.Lock()
	if !p.started || p.stopped {
		p.mu.Unlock()
		return fmt.Errorf("pool not accepting tasks")
	}
	order := p.taskOrder
	p.taskOrder++
	p.mu.Unlock()

	select {
	case <-p.ctx.Done():
		return fmt.Errorf("pool is shutting down: %w", p.ctx.Err())
	case p.tasks <- orderedTask{Task: task, order: order}:
		return nil
	}
}

// Wait blocks until all submitted tasks are processed
func (p *pool) Wait() ([]Result, error) {
	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()
		return nil, fmt.Errorf("pool not started")
	}
	if !p.stopped {
		close(p.tasks)
		p.stopped = true
	}
	p.mu.Unlock()

	p.wg.Wait()
	p.closeResults.Do(func() { close(p.results) })
	<-p.drained

	// The collector goroutine has exited; collected is ours now.
	results := p.collected

	sort.Slice(results, func(i, j int) bool {
		return results[i].order < results[j].order
	})

	select {
	case err := <-p.errors:
		return nil, err
	default:
		return results, nil
	}
}

// Stop gracefully shuts down the pool
func (p *pool) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started || p.stopped {
		p.stopped = true
		return nil
	}

	p.stopped = true
	p.cancel()
	close(p.tasks)

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.closeResults.Do(func() { close(p.results) })
		<-p.drained
		return nil
	case <-time.After(500 * time.Millisecond):
		return fmt.Errorf("shutdown timed out")
	}
}

// GetStats returns current statistics about the pool
func (p *pool) GetStats() Stats {
	p.mu.Lock()
	started := p.started
	startTime := p.startTime
	p.mu.Unlock()

	var uptime time.Duration
	if started {
		uptime = time.Since(startTime)
	}

	return Stats{
		ActiveWorkers:  int(p.activeWorkers.Load()),
		QueuedTasks:    len(p.tasks),
		CompletedTasks: int(p.completedTasks.Load()),
		FailedTasks:    int(p.failedTasks.Load()),
		Status:         p.Status(),
		Uptime:         uptime,
	}
}

// Status returns the current status of the pool
func (p *pool) Status() Status {
	p.mu.Lock()
	started := p.started
	stopped := p.stopped
	p.mu.Unlock()

	if !started || stopped {
		return StatusStopped
	}
	if p.activeWorkers.Load() > 0 || len(p.tasks) > 0 {
		return StatusProcessing
	}

	return StatusIdle
}

// worker processes tasks until the task channel closes
func (p *pool) worker() {
	defer p.wg.Done()

	for ot := range p.tasks {
		p.activeWorkers.Add(1)

		if p.limiter != nil {
			if err := p.limiter.Wait(p.ctx); err != nil {
				p.activeWorkers.Add(-1)
				p.failedTasks.Add(1)
				select {
				case p.errors <- fmt.Errorf("rate limiter error: %w", err):
				default:
				}
				return
			}
		}

		result, err := ot.Execute(p.ctx)
		result.order = ot.order
		p.activeWorkers.Add(-1)

		if err != nil {
			p.failedTasks.Add(1)
			select {
			case p.errors <- fmt.Errorf("task %d failed: %w", ot.ID, err):
			default:
				// Error channel is full, continue processing
			}
			continue
		}

		p.completedTasks.Add(1)

		select {
		case <-p.ctx.Done():
			return
		case p.results <- result:
		}
	}
}
