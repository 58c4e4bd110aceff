// Package parallel provides the worker pool driving the two render passes.
//
// Each render pass is a batch of independent work units (row blocks in the
// distribution pass, scanlines in the rasterization pass). The pool spreads
// a batch over per-worker queues and lets idle workers steal from their
// neighbors, so a stripe of expensive scanlines does not serialize a frame.
//
// Thread safety: Pool is safe for concurrent use after creation, but the
// renderer issues one batch at a time.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of worker goroutines executing batches of work units
// with work stealing between workers.
type Pool struct {
	// workers is the number of worker goroutines.
	workers int

	// queues holds one buffered work queue per worker. A worker pulls from
	// its own queue first and steals from the others when it runs dry.
	queues []chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to exit.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// NewPool creates a pool with the given number of workers and starts them.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// A few queued units per worker hides scheduling latency without
	// holding a whole frame's rows in channel buffers.
	queueSize := workers * 4
	if queueSize < 8 {
		queueSize = 8
	}

	p := &Pool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker(i)
	}
	return p
}

// worker is the main loop of one worker goroutine.
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	own := p.queues[id]
	for {
		select {
		case <-p.done:
			p.drain(own)
			return

		case work := <-own:
			if work != nil {
				work()
			}

		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
			} else {
				// Nothing to steal anywhere; block on the own queue.
				select {
				case <-p.done:
					p.drain(own)
					return
				case work := <-own:
					if work != nil {
						work()
					}
				}
			}
		}
	}
}

// drain executes whatever is left in a queue during shutdown.
func (p *Pool) drain(queue chan func()) {
	for {
		select {
		case work := <-queue:
			if work != nil {
				work()
			}
		default:
			return
		}
	}
}

// steal takes one work unit from another worker's queue, or returns nil.
func (p *Pool) steal(myID int) func() {
	for i := 0; i < p.workers; i++ {
		if i == myID {
			continue
		}
		select {
		case work := <-p.queues[i]:
			return work
		default:
		}
	}
	return nil
}

// Run distributes a batch across the workers and blocks until every unit
// has completed. This is the barrier between the render passes: all writes
// made by the batch happen before Run returns.
//
// If the pool is closed, Run is a no-op.
func (p *Pool) Run(batch []func()) {
	if len(batch) == 0 || !p.running.Load() {
		return
	}

	var pending sync.WaitGroup
	pending.Add(len(batch))

	for i, fn := range batch {
		worker := i % p.workers
		unit := fn
		wrapped := func() {
			defer pending.Done()
			unit()
		}

		select {
		case p.queues[worker] <- wrapped:
		case <-p.done:
			// Pool is closing; count the unit as done so Run terminates.
			pending.Done()
		}
	}

	pending.Wait()
}

// Close shuts the pool down. It stops accepting work, finishes what is
// queued, and joins all workers. Close is safe to call multiple times.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool is still accepting work.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}
