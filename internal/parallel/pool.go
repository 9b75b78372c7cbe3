package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a pool of goroutines for parallel pixel traversal.
//
// The pool keeps a queue per worker. Workers primarily pull from their own
// queue but steal from other workers when it runs dry, which balances load
// when some partitions are slower than others (visitors rarely cost the
// same on every pixel).
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	// workers is the number of worker goroutines.
	workers int

	// workQueues holds per-worker work queues.
	workQueues []chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool

	// submitMu excludes queue submission from shutdown. A submission that
	// saw the pool running must land before done closes, or the task would
	// sit in a queue no worker drains and Invoke would never return.
	submitMu sync.RWMutex
}

// NewWorkerPool creates a new worker pool with the specified number of
// workers. If workers is 0 or negative, GOMAXPROCS is used.
// The pool starts immediately and workers begin waiting for work.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// A few queued items per worker hide submission latency without
	// hoarding tasks that another worker could steal.
	queueSize := workers * 4
	if queueSize < 8 {
		queueSize = 8
	}

	p := &WorkerPool{
		workers:    workers,
		workQueues: make([]chan func(), workers),
		done:       make(chan struct{}),
	}

	for i := range workers {
		p.workQueues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

// worker is the main loop for each worker goroutine.
func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	myQueue := p.workQueues[id]

	for {
		select {
		case <-p.done:
			// Drain remaining work before exiting
			p.drainQueue(myQueue)
			return

		case work := <-myQueue:
			if work != nil {
				work()
			}

		default:
			// Try to steal work from another worker
			if stolen := p.steal(id); stolen != nil {
				stolen()
			} else {
				// No work available anywhere, block on own queue
				select {
				case <-p.done:
					p.drainQueue(myQueue)
					return
				case work := <-myQueue:
					if work != nil {
						work()
					}
				}
			}
		}
	}
}

// drainQueue executes all remaining work in a queue.
func (p *WorkerPool) drainQueue(queue chan func()) {
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

// steal attempts to take work from another worker's queue.
// Returns nil if no work is available.
func (p *WorkerPool) steal(myID int) func() {
	for i := range p.workers {
		if i == myID {
			continue
		}

		select {
		case work := <-p.workQueues[i]:
			return work
		default:
			// Queue is empty, try next
		}
	}
	return nil
}

// TrySubmit offers a single work item to the pool without blocking.
// It returns false when every worker queue is full or the pool is closed;
// the caller must then run the work itself. Fork/join traversals rely on
// this: a worker that forks while all queues are saturated would otherwise
// wait on queue space that only its own unfinished work can free up.
func (p *WorkerPool) TrySubmit(fn func()) bool {
	if fn == nil {
		return false
	}

	p.submitMu.RLock()
	defer p.submitMu.RUnlock()

	if !p.running.Load() {
		return false
	}

	// Prefer the shortest queue (simple load balancing).
	minIdx := 0
	minLen := len(p.workQueues[0])
	for i := 1; i < p.workers; i++ {
		if qLen := len(p.workQueues[i]); qLen < minLen {
			minLen = qLen
			minIdx = i
		}
	}
	select {
	case p.workQueues[minIdx] <- fn:
		return true
	default:
	}

	// Shortest queue filled up in the meantime, take any queue with room.
	for i := range p.workers {
		select {
		case p.workQueues[i] <- fn:
			return true
		default:
		}
	}
	return false
}

// Invoke runs a fork/join traversal of the span on the pool and blocks
// until every partition has been fully drained.
//
// The span is split recursively: each task forks off upper halves until its
// partition is at the granularity floor, then drains it. Forked partitions
// run on pool workers when queue space allows and inline otherwise, so
// Invoke completes even on a closed pool (everything then runs on the
// calling goroutine). drain is called exactly once per terminal partition
// and must be safe for concurrent invocation on distinct partitions.
func (p *WorkerPool) Invoke(s *Span, drain func(*Span)) {
	var wg sync.WaitGroup

	var task func(*Span)
	task = func(sp *Span) {
		defer wg.Done()
		for {
			sub := sp.TrySplit()
			if sub == nil {
				break
			}
			wg.Add(1)
			if !p.TrySubmit(func() { task(sub) }) {
				task(sub)
			}
		}
		drain(sp)
	}

	// The calling goroutine works its own share instead of just waiting.
	wg.Add(1)
	task(s)
	wg.Wait()
}

// Close gracefully shuts down the pool.
// It stops accepting new work, waits for all queued work to complete,
// and then stops all workers.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	p.submitMu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		// Already closed
		p.submitMu.Unlock()
		return
	}

	// Signal workers to stop. In-flight submissions have landed by now, so
	// the exiting workers drain them.
	close(p.done)
	p.submitMu.Unlock()

	// Wait for all workers to finish
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
