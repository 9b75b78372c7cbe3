package pix

import (
	"runtime"
	"sync"

	"github.com/gogpu/pix/internal/parallel"
)

// The parallel traversal methods share one worker pool, created lazily on
// first use. Guarded by poolMu so SetWorkers can swap it out safely.
var (
	poolMu      sync.Mutex
	sharedPool  *parallel.WorkerPool
	poolWorkers int // 0 selects GOMAXPROCS at pool creation
)

// workerPool returns the shared worker pool, creating it on first use.
func workerPool() *parallel.WorkerPool {
	poolMu.Lock()
	defer poolMu.Unlock()
	if sharedPool == nil {
		sharedPool = parallel.NewWorkerPool(poolWorkers)
		Logger().Debug("pix: worker pool started", "workers", sharedPool.Workers())
	}
	return sharedPool
}

// SetWorkers configures how many workers the parallel traversal methods
// use. n <= 0 selects GOMAXPROCS. The setting applies to traversals started
// after the call; an already running pool is shut down after finishing its
// queued work, and traversals still using it complete normally.
//
// SetWorkers is safe for concurrent use but must not be called from inside
// a visitor.
func SetWorkers(n int) {
	poolMu.Lock()
	old := sharedPool
	sharedPool = nil
	poolWorkers = n
	poolMu.Unlock()

	if old != nil {
		old.Close()
		Logger().Debug("pix: worker pool replaced", "workers", n)
	}
}

// Workers returns the number of workers the parallel traversal methods
// currently use (or will use once the pool is created).
func Workers() int {
	poolMu.Lock()
	defer poolMu.Unlock()
	if sharedPool != nil {
		return sharedPool.Workers()
	}
	if poolWorkers > 0 {
		return poolWorkers
	}
	return runtime.GOMAXPROCS(0)
}
