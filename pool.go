// Package workstealpool implements a fixed-size work-stealing thread pool:
// worker goroutines that drain their own local queue and steal from peers
// when idle, with a dispatch ring picking the destination for each
// submission and a quiescence barrier for waiting until every outstanding
// task has completed.
//
// The pool supports:
//   - Generic submissions with a Future-based result handle, or
//     fire-and-forget detached submissions
//   - A fixed worker count with optional per-worker init callback
//   - Batched submission with coalesced wake signals
//   - Quiescence waiting (WaitForTasks) and best-effort queue draining
//     (ClearTasks)
//   - Panic isolation: a panicking task never brings down a worker
package workstealpool

import (
	"sync"
	"sync/atomic"
)

// Pool manages a fixed set of worker goroutines that execute submitted
// tasks concurrently via work stealing.
type Pool struct {
	config Config

	workers []*workerSlot
	ring    *ring

	unassigned atomic.Int64
	inFlight   atomic.Int64
	quiescent  *quiescenceFlag

	stopRequested atomic.Bool
	wg            sync.WaitGroup
	closeOnce     sync.Once

	metrics *poolMetrics
}

// New creates a pool configured by opts, defaulting to runtime.NumCPU()
// workers.
func New(opts ...Option) *Pool {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a pool from an explicit Config. If a worker fails
// to spawn (cfg.spawnHook returns an error; this never happens with real
// goroutines), its slot and ring entry are rolled back and the pool
// continues with fewer workers than requested.
func NewWithConfig(cfg Config) *Pool {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.QueueCapacity <= 0 {
		cfg.QueueCapacity = 64
	}

	p := &Pool{
		config:    cfg,
		quiescent: newQuiescenceFlag(),
		metrics:   newPoolMetrics(),
	}

	for i := 0; i < cfg.Workers; i++ {
		if cfg.spawnHook != nil {
			if err := cfg.spawnHook(i); err != nil {
				continue
			}
		}
		p.workers = append(p.workers, newWorkerSlot(len(p.workers), cfg.QueueCapacity))
	}

	p.ring = newRing(len(p.workers))

	if len(p.workers) > 0 {
		p.wg.Add(len(p.workers))
		for _, w := range p.workers {
			go w.run(p)
		}
	}

	return p
}

// Size returns the current worker count, which may be less than
// cfg.Workers if spawning downsized the pool.
func (p *Pool) Size() int {
	return len(p.workers)
}

// Metrics returns a snapshot of the pool's lifecycle counters.
func (p *Pool) Metrics() Metrics {
	return p.metrics.snapshot()
}

// WaitForTasks blocks until every submitted task, including any
// recursively submitted from within a running task, has completed.
func (p *Pool) WaitForTasks() {
	p.quiescent.wait()
}

// ClearTasks best-effort drains every worker's local queue, discarding
// tasks that have not yet started. Already-invoked tasks are unaffected.
// A concurrent thief may steal a task during the call, so the returned
// count is a lower bound on what was actually discarded.
func (p *Pool) ClearTasks() int {
	var total int64
	for _, w := range p.workers {
		total += int64(w.local.Clear())
	}
	if total > 0 {
		p.unassigned.Add(-total)
		p.inFlight.Add(-total)
		p.quiescent.markDoneIfZero(&p.inFlight)
	}
	return int(total)
}

// Close waits for outstanding work to finish, then requests every worker
// to stop, wakes each one, and joins it. Futures returned before Close was
// called remain valid. Close is idempotent.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.WaitForTasks()
		p.stopRequested.Store(true)
		for _, w := range p.workers {
			w.signal()
		}
		p.wg.Wait()
	})
}

// dispatchQueueOnly assigns t to a destination worker via the ring,
// accounts for it in the pending/in-flight counters, and pushes it onto
// that worker's local queue without releasing the wake signal. Callers
// that need to coalesce wake signals across several tasks (SubmitBatch)
// use this directly; everyone else goes through dispatch.
func (p *Pool) dispatchQueueOnly(t envelope) (id int, ok bool) {
	id, ok = p.ring.copyFrontAndRotateToBack()
	if !ok {
		return 0, false
	}
	p.unassigned.Add(1)
	if p.inFlight.Add(1) == 1 {
		p.quiescent.markBusy()
	}
	p.metrics.submitted.Add(1)
	p.workers[id].local.PushBack(t)
	return id, true
}

func (p *Pool) dispatch(t envelope) bool {
	id, ok := p.dispatchQueueOnly(t)
	if !ok {
		return false
	}
	p.workers[id].signal()
	return true
}

func (p *Pool) runTask(workerID int, t envelope) {
	p.unassigned.Add(-1)
	defer p.inFlight.Add(-1)
	defer func() { recover() }()
	t.run(workerID)
}

// Submit wraps fn in a task envelope and assigns it to a worker, returning
// a Future that yields fn's result once it completes. Submit cannot be a
// method because Go forbids generic methods; it takes the pool explicitly
// instead, the idiom several generic Go concurrency libraries use.
func Submit[R any](p *Pool, fn func() (R, error)) *Future[R] {
	fut := newFuture[R]()
	if len(p.workers) == 0 {
		var zero R
		fut.deliver(zero, ErrZeroWorkers)
		return fut
	}
	if p.stopRequested.Load() {
		var zero R
		fut.deliver(zero, ErrPoolClosed)
		return fut
	}

	t := newEnvelope(func(_ int) {
		v, err := runCaptured(fn)
		if err != nil {
			p.metrics.failed.Add(1)
		} else {
			p.metrics.completed.Add(1)
		}
		fut.deliver(v, err)
	})
	p.dispatch(t)
	return fut
}

// SubmitDetach wraps fn and assigns it to a worker; fn's panics (there is
// no return value or error to report) are swallowed so the worker survives
// them.
func SubmitDetach(p *Pool, fn func()) {
	if len(p.workers) == 0 || p.stopRequested.Load() {
		return
	}
	t := newEnvelope(func(_ int) {
		runDetached(fn)
		p.metrics.completed.Add(1)
	})
	p.dispatch(t)
}

// SubmitBatch enqueues every function in fns as a detached task. All tasks
// are accounted for before any wake signal is released, and at most one
// signal is released per distinct destination worker, bounding wakeups to
// min(len(fns), p.Size()). It returns how many tasks were actually
// enqueued (0 for a degenerate, workerless pool).
func SubmitBatch(p *Pool, fns ...func()) int {
	if len(p.workers) == 0 || len(fns) == 0 || p.stopRequested.Load() {
		return 0
	}

	touched := make(map[int]struct{}, min(len(fns), len(p.workers)))
	enqueued := 0
	for _, fn := range fns {
		fn := fn
		t := newEnvelope(func(_ int) {
			runDetached(fn)
			p.metrics.completed.Add(1)
		})
		id, ok := p.dispatchQueueOnly(t)
		if !ok {
			continue
		}
		touched[id] = struct{}{}
		enqueued++
	}
	for id := range touched {
		p.workers[id].signal()
	}
	return enqueued
}
