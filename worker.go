package workstealpool

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// workerSlot pairs a worker's local queue with its wake signal (a binary
// semaphore): workers own the read side of both, submitters own the write
// side. Using golang.org/x/sync/semaphore.Weighted capped at weight 1
// gives the binary-semaphore park/unpark primitive the design calls for;
// Go has no such type in the standard library.
//
// semaphore.Weighted.Release panics if called more times than Acquire, so a
// naive Release-per-submission would panic the instant two submissions land
// on the same idle worker before it wakes. pending coalesces any number of
// signals that arrive while a wake is already outstanding into the single
// Release the semaphore can actually absorb; the worker drains its entire
// queue on every wake regardless of how many signals produced it, so
// coalescing loses no work.
type workerSlot struct {
	id      int
	local   *tsDeque[envelope]
	wake    *semaphore.Weighted
	pending atomic.Bool
}

func newWorkerSlot(id, queueCapacity int) *workerSlot {
	w := &workerSlot{
		id:    id,
		local: newTSDeque[envelope](queueCapacity),
		wake:  semaphore.NewWeighted(1),
	}
	// Drain the single permit so the semaphore starts "empty": the first
	// Acquire call in run() blocks until a submission Releases it.
	_ = w.wake.Acquire(context.Background(), 1)
	return w
}

// signal wakes the worker if it is parked, or primes it to return
// immediately from its next Acquire if it is not. Safe to call any number
// of times per wake cycle.
func (w *workerSlot) signal() {
	if w.pending.CompareAndSwap(false, true) {
		w.wake.Release(1)
	}
}

// run is the worker's serve loop (component C): park on the wake signal,
// drain the local queue, steal one task from a peer if the local queue is
// empty, and repeat until no work remains anywhere, then park again.
func (w *workerSlot) run(p *Pool) {
	defer p.wg.Done()

	if p.config.WorkerInit != nil {
		func() {
			defer func() { recover() }()
			p.config.WorkerInit(w.id)
		}()
	}

	numWorkers := len(p.workers)

	for {
		if err := w.wake.Acquire(context.Background(), 1); err != nil {
			return
		}
		w.pending.Store(false)

		for {
			for {
				t, ok := w.local.PopFront()
				if !ok {
					break
				}
				p.runTask(w.id, t)
			}

			if numWorkers > 1 {
				for j := 1; j < numWorkers; j++ {
					k := (w.id + j) % numWorkers
					if t, ok := p.workers[k].local.Steal(); ok {
						p.metrics.stolen.Add(1)
						p.runTask(w.id, t)
						break
					}
				}
			}

			if p.unassigned.Load() == 0 {
				break
			}
		}

		p.ring.rotateToFront(w.id)

		if p.inFlight.Load() == 0 {
			p.quiescent.markDoneIfZero(&p.inFlight)
		}

		if p.stopRequested.Load() {
			return
		}
	}
}
