package workstealpool

import (
	"context"
	"fmt"
)

// envelope is the uniform task representation stored in every
// worker's local queue (component F). It erases the user's return type:
// the closure it wraps is responsible for delivering its own result (or
// swallowing it, for detached submissions) before returning.
type envelope struct {
	run func(workerID int)
}

func newEnvelope(run func(workerID int)) envelope {
	return envelope{run: run}
}

// taskOutcome holds the value or error a Future eventually delivers.
type taskOutcome[R any] struct {
	value R
	err   error
}

// Future is the consumer-side handle for a submission's eventual result
// (component H). A Future remains valid after the pool that created it has
// been closed, provided the task has already completed.
type Future[R any] struct {
	done chan taskOutcome[R]
}

func newFuture[R any]() *Future[R] {
	return &Future[R]{done: make(chan taskOutcome[R], 1)}
}

func (f *Future[R]) deliver(value R, err error) {
	f.done <- taskOutcome[R]{value: value, err: err}
}

// Get blocks until the task completes, ctx is done, or an error is
// returned. On success it yields the task's return value; if the task
// panicked or returned an error, that error is returned instead.
func (f *Future[R]) Get(ctx context.Context) (R, error) {
	select {
	case out := <-f.done:
		return out.value, out.err
	case <-ctx.Done():
		var zero R
		return zero, ctx.Err()
	}
}

// Wait is Get with a background context: it blocks until the task
// completes, with no possibility of early return.
func (f *Future[R]) Wait() (R, error) {
	out := <-f.done
	return out.value, out.err
}

// runCaptured invokes fn and recovers a panic into an error, matching the
// "task threw" row of the error-handling table for handle-returning
// submissions.
func runCaptured[R any](fn func() (R, error)) (value R, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("workstealpool: task panicked: %v", r)
		}
	}()
	return fn()
}

// runDetached invokes fn, discarding any panic. Detached submissions must
// never bring down a worker goroutine.
func runDetached(fn func()) {
	defer func() { recover() }()
	fn()
}
