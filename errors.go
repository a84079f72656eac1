package workstealpool

import "errors"

// ErrZeroWorkers is returned through a Future when a handle-returning
// submission is made against a pool with no live workers (every requested
// worker failed to spawn). The submission is never
// assigned to a queue; the Future is delivered immediately.
var ErrZeroWorkers = errors.New("workstealpool: pool has no live workers")

// ErrPoolClosed is delivered through the Future of a Submit made after
// Close has asked the workers to stop. SubmitDetach and SubmitBatch drop
// such submissions without reporting an error.
var ErrPoolClosed = errors.New("workstealpool: pool is closed")
