package workstealpool

import (
	"expvar"
	"fmt"
	"sync/atomic"
)

var poolInstanceSeq atomic.Int64

// Metrics holds a point-in-time snapshot of a Pool's lifecycle counters:
// how many tasks have been submitted, completed, failed, and stolen since
// the pool was created.
type Metrics struct {
	Submitted int64
	Completed int64
	Failed    int64
	Stolen    int64
}

// poolMetrics is the live, atomic-backed counter set, published under
// expvar so the pool's activity is visible the same way the rest of a
// process's counters are (request counts, cache hit rates, and so on).
type poolMetrics struct {
	submitted atomic.Int64
	completed atomic.Int64
	failed    atomic.Int64
	stolen    atomic.Int64
}

func newPoolMetrics() *poolMetrics {
	m := &poolMetrics{}
	name := fmt.Sprintf("workstealpool_%d", poolInstanceSeq.Add(1))
	vars := expvar.NewMap(name)
	vars.Set("submitted", expvar.Func(func() any { return m.submitted.Load() }))
	vars.Set("completed", expvar.Func(func() any { return m.completed.Load() }))
	vars.Set("failed", expvar.Func(func() any { return m.failed.Load() }))
	vars.Set("stolen", expvar.Func(func() any { return m.stolen.Load() }))
	return m
}

func (m *poolMetrics) snapshot() Metrics {
	return Metrics{
		Submitted: m.submitted.Load(),
		Completed: m.completed.Load(),
		Failed:    m.failed.Load(),
		Stolen:    m.stolen.Load(),
	}
}
