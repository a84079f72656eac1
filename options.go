package workstealpool

import "runtime"

// Config holds the construction-time configuration for a Pool. Most
// callers build one with functional Options, but Config remains exported
// for callers that prefer to construct and inspect it directly.
type Config struct {
	// Workers is the desired worker count. DefaultConfig sets it to
	// runtime.NumCPU() (1 if that ever reports <= 0); a non-positive value
	// passed to NewWithConfig is clamped to 1.
	Workers int

	// QueueCapacity seeds the initial capacity hint for each worker's
	// local queue.
	QueueCapacity int

	// WorkerInit, if set, runs once on each worker goroutine before it
	// enters its serve loop. A panic inside WorkerInit is recovered and
	// suppressed; the worker starts regardless.
	WorkerInit func(id int)

	// spawnHook lets tests simulate a worker failing to start. Production
	// callers never set this: a goroutine cannot fail to spawn the way an
	// OS thread can, but the pool still has to handle a worker slot that
	// never came up.
	spawnHook func(id int) error
}

// DefaultConfig returns the configuration New uses when given no options.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	if n <= 0 {
		n = 1
	}
	return Config{
		Workers:       n,
		QueueCapacity: 64,
	}
}

// Option configures a Pool at construction time.
type Option func(*Config)

// WithWorkers sets the desired worker count.
func WithWorkers(n int) Option {
	return func(c *Config) { c.Workers = n }
}

// WithQueueCapacity sets the initial local-queue capacity hint.
func WithQueueCapacity(n int) Option {
	return func(c *Config) { c.QueueCapacity = n }
}

// WithWorkerInit registers a per-worker initialization callback.
func WithWorkerInit(f func(id int)) Option {
	return func(c *Config) { c.WorkerInit = f }
}
