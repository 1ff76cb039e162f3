package scaledraw

import (
	"github.com/gogpu/scaledraw/internal/parallel"
)

// Parallelizer executes a batch of independent tasks and joins them.
//
// The engine defines no thread pool of its own: destination chunks are
// submitted as one batch per stage, and ExecuteAndWait must return only
// after every task has completed. That join is the only place a draw
// call blocks, and it is also the memory fence between the phases of a
// mixed-direction draw.
//
// Thread safety: implementations must allow concurrent ExecuteAndWait
// calls from independent draws.
type Parallelizer interface {
	// ExecuteAndWait runs every task and returns once all have
	// completed. Task execution order is unspecified.
	ExecuteAndWait(tasks []func())

	// Workers returns the number of workers the implementation runs
	// tasks on, at least 1.
	Workers() int
}

// Serial is a Parallelizer that runs every task inline on the calling
// goroutine, in order. It is the default when a draw call is given a
// nil Parallelizer, and the right choice for tiny draws and tests.
type Serial struct{}

var _ Parallelizer = Serial{}

// ExecuteAndWait runs the tasks one after another.
func (Serial) ExecuteAndWait(tasks []func()) {
	for _, task := range tasks {
		task()
	}
}

// Workers returns 1.
func (Serial) Workers() int { return 1 }

// WorkerParallelizer is a Parallelizer backed by a pool of workers
// claiming tasks from a shared run queue. Close it when no more draws
// will use it.
type WorkerParallelizer struct {
	pool *parallel.WorkerPool
}

var _ Parallelizer = (*WorkerParallelizer)(nil)

// NewWorkerParallelizer creates a parallelizer with the given number of
// workers. If workers is <= 0, GOMAXPROCS is used.
func NewWorkerParallelizer(workers int) *WorkerParallelizer {
	return &WorkerParallelizer{pool: parallel.NewWorkerPool(workers)}
}

// ExecuteAndWait runs the batch on the pool and joins it.
func (w *WorkerParallelizer) ExecuteAndWait(tasks []func()) {
	w.pool.ExecuteAll(tasks)
}

// Workers returns the pool's worker count.
func (w *WorkerParallelizer) Workers() int {
	return w.pool.Workers()
}

// Close shuts down the underlying pool. Close is idempotent.
func (w *WorkerParallelizer) Close() {
	w.pool.Close()
}
