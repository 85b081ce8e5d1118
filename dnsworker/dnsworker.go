// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package dnsworker

import (
	"sync"

	"github.com/gammazero/workerpool"
)

// The hard limits of DNS lookup workers in a pool.
const (
	MinWorkers = 1
	MaxWorkers = 50
)

// ClampSize returns the specified number of workers clamped into the range
// [MinWorkers..MaxWorkers].
func ClampSize(size int) int {
	if size < MinWorkers {
		return MinWorkers
	}
	if size > MaxWorkers {
		return MaxWorkers
	}
	return size
}

// Pool is a size-limited pool of DNS lookup workers. A Pool is meant to be
// used for a single batch of lookups only: submit all tasks and then call
// [Pool.StopWait] as the join barrier.
type Pool struct {
	size     int
	workers  *workerpool.WorkerPool
	stopOnce sync.Once
}

// New returns a new pool of lookup workers of the specified size, clamped
// into the range of [MinWorkers..MaxWorkers].
func New(size int) *Pool {
	size = ClampSize(size)
	return &Pool{
		size:    size,
		workers: workerpool.New(size),
	}
}

// Size returns the (clamped) maximum number of concurrently running tasks.
func (p *Pool) Size() int { return p.size }

// Submit a task to the pool, where it gets enqueued to be executed as soon as
// a worker becomes available. Submit never blocks.
func (p *Pool) Submit(task func()) {
	p.workers.Submit(task)
}

// StopWait waits for all enqueued tasks to finish, and then shuts down the
// pool. It can be called multiple times; only the first call waits.
func (p *Pool) StopWait() {
	p.stopOnce.Do(p.workers.StopWait)
}
