// Package queue serializes outbound generation calls. Every call enqueued
// here runs one at a time, in FIFO order, with a minimum idle gap between
// the completion of one task and the start of the next. The gap keeps
// bursts of lookups (one per rendered activity card) under the service's
// rate limits.
package queue

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Task is one unit of work. It runs on the queue's drain goroutine and must
// return when its context is cancelled.
type Task[T any] func(ctx context.Context) (T, error)

type outcome[T any] struct {
	value T
	err   error
}

// Pending is the future for one enqueued task. ID identifies the task so a
// cancellation primitive can be added later without changing callers.
type Pending[T any] struct {
	ID   string
	done chan outcome[T]
}

// Wait blocks until the task has run, or until ctx is cancelled, whichever
// comes first. A task failure is returned only to its own waiter.
func (p *Pending[T]) Wait(ctx context.Context) (T, error) {
	select {
	case out := <-p.done:
		return out.value, out.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

type job[T any] struct {
	ctx     context.Context
	run     Task[T]
	pending *Pending[T]
}

// Queue is a throttled FIFO executor. One Queue instance is shared by all
// callers that must pace against the same rate limit.
type Queue[T any] struct {
	delay time.Duration

	mu      sync.Mutex
	backlog []job[T]
	running bool
}

// New creates a queue with the given pacing delay. Grounded search calls
// get a longer delay than plain generation calls since they are more
// failure-prone under burst.
func New[T any](delay time.Duration) *Queue[T] {
	return &Queue[T]{delay: delay}
}

// Enqueue adds a task and returns immediately. The drain loop is started
// lazily by the first enqueue after an idle period; the running flag
// guarantees a re-entrant enqueue never spawns a second loop.
func (q *Queue[T]) Enqueue(ctx context.Context, task Task[T]) *Pending[T] {
	p := &Pending[T]{
		ID:   uuid.NewString(),
		done: make(chan outcome[T], 1),
	}

	q.mu.Lock()
	q.backlog = append(q.backlog, job[T]{ctx: ctx, run: task, pending: p})
	start := !q.running
	if start {
		q.running = true
	}
	q.mu.Unlock()

	if start {
		go q.drain()
	}
	return p
}

// Len reports the number of tasks waiting to run.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.backlog)
}

func (q *Queue[T]) drain() {
	for {
		q.mu.Lock()
		if len(q.backlog) == 0 {
			q.running = false
			q.mu.Unlock()
			return
		}
		next := q.backlog[0]
		q.backlog = q.backlog[1:]
		q.mu.Unlock()

		if err := next.ctx.Err(); err != nil {
			// Caller already gave up, skip the task without burning the
			// pacing budget.
			var zero T
			next.pending.done <- outcome[T]{value: zero, err: err}
			continue
		}

		value, err := next.run(next.ctx)
		next.pending.done <- outcome[T]{value: value, err: err}

		// No delay after the last task; tasks enqueued while this one ran
		// still count.
		q.mu.Lock()
		more := len(q.backlog) > 0
		q.mu.Unlock()
		if more {
			time.Sleep(q.delay)
		}
	}
}
