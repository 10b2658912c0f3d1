package session

import (
	"sync"
	"time"
)

// Dispatcher is the single-threaded cooperative surface. All shared
// session state (store, turn bookkeeping, exam state) is mutated only
// by callbacks executed on Run's goroutine; background workers hand
// results back through Dispatch. Because cancellation and publishing
// both run here, a cancel strictly orders before or after any given
// publish, never interleaving within it.
type Dispatcher struct {
	queue chan func()
	quit  chan struct{}
	once  sync.Once
}

// NewDispatcher creates a dispatcher with a buffered callback queue
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		queue: make(chan func(), 64),
		quit:  make(chan struct{}),
	}
}

// Run executes queued callbacks on the calling goroutine until Stop.
// Callbacks run one at a time without preemption.
func (d *Dispatcher) Run() {
	for {
		select {
		case f := <-d.queue:
			f()
		case <-d.quit:
			return
		}
	}
}

// Dispatch enqueues a callback onto the surface. It never blocks
// indefinitely: after Stop the callback is dropped.
func (d *Dispatcher) Dispatch(f func()) {
	select {
	case d.queue <- f:
	case <-d.quit:
	}
}

// After schedules a callback to be dispatched onto the surface after
// the given delay. The returned timer can be stopped to cancel the
// callback before it fires.
func (d *Dispatcher) After(delay time.Duration, f func()) *time.Timer {
	return time.AfterFunc(delay, func() {
		d.Dispatch(f)
	})
}

// Stop shuts the dispatcher down. Pending callbacks are dropped.
func (d *Dispatcher) Stop() {
	d.once.Do(func() {
		close(d.quit)
	})
}
