// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that starts and
// stops multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start must not block: implementations spawn their own goroutine and
// return. Stop blocks until that goroutine has exited and must be safe to
// call on a worker that was never started.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc; done chan struct{} }
//
//	func (w *MyWorker) Start(ctx context.Context) {
//	    ctx, w.cancel = context.WithCancel(ctx)
//	    w.done = make(chan struct{})
//	    go func() { defer close(w.done); <-ctx.Done() }()
//	}
//
//	func (w *MyWorker) Stop() {
//	    if w.cancel != nil { w.cancel(); <-w.done }
//	}
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
