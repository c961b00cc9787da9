package service

import "sync"

// observers is a list of callbacks notified synchronously, in subscription
// order, on the goroutine that changed the state.
type observers[T any] struct {
	mu  sync.Mutex
	fns []func(T)
}

func (o *observers[T]) subscribe(fn func(T)) {
	if fn == nil {
		return
	}
	o.mu.Lock()
	o.fns = append(o.fns, fn)
	o.mu.Unlock()
}

func (o *observers[T]) notify(v T) {
	o.mu.Lock()
	fns := make([]func(T), len(o.fns))
	copy(fns, o.fns)
	o.mu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
}
