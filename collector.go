package goobservers

import "sync"

// Collector is an Observer that collects the elements it receives into a
// slice, and records the stream's terminal outcome. It is safe for use with
// sources that deliver concurrently.
//
// A Collector must be used by pointer. The zero value is ready to use.
type Collector[T any] struct {
	Guard

	mu        sync.Mutex
	elems     []T
	err       error
	completed bool
}

// OnNext implements Observer.
func (c *Collector[T]) OnNext(elem T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.elems = append(c.elems, elem)
}

// OnError implements Observer.
func (c *Collector[T]) OnError(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.err = err
}

// OnComplete implements Observer.
func (c *Collector[T]) OnComplete() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.completed = true
}

// Elems returns the elements collected so far.
func (c *Collector[T]) Elems() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.elems
}

// Err returns the terminal error received through OnError, if any.
func (c *Collector[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.err
}

// Completed reports whether OnComplete has been called.
func (c *Collector[T]) Completed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.completed
}
