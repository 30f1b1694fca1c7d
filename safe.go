package goobservers

import "fmt"

// A PanicError is handed to OnError by a Safe observer when one of the
// wrapped observer's handlers panics.
type PanicError struct {
	// Value is the value recovered from the panic.
	Value any
}

// Safe returns an Observer delegating to obs that recovers panics from its
// handlers. A panic in OnStart or OnNext cancels the subscription and is
// reported to the wrapped observer's OnError as a PanicError. Panics in
// OnError and OnComplete are swallowed, since the stream is already
// terminating.
//
// The returned observer shares the guard of obs, so Cancel calls made by the
// wrapped observer's handlers keep working.
func Safe[T any](obs Observer[T]) Observer[T] {
	return &safeObserver[T]{obs: obs}
}

type safeObserver[T any] struct {
	obs Observer[T]
}

func (s *safeObserver[T]) guard() *Guard { return s.obs.guard() }

func (s *safeObserver[T]) inner() any { return s.obs }

func (s *safeObserver[T]) OnStart() {
	starter, ok := s.obs.(Starter)
	if !ok {
		return
	}

	defer s.rescue()

	starter.OnStart()
}

func (s *safeObserver[T]) OnNext(elem T) {
	defer s.rescue()

	s.obs.OnNext(elem)
}

func (s *safeObserver[T]) OnError(err error) {
	defer swallow()

	s.obs.OnError(err)
}

func (s *safeObserver[T]) OnComplete() {
	defer swallow()

	s.obs.OnComplete()
}

// rescue turns a panic in a delivery handler into a cancellation followed by
// a terminal PanicError.
func (s *safeObserver[T]) rescue() {
	value := recover()
	if value == nil {
		return
	}

	s.obs.guard().Cancel()

	s.OnError(&PanicError{Value: value})
}

func swallow() {
	_ = recover()
}

// Error implements error.
func (e *PanicError) Error() string {
	return fmt.Sprintf("observer handler panicked: %v", e.Value)
}
