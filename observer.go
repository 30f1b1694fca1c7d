package goobservers

import "fmt"

// Attachable is the producer-facing attachment surface of an observer. It is
// satisfied by embedding Guard.
type Attachable interface {
	guard() *Guard
}

// Observer consumes a stream of elements pushed by a producer.
//
// The producer calls OnNext zero or more times, then at most one of OnError or
// OnComplete. None of the handlers are called concurrently with each other.
// Handlers must not panic; if that cannot be guaranteed, wrap the observer
// with Safe.
//
// Implementations embed Guard, which provides the Cancel method for the
// observer's own handlers. Cancel is deliberately not part of this interface:
// producers hold an Observer and must not sever the link on the consumer's
// behalf.
type Observer[T any] interface {
	Attachable

	// OnNext consumes element elem.
	OnNext(elem T)

	// OnError consumes the terminal error of the stream.
	OnError(err error)

	// OnComplete is called once the producer has run out of elements.
	OnComplete()
}

// Starter is implemented by observers that want to run initialization once
// their attachment to a producer has succeeded. Observers without an OnStart
// method simply skip the hook.
//
// OnStart runs after the Subscription has been stored, so it may call Cancel
// synchronously.
type Starter interface {
	OnStart()
}

// A MultipleAttachmentError is returned by Attach when an observer that
// already holds a Subscription is attached again, including to a different
// producer. It indicates a programming error in the caller.
type MultipleAttachmentError struct {
	// Observer is the observer that was attached more than once.
	Observer any
}

// Attach links obs to a producer through sub. Producers call it exactly once,
// before delivering any elements. sub must be a live Subscription, not the
// Released sentinel.
//
// If obs was already attached, Attach releases sub, leaves the stored
// Subscription untouched, and returns a MultipleAttachmentError; the producer
// must not proceed to deliver elements. On success, the Subscription is
// visible to Cancel before the OnStart hook (if any) runs.
//
// Panics escaping OnStart are not recovered here; see Safe.
func Attach(obs Attachable, sub Subscription) error {
	if !obs.guard().attach(sub) {
		sub.Release()

		return &MultipleAttachmentError{Observer: unwrap(obs)}
	}

	if starter, ok := obs.(Starter); ok {
		starter.OnStart()
	}

	return nil
}

// unwrap peels delegating observers, such as Safe wrappers, so that
// MultipleAttachmentError names the consumer's own type.
func unwrap(obs any) any {
	for {
		w, ok := obs.(interface{ inner() any })
		if !ok {
			return obs
		}

		obs = w.inner()
	}
}

// FuncObserver implements Observer using plain functions. Any nil field
// behaves as a no-op handler. The embedded Guard makes Cancel available to
// the handlers.
//
// A FuncObserver must be used by pointer.
type FuncObserver[T any] struct {
	Guard

	// Start is called once attachment succeeds.
	Start func()

	// Next consumes element elem.
	Next func(elem T)

	// Error consumes the terminal error of the stream.
	Error func(err error)

	// Complete is called once the producer has run out of elements.
	Complete func()
}

// OnStart implements Starter.
func (o *FuncObserver[T]) OnStart() {
	if o.Start != nil {
		o.Start()
	}
}

// OnNext implements Observer.
func (o *FuncObserver[T]) OnNext(elem T) {
	if o.Next != nil {
		o.Next(elem)
	}
}

// OnError implements Observer.
func (o *FuncObserver[T]) OnError(err error) {
	if o.Error != nil {
		o.Error(err)
	}
}

// OnComplete implements Observer.
func (o *FuncObserver[T]) OnComplete() {
	if o.Complete != nil {
		o.Complete()
	}
}

// Error implements error.
func (e *MultipleAttachmentError) Error() string {
	return fmt.Sprintf("it is not allowed to attach a(n) %T to multiple producers", e.Observer)
}
