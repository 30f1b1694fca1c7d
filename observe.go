package goobservers

import (
	"context"
	"errors"
)

// ErrCanceled is the cancelation cause used when an observer severs its
// subscription through Cancel.
var ErrCanceled = errors.New("subscription canceled")

// Observe attaches obs to src and delivers the stream to it: every produced
// element is passed to OnNext, in order, followed by exactly one terminal
// signal. If the stream's context is canceled with a cause, OnError receives
// that cause; if the source runs out of elements, OnComplete is called.
//
// If obs cancels its subscription, delivery stops, no terminal signal is
// issued, and Observe returns nil. If obs was already attached, nothing is
// delivered and the MultipleAttachmentError is returned. Otherwise, Observe
// returns the terminal error, if any.
func Observe[T any](ctx context.Context, src SourceFunc[T], obs Observer[T]) error {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	sub := NewSubscription(func() {
		cancel(ErrCanceled)
	})

	if err := Attach(obs, sub); err != nil {
		return err
	}

	for elem := range src(ctx, cancel) {
		if contextDone(ctx) {
			break
		}

		obs.OnNext(elem)
	}

	err := context.Cause(ctx)
	if errors.Is(err, ErrCanceled) {
		// the observer severed the link itself; no terminal signal follows
		return nil
	}

	// producer-side teardown of the link, racing safely with Cancel
	obs.guard().Cancel()

	if err != nil {
		obs.OnError(err)

		return err
	}

	obs.OnComplete()

	return nil
}
