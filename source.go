package goobservers

import (
	"context"
	"sync"
)

// SourceFunc returns a channel of elements for a stream.
//
// Calling the cancel function cancels the entire stream, short-circuiting the
// production of elements. Implementations must be prepared to be canceled at
// any time by checking the provided context.Context.
type SourceFunc[T any] func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T

// FromSlice returns a source that produces the elements of the given slices, in order.
func FromSlice[T any](slices ...[]T) SourceFunc[T] {
	return func(ctx context.Context, _ context.CancelCauseFunc) <-chan T {
		outCh := make(chan T)

		go func() {
			defer close(outCh)

			for _, slice := range slices {
				for _, elem := range slice {
					select {
					case outCh <- elem:

					case <-ctx.Done():
						return
					}
				}
			}
		}()

		return outCh
	}
}

// FromChannel returns a source that produces the elements received through the given channels, in order.
func FromChannel[T any](channels ...<-chan T) SourceFunc[T] {
	return func(ctx context.Context, _ context.CancelCauseFunc) <-chan T {
		outCh := make(chan T)

		go func() {
			defer close(outCh)

			for _, ch := range channels {
				for elem := range ch {
					select {
					case outCh <- elem:

					case <-ctx.Done():
						return
					}
				}
			}
		}()

		return outCh
	}
}

// FromChannelConcurrent returns a source that produces the elements received through the given channels, in undefined order.
// The channels are consumed concurrently.
func FromChannelConcurrent[T any](channels ...<-chan T) SourceFunc[T] {
	return func(ctx context.Context, _ context.CancelCauseFunc) <-chan T {
		outCh := make(chan T)

		grp := sync.WaitGroup{}
		grp.Add(len(channels))

		for _, ch := range channels {
			go func(ch <-chan T) {
				defer grp.Done()

				for elem := range ch {
					select {
					case outCh <- elem:

					case <-ctx.Done():
						return
					}
				}
			}(ch)
		}

		go func() {
			defer close(outCh)

			grp.Wait()
		}()

		return outCh
	}
}

// Fail returns a source that produces no elements and immediately cancels the
// stream using err.
func Fail[T any](err error) SourceFunc[T] {
	return func(_ context.Context, cancel context.CancelCauseFunc) <-chan T {
		cancel(err)

		outCh := make(chan T)
		close(outCh)

		return outCh
	}
}
