// Package goobservers provides push-based observers for streams of elements.
//
// A producer pushes a sequence of elements to an Observer, followed by at most
// one terminal signal: an error, or completion. Before delivering anything, the
// producer attaches the observer to the live link using Attach, handing it a
// Subscription that can sever the link.
//
// Observers are built by embedding Guard, which holds the Subscription and
// enforces the lifecycle rules: an observer can be attached at most once, and
// its own handlers may call Cancel at any time to sever the link, safely
// racing against the producer's teardown. Releasing a Subscription is
// idempotent, so duplicate or concurrent cancellations are absorbed.
//
// FuncObserver builds an observer from plain functions. Collector gathers
// elements and the terminal outcome, which is useful in tests.
//
// Sources are constructed as SourceFuncs, which can produce elements from slices,
// channels, or any arbitrary origin, and are consumed by Observe. Source
// implementations must be prepared to be canceled at any time by checking the
// provided context.Context.
package goobservers
