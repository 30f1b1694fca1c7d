package goobservers

import "sync"

// Guard holds the Subscription linking an observer to its producer, and
// enforces the subscription lifecycle: the slot is populated at most once by
// Attach, and swapped for the Released sentinel at most once, either by Cancel
// or by the producer's own teardown.
//
// Observer implementations embed Guard. The zero value is ready to use.
// A Guard must not be copied after first use.
type Guard struct {
	mu  sync.Mutex
	sub Subscription
}

// guard makes any type embedding Guard satisfy the Observer interface's
// accessor, and gives this package a handle on the slot.
func (g *Guard) guard() *Guard { return g }

// attach stores sub if the slot is still unset, and reports whether it did.
func (g *Guard) attach(sub Subscription) bool {
	g.mu.Lock()
	if g.sub != nil {
		g.mu.Unlock()
		return false
	}

	g.sub = sub
	g.mu.Unlock()

	return true
}

// Cancel severs the link to the producer by releasing the stored
// Subscription. It may be called from the observer's own handlers, including
// concurrently with the producer finalizing the stream, and any number of
// times: the stored Subscription is released at most once. Before an
// attachment, Cancel does nothing.
func (g *Guard) Cancel() {
	g.mu.Lock()
	sub := g.sub
	if sub != nil {
		g.sub = Released
	}
	g.mu.Unlock()

	// Release runs unlocked: it may invoke arbitrary producer teardown.
	if sub != nil {
		sub.Release()
	}
}

// Canceled reports whether the link has been severed, by Cancel or by the
// producer terminating the stream.
func (g *Guard) Canceled() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.sub == Released
}
