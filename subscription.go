package goobservers

import "sync"

// Subscription represents the live link between a producer and one observer.
type Subscription interface {
	// Release severs the link. Release is idempotent: releasing an already
	// released Subscription is a no-op and must not panic.
	Release()
}

// Released is the shared sentinel Subscription representing a link that has
// already been severed. Its Release does nothing. A Guard swaps its stored
// Subscription for Released exactly once.
var Released Subscription = releasedSubscription{}

type releasedSubscription struct{}

func (releasedSubscription) Release() {}

// NewSubscription returns a Subscription that calls release the first time it
// is released. Subsequent releases are no-ops.
func NewSubscription(release func()) Subscription {
	return &onceSubscription{release: release}
}

type onceSubscription struct {
	once    sync.Once
	release func()
}

func (s *onceSubscription) Release() {
	s.once.Do(s.release)
}
