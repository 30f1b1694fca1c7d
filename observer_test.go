package goobservers

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestAttach(t *testing.T) {
	is := is.New(t)

	starts := 0

	obs := &FuncObserver[int]{}
	obs.Start = func() {
		starts++
	}

	sub := &countingSubscription{}

	is.NoErr(Attach(obs, sub))

	is.Equal(starts, 1)
	is.Equal(sub.releases.Load(), int32(0))
}

func TestAttach_CancelInStartHook(t *testing.T) {
	is := is.New(t)

	// the Subscription must be stored before the start hook runs
	obs := &FuncObserver[int]{}
	obs.Start = func() {
		obs.Cancel()
	}

	sub := &countingSubscription{}

	is.NoErr(Attach(obs, sub))

	is.Equal(sub.releases.Load(), int32(1))
	is.True(obs.Canceled())
}

func TestAttach_Twice(t *testing.T) {
	is := is.New(t)

	starts := 0

	obs := &FuncObserver[int]{}
	obs.Start = func() {
		starts++
	}

	subA := &countingSubscription{}
	subB := &countingSubscription{}

	is.NoErr(Attach(obs, subA))
	is.Equal(starts, 1)

	err := Attach(obs, subB)

	attachErr := &MultipleAttachmentError{}
	is.True(errors.As(err, &attachErr))

	// the rejected subscription is released, the stored one is untouched,
	// and the start hook does not fire again
	is.Equal(subB.releases.Load(), int32(1))
	is.Equal(subA.releases.Load(), int32(0))
	is.Equal(starts, 1)

	obs.Cancel()

	is.Equal(subA.releases.Load(), int32(1))

	obs.Cancel()

	is.Equal(subA.releases.Load(), int32(1))
	is.Equal(subB.releases.Load(), int32(1))
}

func TestAttach_AfterCancel(t *testing.T) {
	is := is.New(t)

	obs := &FuncObserver[int]{}

	is.NoErr(Attach(obs, &countingSubscription{}))

	obs.Cancel()

	// the slot holds the sentinel now, so re-attachment is still rejected
	sub := &countingSubscription{}
	err := Attach(obs, sub)

	attachErr := &MultipleAttachmentError{}
	is.True(errors.As(err, &attachErr))
	is.Equal(sub.releases.Load(), int32(1))
}

func TestMultipleAttachmentError_Message(t *testing.T) {
	is := is.New(t)

	obs := &FuncObserver[int]{}

	is.NoErr(Attach(obs, &countingSubscription{}))

	err := Attach(obs, &countingSubscription{})

	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "FuncObserver"))
}

func TestFuncObserver_NilHandlers(t *testing.T) {
	is := is.New(t)

	obs := &FuncObserver[int]{}

	is.NoErr(Attach(obs, &countingSubscription{}))

	obs.OnNext(1)
	obs.OnError(errors.New("oops"))
	obs.OnComplete()
}
