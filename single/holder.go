// Package single provides lazy, at-most-once construction of a shared
// instance. The host owns the Holder and decides what the factory
// builds; there is no hidden global and no silent fallback instance.
package single

import (
	"errors"
	"sync"
	"sync/atomic"
)

// ErrNoFactory is returned by Get when the Holder was built without a
// factory; a missing instance is an error, never fabricated.
var ErrNoFactory = errors.New("single: holder has no factory")

// Holder lazily constructs one instance of T with an explicit factory.
// The factory runs at most once; its value and error are cached and
// returned to every caller.
type Holder[T any] struct {
	once  sync.Once
	build func() (T, error)

	value T
	err   error
	done  atomic.Bool
}

// NewHolder wraps a factory. The factory is not called until Get.
func NewHolder[T any](build func() (T, error)) *Holder[T] {
	return &Holder[T]{build: build}
}

// Get returns the held instance, constructing it on first call. A
// factory error is sticky: construction is not retried.
func (h *Holder[T]) Get() (T, error) {
	h.once.Do(func() {
		if h.build == nil {
			h.err = ErrNoFactory
			return
		}
		h.value, h.err = h.build()
		h.done.Store(true)
	})
	return h.value, h.err
}

// Must is Get for hosts that treat a construction failure as fatal.
func (h *Holder[T]) Must() T {
	v, err := h.Get()
	if err != nil {
		panic("single: construct instance: " + err.Error())
	}
	return v
}

// Done reports whether the factory has run. Safe to poll from other
// goroutines while Get is in flight.
func (h *Holder[T]) Done() bool {
	return h.done.Load()
}
