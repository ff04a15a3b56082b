package eithertest

import "sync/atomic"

// Handle is an owning pointer-like value that records how often it has been
// released. A nil *Handle is the moved-from state.
type Handle struct {
	Value    int
	released *atomic.Int32
}

// NewHandle returns a Handle holding v whose releases are added to counter.
// counter may be nil.
func NewHandle(v int, counter *atomic.Int32) *Handle {
	return &Handle{Value: v, released: counter}
}

// Release implements either.Releaser.
func (h *Handle) Release() {
	if h.released != nil {
		h.released.Add(1)
	}
}

// Clone implements either.Cloner; the copy shares the release counter.
func (h *Handle) Clone() *Handle {
	return &Handle{Value: h.Value, released: h.released}
}
