package picking

import "sync/atomic"

// AsyncReadback carries one in-flight GPU result without blocking either
// side: the render thread issues the transfer and later completes it when the
// driver signals readiness; the logic thread polls. Only one request is in
// flight at a time; issuing while pending replaces the previous request.
type AsyncReadback[T any] struct {
	pending atomic.Bool
	ready   atomic.Bool
	value   T
}

// Issue marks a new request in flight, discarding any unclaimed result.
func (a *AsyncReadback[T]) Issue() {
	a.ready.Store(false)
	a.pending.Store(true)
}

// Complete stores the transferred value and publishes it. Render thread only.
func (a *AsyncReadback[T]) Complete(v T) {
	if !a.pending.Load() {
		return
	}
	a.value = v
	a.pending.Store(false)
	a.ready.Store(true)
}

// Poll claims the result if the transfer finished since the last claim.
func (a *AsyncReadback[T]) Poll() (T, bool) {
	if a.ready.CompareAndSwap(true, false) {
		return a.value, true
	}
	var zero T
	return zero, false
}

// Pending reports whether a request is awaiting completion.
func (a *AsyncReadback[T]) Pending() bool {
	return a.pending.Load()
}
