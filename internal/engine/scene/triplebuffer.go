package scene

import "sync/atomic"

// TripleBuffer is a lock-free single-producer/single-consumer "latest value"
// exchange. The writer always writes into a free slot and atomically
// publishes it; the reader always takes the most recently published slot
// without ever blocking the writer or observing a partially written value.
// If the reader polls faster than the writer publishes it simply re-reads
// nothing; if the writer outpaces the reader, intermediate values are lost
// by design.
type TripleBuffer[T any] struct {
	slots [3]T

	// state holds the middle slot index in the low two bits plus a
	// freshness flag. back and front are owned exclusively by the writer
	// and reader respectively.
	state atomic.Uint32
	back  uint32
	front uint32
}

const freshBit = 0b100

// NewTripleBuffer returns an empty triple buffer.
func NewTripleBuffer[T any]() *TripleBuffer[T] {
	tb := &TripleBuffer[T]{back: 0, front: 2}
	tb.state.Store(1)
	return tb
}

// Write publishes a new value. Writer goroutine only.
func (b *TripleBuffer[T]) Write(v T) {
	b.slots[b.back] = v
	old := b.state.Swap(b.back | freshBit)
	b.back = old & 3
}

// TryRead takes the latest published value if one is pending. Reader
// goroutine only. Returns false when nothing new was published since the
// previous read.
func (b *TripleBuffer[T]) TryRead() (T, bool) {
	for {
		s := b.state.Load()
		if s&freshBit == 0 {
			var zero T
			return zero, false
		}
		// Trade our spent front slot for the freshly published middle one.
		// The CAS can lose to a concurrent Write; retry on the new state.
		if b.state.CompareAndSwap(s, b.front) {
			b.front = s & 3
			return b.slots[b.front], true
		}
	}
}
