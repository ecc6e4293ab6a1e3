// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wsdeque

import "sync/atomic"

// ringBuffer is the fixed-capacity circular storage backing a deque at a
// single point in time. Capacity is always a power of two; slots are
// addressed by masking a monotonically growing index.
//
// A ringBuffer is immutable once created except for the slot contents
// themselves and the one-time write of next when the owner supersedes it
// with a resized replacement.
type ringBuffer[T any] struct {
	id          int64
	logCapacity uint
	slots       []T
	next        atomic.Pointer[ringBuffer[T]]
}

// newRingBuffer allocates a buffer of capacity 2^logCapacity and the given
// generation id.
func newRingBuffer[T any](logCapacity uint, id int64) *ringBuffer[T] {
	return &ringBuffer[T]{
		id:          id,
		logCapacity: logCapacity,
		slots:       make([]T, int64(1)<<logCapacity),
	}
}

// cap returns the buffer's capacity.
func (b *ringBuffer[T]) cap() int64 {
	return int64(1) << b.logCapacity
}

// get returns the element at slot i mod capacity. No synchronization;
// races are resolved by the deque above this layer.
func (b *ringBuffer[T]) get(i int64) T {
	return b.slots[i&(b.cap()-1)]
}

// put stores v at slot i mod capacity.
func (b *ringBuffer[T]) put(i int64, v T) {
	b.slots[i&(b.cap()-1)] = v
}

// resize allocates a new buffer of capacity 2^(logCapacity+delta) and the
// next generation id, copies the live range [t, b) into it, links this
// buffer's next pointer to it, and returns the new buffer.
//
// delta must be +1 (grow) or -1 (shrink). The caller guarantees the new
// capacity still accommodates b-t elements.
func (b *ringBuffer[T]) resize(bottom, top int64, delta int) *ringBuffer[T] {
	var newLog uint
	if delta < 0 {
		newLog = b.logCapacity - uint(-delta)
	} else {
		newLog = b.logCapacity + uint(delta)
	}
	n := newRingBuffer[T](newLog, b.id+1)
	for i := top; i < bottom; i++ {
		n.put(i, b.get(i))
	}
	b.next.Store(n)
	return n
}
