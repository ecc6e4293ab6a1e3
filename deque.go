// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wsdeque

import (
	"sync/atomic"

	"code.hybscloud.com/atomix"
)

// deque holds the triple (top, bottom, current buffer) shared by exactly
// one Owner and any number of Thief handles, plus the owner-private
// unlinked chain and the thief registry used to decide when it's safe to
// drop a superseded buffer.
//
// top is written only by thieves (via CAS); bottom is written only by
// the owner; buf is written only by the owner on resize. unlinked is
// touched only by the owner and never needs synchronization.
type deque[T any] struct {
	_      pad
	top    atomix.Int64 // thieves CAS here
	_      pad
	bottom atomix.Int64 // owner writes here
	_      pad
	buf    atomic.Pointer[ringBuffer[T]] // current (largest-id) buffer
	_      padPtr

	unlinked *ringBuffer[T] // owner-private: oldest unreclaimed buffer
	thieves  thiefRegistry

	logInitialCapacity uint
	resizeCount        atomix.Uint64
	reclaimCount       atomix.Uint64
}

// newDeque constructs a deque with an initial buffer of capacity
// 2^logInitialCapacity.
func newDeque[T any](logInitialCapacity uint) *deque[T] {
	d := &deque[T]{logInitialCapacity: logInitialCapacity}
	d.buf.Store(newRingBuffer[T](logInitialCapacity, 0))
	return d
}

// pushBottom appends v at the bottom end. Owner-only.
func (d *deque[T]) pushBottom(v T) {
	b := d.bottom.LoadRelaxed()
	t := d.top.LoadAcquire()
	a := d.buf.Load()

	if b-t >= a.cap()-1 {
		if d.unlinked == nil {
			d.unlinked = a
		}
		a = a.resize(b, t, 1)
		d.buf.Store(a)
		d.resizeCount.Add(1)
	}

	if d.unlinked != nil {
		d.reclaimBuffers(a)
	}

	a.put(b, v)

	// Release-ordered: ensures the put above is visible to any thief
	// that observes the advanced bottom below.
	d.bottom.StoreRelease(b + 1)
}

// popBottom removes and returns the element at the bottom end, or
// ErrEmpty if the deque is empty or a race against a concurrent steal
// was lost. Owner-only.
func (d *deque[T]) popBottom() (T, error) {
	var zero T

	b := d.bottom.LoadRelaxed()
	a := d.buf.Load()

	d.bottom.StoreRelaxed(b - 1)

	// Seq-cst fence: orders this decrement against a thief's increment
	// of top. atomix has no standalone fence primitive, so this uses
	// the package's default (unsuffixed) Load, which is its strongest,
	// sequentially consistent ordering.
	t := d.top.Load()

	size := b - t

	if size <= 0 {
		d.bottom.StoreRelaxed(b)
		return zero, ErrEmpty
	}

	if size == 1 {
		v := zero
		ok := d.top.CompareAndSwapAcqRel(t, t+1)
		if ok {
			v = a.get(t)
		}
		d.bottom.StoreRelaxed(b)
		if !ok {
			return zero, ErrEmpty
		}
		return v, nil
	}

	v := a.get(b - 1)

	if size <= a.cap()/3 && size > int64(1)<<d.logInitialCapacity {
		if d.unlinked == nil {
			d.unlinked = a
		}
		a = a.resize(b, t, -1)
		d.buf.Store(a)
		d.resizeCount.Add(1)
	}

	if d.unlinked != nil {
		d.reclaimBuffers(a)
	}

	return v, nil
}

// steal removes and returns the element at the top end, or ErrEmpty if
// the deque is empty or the CAS race against another steal or a pop was
// lost. Safe to call concurrently from any number of goroutines.
func (d *deque[T]) steal() (T, error) {
	var zero T

	t := d.top.LoadAcquire()

	// Seq-cst fence: orders this top read against the bottom read
	// below, needed to reliably observe the owner's decrement in
	// popBottom. Uses the package's default sequentially consistent
	// Load, same rationale as popBottom's fence.
	b := d.bottom.Load()

	if b-t <= 0 {
		return zero, ErrEmpty
	}

	// Stands in for the source's memory_order_consume load: Go has no
	// consume ordering, so this uses atomic.Pointer's Load, which is at
	// least acquire-ordered.
	a := d.buf.Load()

	if !d.top.CompareAndSwapAcqRel(t, t+1) {
		return zero, ErrEmpty
	}
	return a.get(t), nil
}

// reclaimBuffers drops the owner's references to chained buffers that no
// currently non-idle thief could still be reading. newBuffer is the
// buffer that just became current; its id is always safe.
func (d *deque[T]) reclaimBuffers(newBuffer *ringBuffer[T]) {
	minID := d.thieves.minActiveID(newBuffer.id)

	for d.unlinked != nil && d.unlinked.id < minID {
		d.reclaimCount.Add(1)
		d.unlinked = d.unlinked.next.Load()
	}
}
