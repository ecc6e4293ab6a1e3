// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wsdeque

// Owner is the push/pop end of a work-stealing deque.
//
// There must be exactly one Owner in use at a time. Owner is not safe
// for concurrent use from multiple goroutines; unlike the source
// algorithm's move-only C++ handle, Go has no compiler-enforced move
// semantics, so this contract is enforced by convention and documented
// here rather than by the type system (see DESIGN.md).
type Owner[T any] struct {
	d *deque[T]
}

// Push appends v at the bottom of the deque. Owner-only; not safe to
// call concurrently with Pop, or from more than one goroutine.
func (o *Owner[T]) Push(v T) {
	o.d.pushBottom(v)
}

// Pop removes and returns the element at the bottom of the deque.
// Returns ErrEmpty if the deque is empty or a race against a concurrent
// Steal was lost.
func (o *Owner[T]) Pop() (T, error) {
	return o.d.popBottom()
}

// Cap returns the current buffer capacity. This is a snapshot; the
// owner's own next Push or Pop may resize it.
func (o *Owner[T]) Cap() int {
	return int(o.d.buf.Load().cap())
}

// Stats returns the number of resizes performed and the number of
// superseded buffers dropped by reclamation so far. Diagnostic only; not part of the algorithm's correctness
// contract.
func (o *Owner[T]) Stats() (resizes, reclaims uint64) {
	return o.d.resizeCount.Load(), o.d.reclaimCount.Load()
}
