// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wsdeque

// NewDeque creates a fresh deque and returns its owner and thief
// endpoints. capacity rounds up to the next power of two and becomes the
// initial buffer size (and the floor below which the deque never
// shrinks).
//
// The deque is kept alive as long as any handle (the owner, the
// original thief, or any of its clones) is reachable; Go's garbage
// collector reclaims it once nothing refers to it.
//
// Panics if capacity < 2.
func NewDeque[T any](capacity int) (*Owner[T], *Thief[T]) {
	return Build[T](New(capacity))
}

// Options configures deque construction.
type Options struct {
	capacity   int
	logInitial uint
	setInitial bool
}

// Builder creates deques with fluent configuration, mirroring this
// ecosystem's other queue builders (see code.hybscloud.com/lfq.Builder).
type Builder struct {
	opts Options
}

// New creates a deque builder with the given capacity.
//
// capacity rounds up to the next power of two and becomes the initial
// buffer size. Panics if capacity < 2.
//
// Example:
//
//	owner, thief := wsdeque.Build[Task](wsdeque.New(1024))
func New(capacity int) *Builder {
	if capacity < 2 {
		panic("wsdeque: capacity must be >= 2")
	}
	return &Builder{opts: Options{capacity: capacity}}
}

// InitialCapacityLog overrides the shrink floor (log_initial in the
// algorithm) and the initial buffer size. The deque never shrinks below
// 2^k elements. When not set, k is the log2 of the capacity passed to New,
// rounded up to a power of two.
func (b *Builder) InitialCapacityLog(k int) *Builder {
	if k < 1 {
		panic("wsdeque: InitialCapacityLog must be >= 1")
	}
	b.opts.logInitial = uint(k)
	b.opts.setInitial = true
	return b
}

// Build creates the owner/thief endpoint pair described by b.
func Build[T any](b *Builder) (*Owner[T], *Thief[T]) {
	logInitial := log2(roundToPow2(b.opts.capacity))
	if b.opts.setInitial {
		logInitial = b.opts.logInitial
	}

	d := newDeque[T](logInitial)
	owner := &Owner[T]{d: d}
	thief := &Thief[T]{d: d, node: d.thieves.register()}
	return owner, thief
}
